package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"planora/store"
)

func SignOutController(router *gin.Engine, root *store.RootStore) {
	router.POST("/auth/signout", func(c *gin.Context) {
		SignOut(c, root)
	})
}

// SignOut is always locally effective: the session is cleared even when
// the remote revocation fails.
func SignOut(c *gin.Context, root *store.RootStore) {
	root.Auth.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
