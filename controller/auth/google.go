package auth

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planora/dto"
	"planora/store"
)

func GoogleSignInController(router *gin.Engine, root *store.RootStore, firestoreClient *firestore.Client) {
	router.POST("/auth/googlelogin", func(c *gin.Context) {
		GoogleSignIn(c, root, firestoreClient)
	})
}

func GoogleSignIn(c *gin.Context, root *store.RootStore, firestoreClient *firestore.Client) {
	var request dto.GoogleSignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := root.Auth.LoginWithGoogle(c.Request.Context(), request.IDToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user := root.Auth.User()
	tokens, err := issueTokens(c, firestoreClient, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"user": gin.H{
			"id":       user.UID,
			"email":    user.Email,
			"name":     user.Name,
			"photoUrl": user.PhotoURL,
		},
		"token": tokens,
	})
}
