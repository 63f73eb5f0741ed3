package auth

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planora/model"
	"planora/store"
)

func AnonymousSignInController(router *gin.Engine, root *store.RootStore, firestoreClient *firestore.Client) {
	router.POST("/auth/anonymous", func(c *gin.Context) {
		AnonymousSignIn(c, root, firestoreClient)
	})
}

func AnonymousSignIn(c *gin.Context, root *store.RootStore, firestoreClient *firestore.Client) {
	if err := root.Auth.LoginAnonymously(c.Request.Context()); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// Anonymous sign-in keeps only the session token, no user identity.
	uid := root.Auth.AuthToken()
	tokens, err := issueTokens(c, firestoreClient, &model.User{UID: uid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed in anonymously",
		"user":    gin.H{"id": uid},
		"token":   tokens,
	})
}
