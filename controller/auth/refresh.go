package auth

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planora/middleware"
	"planora/model"
	"planora/services"
)

func RefreshTokenController(router *gin.Engine, firestoreClient *firestore.Client) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshToken(c, firestoreClient)
	})
}

// RefreshToken exchanges a valid, unrevoked refresh token for a fresh
// access/refresh pair. The old token's hash is replaced by the new one.
func RefreshToken(c *gin.Context, firestoreClient *firestore.Client) {
	uid := c.MustGet("userId").(string)
	presented := c.MustGet("refreshToken").(string)

	ctx := c.Request.Context()
	doc, err := firestoreClient.Collection("refreshTokens").Doc(uid).Get(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No refresh token on record"})
		return
	}

	var record model.TokenRecord
	if err := doc.DataTo(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse token record"})
		return
	}

	if record.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token has been revoked"})
		return
	}
	if err := services.CompareRefreshToken(record.RefreshToken, presented); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token mismatch"})
		return
	}

	user, err := services.GetUserByUID(ctx, firestoreClient, uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	tokens, err := issueTokens(c, firestoreClient, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed",
		"token":   tokens,
	})
}
