package auth

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planora/dto"
	"planora/model"
	"planora/services"
	"planora/store"
)

func SignInController(router *gin.Engine, root *store.RootStore, firestoreClient *firestore.Client) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, root, firestoreClient)
	})
}

func Signin(c *gin.Context, root *store.RootStore, firestoreClient *firestore.Client) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	root.Auth.SetAuthEmail(request.Email)
	root.Auth.SetAuthPassword(request.Password)

	if msg := root.Auth.EmailValidationError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email " + msg})
		return
	}
	if msg := root.Auth.PasswordValidationError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password " + msg})
		return
	}

	if err := root.Auth.LoginWithEmail(c.Request.Context(), false); err != nil {
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
			"id":    user.UID,
			"email": user.Email,
			"name":  user.Name,
		},
		"token": tokens,
	})
}

// issueTokens creates an access/refresh pair for the user and stores the
// hashed refresh token.
func issueTokens(c *gin.Context, firestoreClient *firestore.Client, user *model.User) (gin.H, error) {
	accessToken, err := services.CreateAccessToken(user.UID, user.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := services.CreateRefreshToken(user.UID)
	if err != nil {
		return nil, err
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	record := model.TokenRecord{
		UID:          user.UID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}
	if _, err := firestoreClient.Collection("refreshTokens").Doc(user.UID).Set(c.Request.Context(), record); err != nil {
		return nil, err
	}

	return gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"expiresIn":    expiresAt - issuedAt,
	}, nil
}
