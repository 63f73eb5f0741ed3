package auth

import (
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"planora/dto"
	"planora/services"
	"planora/store"
)

func SignUpController(router *gin.Engine, root *store.RootStore, firestoreClient *firestore.Client) {
	router.POST("/auth/signup", func(c *gin.Context) {
		Signup(c, root, firestoreClient)
	})
}

func Signup(c *gin.Context, root *store.RootStore, firestoreClient *firestore.Client) {
	var request dto.SignupRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	root.Auth.SetAuthName(request.Name)
	root.Auth.SetAuthEmail(request.Email)
	root.Auth.SetAuthPassword(request.Password)
	root.Auth.SetAuthConfirmPassword(request.ConfirmPassword)

	if msg := root.Auth.NameValidationError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name " + msg})
		return
	}
	if msg := root.Auth.EmailValidationError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email " + msg})
		return
	}
	if msg := root.Auth.PasswordValidationError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password " + msg})
		return
	}
	if msg := root.Auth.ConfirmPasswordValidationError(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	// Score the signup when reCAPTCHA is configured and a token was sent.
	if request.CaptchaToken != "" && os.Getenv("RECAPTCHA_SITE_KEY") != "" {
		result, err := services.CreateAssessment(c.Request.Context(), request.CaptchaToken, "signup", getClientIP(c), c.Request.UserAgent())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Captcha verification failed"})
			return
		}
		if result == nil || result.Score < 0.5 {
			c.JSON(http.StatusForbidden, gin.H{"error": "Captcha check did not pass"})
			return
		}
	}

	if err := root.Auth.LoginWithEmail(c.Request.Context(), true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := root.Auth.User()
	tokens, err := issueTokens(c, firestoreClient, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.UID,
			"email": user.Email,
		},
		"token": tokens,
	})
}
