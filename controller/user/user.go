package user

import (
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"planora/dto"
	"planora/middleware"
	"planora/services"
	"planora/store"
)

func UserController(router *gin.Engine, root *store.RootStore, firestoreClient *firestore.Client) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("/me", func(c *gin.Context) {
			Me(c, firestoreClient)
		})
		routes.PUT("/profile", func(c *gin.Context) {
			UpdateProfile(c, root, firestoreClient)
		})
	}
}

func Me(c *gin.Context, firestoreClient *firestore.Client) {
	uid := c.MustGet("userId").(string)

	user, err := services.GetUserByUID(c.Request.Context(), firestoreClient, uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		UID:       user.UID,
		Name:      user.Name,
		Email:     user.Email,
		PhotoURL:  user.PhotoURL,
		Provider:  user.Provider,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}

// UpdateProfile writes the changed fields to Firestore and mirrors name
// and avatar into the auth state.
func UpdateProfile(c *gin.Context, root *store.RootStore, firestoreClient *firestore.Client) {
	uid := c.MustGet("userId").(string)

	var request dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	var updates []firestore.Update
	if request.Name != "" {
		if msg := store.NameValidationError(request.Name); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name " + msg})
			return
		}
		updates = append(updates, firestore.Update{Path: "name", Value: request.Name})
	}
	if request.PhotoURL != "" {
		updates = append(updates, firestore.Update{Path: "photourl", Value: request.PhotoURL})
	}
	if request.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		updates = append(updates, firestore.Update{Path: "password", Value: string(hashed)})
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	if _, err := firestoreClient.Collection("Users").Doc(uid).Update(c.Request.Context(), updates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	if request.Name != "" {
		root.Auth.SetAuthName(request.Name)
	}
	if request.PhotoURL != "" {
		root.Auth.SetAuthImage(request.PhotoURL)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
