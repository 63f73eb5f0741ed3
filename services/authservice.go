package services

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/auth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"planora/model"
	"planora/store"
)

// FirebaseAuthService implements store.AuthProvider on top of the Users
// collection in Firestore and Firebase ID-token verification for Google
// sign-in.
type FirebaseAuthService struct {
	firestoreClient *firestore.Client
	authClient      *fbauth.Client
}

func NewFirebaseAuthService(firestoreClient *firestore.Client, authClient *fbauth.Client) *FirebaseAuthService {
	return &FirebaseAuthService{
		firestoreClient: firestoreClient,
		authClient:      authClient,
	}
}

// SignInWithEmail signs an existing user in, or registers a new one when
// isSignUp is set. Passwords are stored bcrypt-hashed.
func (s *FirebaseAuthService) SignInWithEmail(ctx context.Context, email, password string, isSignUp bool) store.AuthResult {
	if isSignUp {
		return s.signUpWithEmail(ctx, email, password)
	}

	user, err := GetUserByEmail(ctx, s.firestoreClient, email)
	if err != nil {
		if err == ErrUserNotFound {
			return authFailure("user_not_found", "No account found for this email")
		}
		return authFailure("lookup_failed", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return authFailure("wrong_password", "Invalid password")
	}

	switch user.Active {
	case "0":
		return authFailure("account_inactive", "User account is not active")
	case "2":
		return authFailure("account_deleted", "User account is deleted")
	}

	return store.AuthResult{Success: true, User: user}
}

func (s *FirebaseAuthService) signUpWithEmail(ctx context.Context, email, password string) store.AuthResult {
	exists, err := UserExist(ctx, s.firestoreClient, email)
	if err != nil {
		return authFailure("lookup_failed", err.Error())
	}
	if exists {
		return authFailure("email_in_use", "Email is already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return authFailure("hash_failed", "Failed to hash password")
	}

	user := model.User{
		UID:       uuid.New().String(),
		Email:     email,
		Password:  string(hashedPassword),
		Provider:  "email",
		Active:    "1",
		CreatedAt: time.Now(),
	}
	if _, err := s.firestoreClient.Collection("Users").Doc(user.UID).Set(ctx, user); err != nil {
		return authFailure("create_failed", "Failed to create user")
	}

	return store.AuthResult{Success: true, User: &user}
}

// SignInWithGoogle verifies a Google-issued Firebase ID token and finds or
// creates the matching user record.
func (s *FirebaseAuthService) SignInWithGoogle(ctx context.Context, idToken string) store.AuthResult {
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return authFailure("invalid_id_token", "Google ID token verification failed")
	}

	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)
	picture, _ := token.Claims["picture"].(string)

	user, err := GetUserByUID(ctx, s.firestoreClient, token.UID)
	if err == nil {
		if user.Active == "2" {
			return authFailure("account_deleted", "User account is deleted")
		}
		return store.AuthResult{Success: true, User: user}
	}
	if err != ErrUserNotFound {
		return authFailure("lookup_failed", err.Error())
	}

	created := model.User{
		UID:       token.UID,
		Name:      name,
		Email:     email,
		PhotoURL:  picture,
		Provider:  "google",
		Active:    "1",
		CreatedAt: time.Now(),
	}
	if _, err := s.firestoreClient.Collection("Users").Doc(created.UID).Set(ctx, created); err != nil {
		return authFailure("create_failed", "Failed to create user")
	}

	return store.AuthResult{Success: true, User: &created}
}

// SignInAnonymously creates a throwaway identity with no credentials.
func (s *FirebaseAuthService) SignInAnonymously(ctx context.Context) store.AuthResult {
	user := model.User{
		UID:       uuid.New().String(),
		Provider:  "anonymous",
		Active:    "1",
		CreatedAt: time.Now(),
	}
	if _, err := s.firestoreClient.Collection("Users").Doc(user.UID).Set(ctx, user); err != nil {
		return authFailure("create_failed", "Failed to create anonymous user")
	}

	return store.AuthResult{Success: true, User: &user}
}

// SignOut revokes the user's stored refresh token. A missing token record
// still counts as a successful sign-out.
func (s *FirebaseAuthService) SignOut(ctx context.Context, uid string) store.SignOutResult {
	if uid == "" {
		return store.SignOutResult{Success: true}
	}

	_, err := s.firestoreClient.Collection("refreshTokens").Doc(uid).Update(ctx, []firestore.Update{
		{Path: "revoked", Value: true},
	})
	if err != nil && status.Code(err) != codes.NotFound {
		return store.SignOutResult{
			Success: false,
			Err:     &store.AuthError{Code: "signout_failed", Message: err.Error()},
		}
	}
	return store.SignOutResult{Success: true}
}

func authFailure(code, message string) store.AuthResult {
	return store.AuthResult{
		Success: false,
		Err:     &store.AuthError{Code: code, Message: message},
	}
}
