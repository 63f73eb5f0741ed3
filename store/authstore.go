package store

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"planora/model"
)

// AuthError is a failure reported by the authentication provider.
type AuthError struct {
	Code    string
	Message string
}

// AuthResult is the outcome of a provider sign-in call. Providers report
// failure through the result shape instead of returning an error.
type AuthResult struct {
	Success bool
	User    *model.User
	Err     *AuthError
}

// SignOutResult is the outcome of a provider sign-out call.
type SignOutResult struct {
	Success bool
	Err     *AuthError
}

// AuthProvider is the external authentication collaborator.
type AuthProvider interface {
	SignInWithEmail(ctx context.Context, email, password string, isSignUp bool) AuthResult
	SignInWithGoogle(ctx context.Context, idToken string) AuthResult
	SignInAnonymously(ctx context.Context) AuthResult
	SignOut(ctx context.Context, uid string) SignOutResult
}

// AuthStore tracks credential input, the in-flight state of the email and
// Google sign-in flows, and the resulting session token and user identity.
type AuthStore struct {
	mu       sync.Mutex
	provider AuthProvider

	user                *model.User
	authToken           string
	authImage           string
	authName            string
	authEmail           string
	authPassword        string
	confirmAuthPassword string
	loadingWithEmail    bool
	loadingWithGoogle   bool

	onChange func()
}

func NewAuthStore(provider AuthProvider) *AuthStore {
	return &AuthStore{provider: provider}
}

// SetAuthEmail strips all whitespace from the input before storing it.
func (a *AuthStore) SetAuthEmail(value string) {
	a.mu.Lock()
	a.authEmail = strings.ReplaceAll(value, " ", "")
	a.mu.Unlock()
}

func (a *AuthStore) SetAuthName(value string) {
	a.mu.Lock()
	a.authName = value
	a.mu.Unlock()
}

func (a *AuthStore) SetAuthPassword(value string) {
	a.mu.Lock()
	a.authPassword = value
	a.mu.Unlock()
}

func (a *AuthStore) SetAuthConfirmPassword(value string) {
	a.mu.Lock()
	a.confirmAuthPassword = value
	a.mu.Unlock()
}

func (a *AuthStore) SetAuthImage(value string) {
	a.mu.Lock()
	a.authImage = value
	a.mu.Unlock()
}

func (a *AuthStore) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authToken != ""
}

func (a *AuthStore) AuthToken() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authToken
}

func (a *AuthStore) AuthImage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authImage
}

func (a *AuthStore) User() *model.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user
}

func (a *AuthStore) LoadingWithEmail() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadingWithEmail
}

func (a *AuthStore) LoadingWithGoogle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loadingWithGoogle
}

// Validation views bound to the current field values.

func (a *AuthStore) EmailValidationError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return EmailValidationError(a.authEmail)
}

func (a *AuthStore) PasswordValidationError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return PasswordValidationError(a.authPassword)
}

func (a *AuthStore) ConfirmPasswordValidationError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ConfirmPasswordValidationError(a.confirmAuthPassword, a.authPassword)
}

func (a *AuthStore) NameValidationError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return NameValidationError(a.authName)
}

// LoginWithEmail runs the email sign-in or sign-up flow with the current
// credential fields. The loading flag is cleared exactly once on both the
// success and the failure path. On success the password field is cleared.
func (a *AuthStore) LoginWithEmail(ctx context.Context, isSignUp bool) error {
	a.mu.Lock()
	a.loadingWithEmail = true
	email, password := a.authEmail, a.authPassword
	a.mu.Unlock()

	result := a.provider.SignInWithEmail(ctx, email, password, isSignUp)

	a.mu.Lock()
	a.loadingWithEmail = false
	if !result.Success || result.User == nil {
		a.mu.Unlock()
		return authFailure(result.Err, "Login failed")
	}
	a.user = result.User
	a.authToken = result.User.UID
	a.authPassword = ""
	a.mu.Unlock()

	a.notify()
	return nil
}

// LoginWithGoogle runs the Google sign-in flow, storing the user's avatar
// URL alongside the identity and token.
func (a *AuthStore) LoginWithGoogle(ctx context.Context, idToken string) error {
	a.mu.Lock()
	a.loadingWithGoogle = true
	a.mu.Unlock()

	result := a.provider.SignInWithGoogle(ctx, idToken)

	a.mu.Lock()
	a.loadingWithGoogle = false
	if !result.Success || result.User == nil {
		a.mu.Unlock()
		return authFailure(result.Err, "Google Sign-In failed")
	}
	a.user = result.User
	a.authToken = result.User.UID
	a.authImage = result.User.PhotoURL
	a.mu.Unlock()

	a.notify()
	return nil
}

// LoginAnonymously signs in without credentials. Only the session token is
// stored; there is no loading flag for this flow.
func (a *AuthStore) LoginAnonymously(ctx context.Context) error {
	result := a.provider.SignInAnonymously(ctx)
	if !result.Success || result.User == nil {
		err := authFailure(result.Err, "Anonymous Sign-In failed")
		log.Printf("Anonymous Sign-In failed: %v", err)
		return err
	}

	a.mu.Lock()
	a.authToken = result.User.UID
	a.mu.Unlock()

	a.notify()
	return nil
}

// Logout clears the token, password and user identity unconditionally.
// The remote sign-out is best effort: a provider failure is logged but the
// local session is gone either way.
func (a *AuthStore) Logout(ctx context.Context) {
	a.mu.Lock()
	uid := ""
	if a.user != nil {
		uid = a.user.UID
	}
	a.authToken = ""
	a.authPassword = ""
	a.user = nil
	a.mu.Unlock()

	if result := a.provider.SignOut(ctx, uid); !result.Success && result.Err != nil {
		log.Printf("remote sign-out failed: %s", result.Err.Message)
	}

	a.notify()
}

// Snapshot returns the persisted part of the state. Password fields and
// loading flags are volatile and excluded.
func (a *AuthStore) Snapshot() model.AuthSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return model.AuthSnapshot{
		User:      a.user,
		AuthToken: a.authToken,
		AuthImage: a.authImage,
		AuthName:  a.authName,
		AuthEmail: a.authEmail,
	}
}

// Restore rehydrates the persisted part of the state.
func (a *AuthStore) Restore(snap model.AuthSnapshot) {
	a.mu.Lock()
	a.user = snap.User
	a.authToken = snap.AuthToken
	a.authImage = snap.AuthImage
	a.authName = snap.AuthName
	a.authEmail = snap.AuthEmail
	a.mu.Unlock()
}

func (a *AuthStore) setOnChange(fn func()) {
	a.mu.Lock()
	a.onChange = fn
	a.mu.Unlock()
}

func (a *AuthStore) notify() {
	a.mu.Lock()
	fn := a.onChange
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

func authFailure(provider *AuthError, fallback string) error {
	if provider != nil && provider.Message != "" {
		return errors.New(provider.Message)
	}
	return errors.New(fallback)
}
