package store

import (
	"context"
	"testing"

	"planora/model"
)

// fakeAuthProvider replays canned results and records the uids it was
// asked to sign out.
type fakeAuthProvider struct {
	emailResult     AuthResult
	googleResult    AuthResult
	anonymousResult AuthResult
	signOutResult   SignOutResult

	signedOutUIDs []string
}

func (f *fakeAuthProvider) SignInWithEmail(_ context.Context, _, _ string, _ bool) AuthResult {
	return f.emailResult
}

func (f *fakeAuthProvider) SignInWithGoogle(_ context.Context, _ string) AuthResult {
	return f.googleResult
}

func (f *fakeAuthProvider) SignInAnonymously(_ context.Context) AuthResult {
	return f.anonymousResult
}

func (f *fakeAuthProvider) SignOut(_ context.Context, uid string) SignOutResult {
	f.signedOutUIDs = append(f.signedOutUIDs, uid)
	return f.signOutResult
}

func successResult(user model.User) AuthResult {
	return AuthResult{Success: true, User: &user}
}

func failureResult(message string) AuthResult {
	return AuthResult{Success: false, Err: &AuthError{Code: "auth/error", Message: message}}
}

func TestSetAuthEmailStripsWhitespace(t *testing.T) {
	a := NewAuthStore(&fakeAuthProvider{})
	a.SetAuthEmail("  me @ exam ple.com ")
	if got := a.EmailValidationError(); got != "" {
		t.Errorf("EmailValidationError = %q, want empty after stripping spaces", got)
	}
}

func TestLoginWithEmail(t *testing.T) {
	t.Run("success stores token and clears password", func(t *testing.T) {
		provider := &fakeAuthProvider{
			emailResult: successResult(model.User{UID: "uid-1", Email: "me@example.com"}),
		}
		a := NewAuthStore(provider)
		a.SetAuthEmail("me@example.com")
		a.SetAuthPassword("secret")

		if err := a.LoginWithEmail(context.Background(), false); err != nil {
			t.Fatalf("LoginWithEmail returned error: %v", err)
		}
		if !a.IsAuthenticated() {
			t.Error("IsAuthenticated = false, want true")
		}
		if got := a.AuthToken(); got != "uid-1" {
			t.Errorf("AuthToken = %q, want %q", got, "uid-1")
		}
		if a.LoadingWithEmail() {
			t.Error("LoadingWithEmail still true after login")
		}
		if got := a.PasswordValidationError(); got != "can't be blank" {
			t.Errorf("password not cleared after login, validation = %q", got)
		}
	})

	t.Run("failure surfaces provider message", func(t *testing.T) {
		provider := &fakeAuthProvider{emailResult: failureResult("bad creds")}
		a := NewAuthStore(provider)
		a.SetAuthEmail("me@example.com")
		a.SetAuthPassword("wrong")

		err := a.LoginWithEmail(context.Background(), false)
		if err == nil {
			t.Fatal("LoginWithEmail returned nil error")
		}
		if err.Error() != "bad creds" {
			t.Errorf("error = %q, want %q", err.Error(), "bad creds")
		}
		if a.IsAuthenticated() {
			t.Error("IsAuthenticated = true after failed login")
		}
		if a.LoadingWithEmail() {
			t.Error("LoadingWithEmail still true after failed login")
		}
	})

	t.Run("failure without message uses fallback", func(t *testing.T) {
		provider := &fakeAuthProvider{emailResult: AuthResult{Success: false}}
		a := NewAuthStore(provider)

		err := a.LoginWithEmail(context.Background(), false)
		if err == nil || err.Error() != "Login failed" {
			t.Errorf("error = %v, want %q", err, "Login failed")
		}
	})
}

func TestLoginWithGoogle(t *testing.T) {
	t.Run("success stores avatar", func(t *testing.T) {
		provider := &fakeAuthProvider{
			googleResult: successResult(model.User{UID: "uid-g", PhotoURL: "https://img.example.com/me.png"}),
		}
		a := NewAuthStore(provider)

		if err := a.LoginWithGoogle(context.Background(), "id-token"); err != nil {
			t.Fatalf("LoginWithGoogle returned error: %v", err)
		}
		if got := a.AuthImage(); got != "https://img.example.com/me.png" {
			t.Errorf("AuthImage = %q, want avatar URL", got)
		}
		if a.LoadingWithGoogle() {
			t.Error("LoadingWithGoogle still true after login")
		}
	})

	t.Run("failure without message uses fallback", func(t *testing.T) {
		provider := &fakeAuthProvider{googleResult: AuthResult{Success: false}}
		a := NewAuthStore(provider)

		err := a.LoginWithGoogle(context.Background(), "id-token")
		if err == nil || err.Error() != "Google Sign-In failed" {
			t.Errorf("error = %v, want %q", err, "Google Sign-In failed")
		}
	})
}

func TestLoginAnonymously(t *testing.T) {
	provider := &fakeAuthProvider{
		anonymousResult: successResult(model.User{UID: "uid-anon"}),
	}
	a := NewAuthStore(provider)

	if err := a.LoginAnonymously(context.Background()); err != nil {
		t.Fatalf("LoginAnonymously returned error: %v", err)
	}
	if got := a.AuthToken(); got != "uid-anon" {
		t.Errorf("AuthToken = %q, want %q", got, "uid-anon")
	}
	// only the token is kept, no user identity
	if a.User() != nil {
		t.Errorf("User = %v, want nil after anonymous sign-in", a.User())
	}
}

func TestLogout(t *testing.T) {
	t.Run("clears local session", func(t *testing.T) {
		provider := &fakeAuthProvider{
			emailResult:   successResult(model.User{UID: "uid-1"}),
			signOutResult: SignOutResult{Success: true},
		}
		a := NewAuthStore(provider)
		if err := a.LoginWithEmail(context.Background(), false); err != nil {
			t.Fatal(err)
		}

		a.Logout(context.Background())
		if a.IsAuthenticated() {
			t.Error("IsAuthenticated = true after logout")
		}
		if a.User() != nil {
			t.Error("User != nil after logout")
		}
		if len(provider.signedOutUIDs) != 1 || provider.signedOutUIDs[0] != "uid-1" {
			t.Errorf("signedOutUIDs = %v, want [uid-1]", provider.signedOutUIDs)
		}
	})

	t.Run("remote failure still clears local session", func(t *testing.T) {
		provider := &fakeAuthProvider{
			emailResult:   successResult(model.User{UID: "uid-1"}),
			signOutResult: SignOutResult{Success: false, Err: &AuthError{Message: "network down"}},
		}
		a := NewAuthStore(provider)
		if err := a.LoginWithEmail(context.Background(), false); err != nil {
			t.Fatal(err)
		}

		a.Logout(context.Background())
		if a.IsAuthenticated() {
			t.Error("IsAuthenticated = true after logout with remote failure")
		}
	})
}

func TestAuthSnapshotRoundTrip(t *testing.T) {
	provider := &fakeAuthProvider{
		emailResult: successResult(model.User{UID: "uid-1", Email: "me@example.com"}),
	}
	a := NewAuthStore(provider)
	a.SetAuthEmail("me@example.com")
	a.SetAuthName("Me")
	a.SetAuthPassword("secret")
	if err := a.LoginWithEmail(context.Background(), false); err != nil {
		t.Fatal(err)
	}

	restored := NewAuthStore(provider)
	restored.Restore(a.Snapshot())
	if !restored.IsAuthenticated() {
		t.Error("restored store not authenticated")
	}
	if got := restored.AuthToken(); got != "uid-1" {
		t.Errorf("AuthToken = %q, want %q", got, "uid-1")
	}
	if got := restored.NameValidationError(); got != "" {
		t.Errorf("NameValidationError = %q, want empty for restored name", got)
	}
}
