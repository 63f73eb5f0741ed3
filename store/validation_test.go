package store

import "testing"

func TestEmailValidationError(t *testing.T) {
	t.Run("blank takes precedence over format", func(t *testing.T) {
		if got := EmailValidationError(""); got != "can't be blank" {
			t.Errorf("EmailValidationError(\"\") = %q, want %q", got, "can't be blank")
		}
	})

	t.Run("too short", func(t *testing.T) {
		if got := EmailValidationError("a@b.c"); got != "must be at least 6 characters" {
			t.Errorf("EmailValidationError(%q) = %q, want %q", "a@b.c", got, "must be at least 6 characters")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, email := range []string{"not-an-email", "missing@tld", "two@@example.com", "white space@example.com"} {
			if got := EmailValidationError(email); got != "must be a valid email address" {
				t.Errorf("EmailValidationError(%q) = %q, want %q", email, got, "must be a valid email address")
			}
		}
	})

	t.Run("valid", func(t *testing.T) {
		for _, email := range []string{"me@example.com", "a.b+c@sub.domain.io", "x1@y2.zz"} {
			if got := EmailValidationError(email); got != "" {
				t.Errorf("EmailValidationError(%q) = %q, want empty", email, got)
			}
		}
	})
}

func TestPasswordValidationError(t *testing.T) {
	if got := PasswordValidationError(""); got != "can't be blank" {
		t.Errorf("PasswordValidationError(\"\") = %q, want %q", got, "can't be blank")
	}
	if got := PasswordValidationError("x"); got != "" {
		t.Errorf("PasswordValidationError(%q) = %q, want empty", "x", got)
	}
}

func TestConfirmPasswordValidationError(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		if got := ConfirmPasswordValidationError("", "secret"); got != "can't be blank" {
			t.Errorf("got %q, want %q", got, "can't be blank")
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		if got := ConfirmPasswordValidationError("secret2", "secret"); got != "passwords must match" {
			t.Errorf("got %q, want %q", got, "passwords must match")
		}
	})

	t.Run("exact match", func(t *testing.T) {
		if got := ConfirmPasswordValidationError("secret", "secret"); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestNameValidationError(t *testing.T) {
	t.Run("blank", func(t *testing.T) {
		if got := NameValidationError(""); got != "can't be blank" {
			t.Errorf("got %q, want %q", got, "can't be blank")
		}
	})

	t.Run("two letters rejected", func(t *testing.T) {
		if got := NameValidationError("Al"); got != "name can't be of two letters" {
			t.Errorf("got %q, want %q", got, "name can't be of two letters")
		}
	})

	t.Run("three letters accepted", func(t *testing.T) {
		if got := NameValidationError("Ali"); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}
