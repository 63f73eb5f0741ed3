package store

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validation rules return a human-readable error string, or "" when the
// value passes. The first failing rule wins, so the UI can show the
// message directly.

func EmailValidationError(email string) string {
	if len(email) == 0 {
		return "can't be blank"
	}
	if len(email) < 6 {
		return "must be at least 6 characters"
	}
	if !emailPattern.MatchString(email) {
		return "must be a valid email address"
	}
	return ""
}

func PasswordValidationError(password string) string {
	if len(password) == 0 {
		return "can't be blank"
	}
	return ""
}

func ConfirmPasswordValidationError(confirm, password string) string {
	if len(confirm) == 0 {
		return "can't be blank"
	}
	if confirm != password {
		return "passwords must match"
	}
	return ""
}

func NameValidationError(name string) string {
	if len(name) == 0 {
		return "can't be blank"
	}
	if len(name) <= 2 {
		return "name can't be of two letters"
	}
	return ""
}
