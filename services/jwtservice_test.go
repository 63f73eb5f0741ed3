package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"planora/model"
)

func TestCreateAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-access-secret")

	signed, err := CreateAccessToken("uid-1", "me@example.com")
	if err != nil {
		t.Fatalf("CreateAccessToken returned error: %v", err)
	}

	claims := &model.AccessClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-access-secret"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims returned error: %v", err)
	}
	if !token.Valid {
		t.Fatal("parsed token is not valid")
	}
	if claims.UID != "uid-1" {
		t.Errorf("UID = %q, want %q", claims.UID, "uid-1")
	}
	if claims.Email != "me@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "me@example.com")
	}
	if claims.Issuer != "planora" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "planora")
	}
}

func TestCreateAccessTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-access-secret")

	signed, err := CreateAccessToken("uid-1", "me@example.com")
	if err != nil {
		t.Fatal(err)
	}

	_, err = jwt.ParseWithClaims(signed, &model.AccessClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("another-secret"), nil
	})
	if err == nil {
		t.Error("token parsed with the wrong secret")
	}
}

func TestCreateRefreshToken(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET_KEY", "test-refresh-secret")

	signed, err := CreateRefreshToken("uid-1")
	if err != nil {
		t.Fatalf("CreateRefreshToken returned error: %v", err)
	}

	claims := &model.RefreshClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-refresh-secret"), nil
	})
	if err != nil {
		t.Fatalf("ParseWithClaims returned error: %v", err)
	}
	if !token.Valid {
		t.Fatal("parsed token is not valid")
	}
	if claims.UID != "uid-1" {
		t.Errorf("UID = %q, want %q", claims.UID, "uid-1")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	hashed, err := HashRefreshToken("some-long-refresh-token")
	if err != nil {
		t.Fatalf("HashRefreshToken returned error: %v", err)
	}

	if err := CompareRefreshToken(hashed, "some-long-refresh-token"); err != nil {
		t.Errorf("CompareRefreshToken rejected the original token: %v", err)
	}
	if err := CompareRefreshToken(hashed, "a-different-token"); err == nil {
		t.Error("CompareRefreshToken accepted a different token")
	}
}
