package model

import "github.com/golang-jwt/jwt/v5"

// TokenRecord is the hashed refresh token stored per user.
type TokenRecord struct {
	UID          string `firestore:"uid,omitempty" json:"userId"`
	RefreshToken string `firestore:"refreshtoken,omitempty" json:"refreshToken"`
	CreatedAt    int64  `firestore:"createdat,omitempty" json:"createdAt"` // creation time in seconds
	Revoked      bool   `firestore:"revoked" json:"revoked"`
	ExpiresIn    int64  `firestore:"expiresin,omitempty" json:"expiresIn"` // expiration in seconds
}

type AccessClaims struct {
	UID   string `json:"userId"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UID     string `json:"userId"`
	TokenID string `json:"tokenId,omitempty"` // for refresh token tracking
	jwt.RegisteredClaims
}
