package model

import "time"

// User is the authenticated identity stored in the Users collection.
type User struct {
	UID       string    `firestore:"uid,omitempty" json:"uid"`
	Name      string    `firestore:"name,omitempty" json:"name,omitempty"`
	Email     string    `firestore:"email,omitempty" json:"email,omitempty"`
	Password  string    `firestore:"password,omitempty" json:"-"`
	PhotoURL  string    `firestore:"photourl,omitempty" json:"photoUrl,omitempty"`
	Provider  string    `firestore:"provider,omitempty" json:"provider,omitempty"` // "email", "google" or "anonymous"
	Active    string    `firestore:"active,omitempty" json:"-"`                    // "0" inactive, "1" active, "2" deleted
	CreatedAt time.Time `firestore:"createdat,omitempty" json:"-"`
}
