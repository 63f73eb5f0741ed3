package model

import "time"

// RootSnapshot is the serialized form of the root store. Credential input
// fields and loading flags are volatile and never persisted.
type RootSnapshot struct {
	Auth  AuthSnapshot  `json:"authStore"`
	Tasks StoreSnapshot `json:"categoriesStore"`
}

// AuthSnapshot is the persisted part of the authentication state.
type AuthSnapshot struct {
	User      *User  `json:"user,omitempty"`
	AuthToken string `json:"authToken,omitempty"`
	AuthImage string `json:"authImage,omitempty"`
	AuthName  string `json:"authName,omitempty"`
	AuthEmail string `json:"authEmail,omitempty"`
}

// StoreSnapshot is the persisted form of the domain store.
type StoreSnapshot struct {
	Categories []Category `json:"categories"`
	Tasks      []Task     `json:"tasks"`
}

// SnapshotRecord is the SQLite row holding a serialized root snapshot.
type SnapshotRecord struct {
	ID        uint      `gorm:"primarykey"`
	UpdatedAt time.Time
	Data      []byte `gorm:"not null"`
}

func (SnapshotRecord) TableName() string {
	return "snapshots"
}
