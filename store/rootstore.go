package store

import (
	"log"

	"planora/model"
)

// Snapshotter persists root snapshots and supplies the previous one at
// startup. The store is agnostic to the storage medium.
type Snapshotter interface {
	Load() (*model.RootSnapshot, error)
	Save(model.RootSnapshot) error
}

// RootStore composes the authentication state and the domain store into
// the single process-wide root. It is constructed once at startup and
// optionally rehydrated from a persisted snapshot.
type RootStore struct {
	Auth  *AuthStore
	Tasks *TaskStore

	snapshots Snapshotter
}

// NewRootStore builds the root, rehydrates it from the snapshotter when
// one is given, and persists a fresh snapshot after every mutation.
// Persistence is best effort; failures are logged, never fatal.
func NewRootStore(provider AuthProvider, snapshots Snapshotter) *RootStore {
	root := &RootStore{
		Auth:      NewAuthStore(provider),
		Tasks:     NewTaskStore(),
		snapshots: snapshots,
	}

	if snapshots != nil {
		snap, err := snapshots.Load()
		if err != nil {
			log.Printf("failed to load snapshot, starting empty: %v", err)
		} else if snap != nil {
			root.Auth.Restore(snap.Auth)
			root.Tasks.Restore(snap.Tasks)
		}
	}

	root.Auth.setOnChange(root.persist)
	root.Tasks.setOnChange(root.persist)
	return root
}

// Snapshot captures the current serializable state of both stores.
func (r *RootStore) Snapshot() model.RootSnapshot {
	return model.RootSnapshot{
		Auth:  r.Auth.Snapshot(),
		Tasks: r.Tasks.Snapshot(),
	}
}

func (r *RootStore) persist() {
	if r.snapshots == nil {
		return
	}
	if err := r.snapshots.Save(r.Snapshot()); err != nil {
		log.Printf("failed to persist snapshot: %v", err)
	}
}
