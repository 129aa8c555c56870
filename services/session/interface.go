// File: services/session/interface.go
package session

import (
	"context"

	"calendai/models"
)

// Store holds accumulated slot state keyed by an opaque session id.
//
// Get returns an empty session (never nil) for an unknown id so the caller
// can treat every conversation as lazily created. Put replaces the stored
// state wholesale; concurrent turns on the same id are last-write-wins.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Put(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
}
