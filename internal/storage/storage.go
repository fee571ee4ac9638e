// Package storage defines the key-value port behind which the portal
// persists its state. Values are serialized blobs; the engine never
// assumes anything about the medium beyond get/set/delete.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent. Callers that
// treat absence as a default (session load, permission table seed)
// must check for it explicitly.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key-value port. Implementations are
// last-write-wins; there is no transactional guarantee across keys.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Well-known keys of the portal storage layout.
const (
	KeySession       = "portal:session"
	KeyAuthenticated = "portal:authenticated"
	KeyPermissions   = "portal:permissions"
	KeyPersonnel     = "portal:personnel"
	KeyCitations     = "portal:citations"
	KeyVideos        = "portal:videos"
	KeyRegistrations = "portal:registrations"
	KeyCredentials   = "portal:credentials"
)
