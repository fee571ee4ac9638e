package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
)

// Store reads and writes the session record under a fixed key. A
// corrupt stored record is treated the same as an absent one: Load
// logs it and returns nil rather than surfacing an error.
type Store struct {
	storage storage.Store
	logger  *slog.Logger
}

func NewStore(st storage.Store, logger *slog.Logger) *Store {
	return &Store{storage: st, logger: logger}
}

// Save serializes the session and overwrites any prior value. The
// authenticated flag key is kept in step with the record.
func (s *Store) Save(ctx context.Context, sess *UserSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := s.storage.Set(ctx, storage.KeySession, string(data)); err != nil {
		return err
	}
	return s.storage.Set(ctx, storage.KeyAuthenticated, "true")
}

// Load returns the stored session, or nil when there is none. Storage
// failures and undecodable payloads both degrade to nil.
func (s *Store) Load(ctx context.Context) (*UserSession, error) {
	raw, err := s.storage.Get(ctx, storage.KeySession)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		s.logger.Warn("session load failed, treating as absent", "error", err)
		return nil, nil
	}

	var sess UserSession
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		s.logger.Warn("corrupt session record discarded", "error", err)
		return nil, nil
	}

	return &sess, nil
}

// Clear removes the session record and the authenticated flag.
// Idempotent: clearing an absent session is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, storage.KeySession); err != nil {
		return err
	}
	return s.storage.Delete(ctx, storage.KeyAuthenticated)
}
