package personnel

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
)

var ErrNotFound = errors.New("personnel record not found")

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*Record, error)
	GetByID(ctx context.Context, id string) (*Record, error)
	SaveAll(ctx context.Context, records []*Record) error
}

// Repository keeps the whole roster as one JSON array under the
// personnel storage key. Reads of an absent key yield an empty
// roster.
type Repository struct {
	storage storage.Store
}

func NewRepository(st storage.Store) *Repository {
	return &Repository{storage: st}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Record, error) {
	raw, err := r.storage.Get(ctx, storage.KeyPersonnel)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []*Record{}, nil
		}
		return nil, err
	}

	var records []*Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Record, error) {
	records, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) SaveAll(ctx context.Context, records []*Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.storage.Set(ctx, storage.KeyPersonnel, string(data))
}
