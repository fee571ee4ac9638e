package citation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
)

var ErrNotFound = errors.New("citation not found")

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*Citation, error)
	GetByID(ctx context.Context, id string) (*Citation, error)
	SaveAll(ctx context.Context, citations []*Citation) error
}

// Repository keeps all citations as one JSON array under the
// citations storage key.
type Repository struct {
	storage storage.Store
}

func NewRepository(st storage.Store) *Repository {
	return &Repository{storage: st}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Citation, error) {
	raw, err := r.storage.Get(ctx, storage.KeyCitations)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []*Citation{}, nil
		}
		return nil, err
	}

	var citations []*Citation
	if err := json.Unmarshal([]byte(raw), &citations); err != nil {
		return nil, err
	}
	return citations, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Citation, error) {
	citations, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range citations {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) SaveAll(ctx context.Context, citations []*Citation) error {
	data, err := json.Marshal(citations)
	if err != nil {
		return err
	}
	return r.storage.Set(ctx, storage.KeyCitations, string(data))
}
