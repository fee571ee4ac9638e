package registration

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
)

var ErrNotFound = errors.New("registration request not found")

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*Request, error)
	GetByID(ctx context.Context, id string) (*Request, error)
	SaveAll(ctx context.Context, requests []*Request) error
}

// Repository keeps every request, including decided ones, as one JSON
// array under the registrations storage key.
type Repository struct {
	storage storage.Store
}

func NewRepository(st storage.Store) *Repository {
	return &Repository{storage: st}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Request, error) {
	raw, err := r.storage.Get(ctx, storage.KeyRegistrations)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []*Request{}, nil
		}
		return nil, err
	}

	var requests []*Request
	if err := json.Unmarshal([]byte(raw), &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Request, error) {
	requests, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) SaveAll(ctx context.Context, requests []*Request) error {
	data, err := json.Marshal(requests)
	if err != nil {
		return err
	}
	return r.storage.Set(ctx, storage.KeyRegistrations, string(data))
}
