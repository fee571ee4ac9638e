package video

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/bomberosvinadelmar/portal-admin/internal/storage"
)

var ErrNotFound = errors.New("video not found")

type RepositoryAPI interface {
	GetAll(ctx context.Context) ([]*Video, error)
	GetByID(ctx context.Context, id string) (*Video, error)
	SaveAll(ctx context.Context, videos []*Video) error
}

// Repository keeps the library as one JSON array under the videos
// storage key.
type Repository struct {
	storage storage.Store
}

func NewRepository(st storage.Store) *Repository {
	return &Repository{storage: st}
}

func (r *Repository) GetAll(ctx context.Context) ([]*Video, error) {
	raw, err := r.storage.Get(ctx, storage.KeyVideos)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []*Video{}, nil
		}
		return nil, err
	}

	var videos []*Video
	if err := json.Unmarshal([]byte(raw), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Video, error) {
	videos, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range videos {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

func (r *Repository) SaveAll(ctx context.Context, videos []*Video) error {
	data, err := json.Marshal(videos)
	if err != nil {
		return err
	}
	return r.storage.Set(ctx, storage.KeyVideos, string(data))
}
