package video

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
)

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ListVideos(ctx context.Context) ([]*Video, error) {
	videos, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load videos", "error", err)
		return nil, internal.NewStorageError("No se pudieron cargar los videos", err)
	}
	return videos, nil
}

// ListByCategory filters the library; an empty category returns
// everything.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]*Video, error) {
	videos, err := s.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return videos, nil
	}

	filtered := make([]*Video, 0, len(videos))
	for _, v := range videos {
		if v.Category == category {
			filtered = append(filtered, v)
		}
	}
	return filtered, nil
}

func (s *Service) GetVideo(ctx context.Context, id string) (*Video, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateVideo(ctx context.Context, dto CreateVideoDTO) (*Video, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	videos, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewStorageError("No se pudieron cargar los videos", err)
	}

	publishedAt := dto.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	v := &Video{
		ID:          uuid.NewString(),
		Title:       dto.Title,
		URL:         dto.URL,
		Category:    dto.Category,
		Description: dto.Description,
		PublishedAt: publishedAt,
		CreatedAt:   time.Now(),
	}

	videos = append(videos, v)
	if err := s.repo.SaveAll(ctx, videos); err != nil {
		s.logger.Error("failed to persist videos", "error", err)
		return nil, internal.NewStorageError("No se pudo guardar el video", err)
	}

	s.logger.Info("video published", "id", v.ID, "category", v.Category)
	return v, nil
}

func (s *Service) DeleteVideo(ctx context.Context, id string) error {
	videos, err := s.repo.GetAll(ctx)
	if err != nil {
		return internal.NewStorageError("No se pudieron cargar los videos", err)
	}

	remaining := videos[:0]
	found := false
	for _, v := range videos {
		if v.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, v)
	}
	if !found {
		return ErrNotFound
	}

	if err := s.repo.SaveAll(ctx, remaining); err != nil {
		return internal.NewStorageError("No se pudo eliminar el video", err)
	}
	s.logger.Info("video deleted", "id", id)
	return nil
}
