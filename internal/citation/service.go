package citation

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

func (s *Service) ListCitations(ctx context.Context) ([]*Citation, error) {
	citations, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load citations", "error", err)
		return nil, internal.NewStorageError("No se pudieron cargar las citaciones", err)
	}
	return citations, nil
}

// UpcomingCitations filters the list to dates ahead of now, for the
// dashboard summary.
func (s *Service) UpcomingCitations(ctx context.Context, now time.Time) ([]*Citation, error) {
	citations, err := s.ListCitations(ctx)
	if err != nil {
		return nil, err
	}

	upcoming := make([]*Citation, 0, len(citations))
	for _, c := range citations {
		if c.IsUpcoming(now) {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming, nil
}

func (s *Service) GetCitation(ctx context.Context, id string) (*Citation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateCitation(ctx context.Context, dto CreateCitationDTO, publishedBy string) (*Citation, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	citations, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewStorageError("No se pudieron cargar las citaciones", err)
	}

	now := time.Now()
	c := &Citation{
		ID:          uuid.NewString(),
		Title:       dto.Title,
		Body:        dto.Body,
		Date:        dto.Date,
		Place:       dto.Place,
		Companies:   dto.Companies,
		Mandatory:   dto.Mandatory,
		PublishedBy: publishedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	citations = append(citations, c)
	if err := s.repo.SaveAll(ctx, citations); err != nil {
		s.logger.Error("failed to persist citations", "error", err)
		return nil, internal.NewStorageError("No se pudo guardar la citación", err)
	}

	s.logger.Info("citation published", "id", c.ID, "title", c.Title)
	return c, nil
}

func (s *Service) DeleteCitation(ctx context.Context, id string) error {
	citations, err := s.repo.GetAll(ctx)
	if err != nil {
		return internal.NewStorageError("No se pudieron cargar las citaciones", err)
	}

	remaining := citations[:0]
	found := false
	for _, c := range citations {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return ErrNotFound
	}

	if err := s.repo.SaveAll(ctx, remaining); err != nil {
		return internal.NewStorageError("No se pudo eliminar la citación", err)
	}
	s.logger.Info("citation deleted", "id", id)
	return nil
}
