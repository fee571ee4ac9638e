package personnel

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
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

func (s *Service) ListRecords(ctx context.Context) ([]*Record, error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load roster", "error", err)
		return nil, internal.NewStorageError("No se pudo cargar el personal", err)
	}
	return records, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (*Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// CreateRecord validates the applicant fields, stores the RUT in its
// canonical punctuation and appends the entry to the roster.
func (s *Service) CreateRecord(ctx context.Context, dto CreateRecordDTO) (*Record, error) {
	if fe := dto.Validate(); !fe.Valid() {
		return nil, internal.NewValidationError("Los datos del registro no son válidos", internal.ErrCodeValidationFailed).WithDetails(fe)
	}

	rut := validation.ValidateNationalID(dto.NationalID)

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewStorageError("No se pudo cargar el personal", err)
	}

	for _, existing := range records {
		if existing.NationalID == rut.Normalized {
			return nil, internal.NewDomainError("Ya existe un registro con ese RUT", internal.ErrCodeDuplicateRecord)
		}
	}

	now := time.Now()
	rec := &Record{
		ID:             uuid.NewString(),
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		NationalID:     rut.Normalized,
		Email:          dto.Email,
		Phone:          dto.Phone,
		EmergencyPhone: dto.EmergencyPhone,
		Address:        dto.Address,
		Company:        dto.Company,
		Role:           roles.Role(dto.Role),
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	records = append(records, rec)
	if err := s.repo.SaveAll(ctx, records); err != nil {
		s.logger.Error("failed to persist roster", "error", err)
		return nil, internal.NewStorageError("No se pudo guardar el personal", err)
	}

	s.logger.Info("personnel record created", "id", rec.ID, "role", rec.Role)
	return rec, nil
}

func (s *Service) UpdateRecord(ctx context.Context, id string, dto UpdateRecordDTO) (*Record, error) {
	if fe := dto.Validate(); !fe.Valid() {
		return nil, internal.NewValidationError("Los datos del registro no son válidos", internal.ErrCodeValidationFailed).WithDetails(fe)
	}

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewStorageError("No se pudo cargar el personal", err)
	}

	for _, rec := range records {
		if rec.ID != id {
			continue
		}

		rec.Email = dto.Email
		rec.Phone = dto.Phone
		rec.EmergencyPhone = dto.EmergencyPhone
		rec.Address = dto.Address
		rec.Company = dto.Company
		rec.Role = roles.Role(dto.Role)
		rec.UpdatedAt = time.Now()

		if err := s.repo.SaveAll(ctx, records); err != nil {
			s.logger.Error("failed to persist roster", "error", err)
			return nil, internal.NewStorageError("No se pudo guardar el personal", err)
		}
		return rec, nil
	}

	return nil, ErrNotFound
}

// DeactivateRecord marks a roster entry inactive. Records are never
// removed from the roster.
func (s *Service) DeactivateRecord(ctx context.Context, id string) error {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return internal.NewStorageError("No se pudo cargar el personal", err)
	}

	for _, rec := range records {
		if rec.ID != id {
			continue
		}
		rec.Deactivate()
		if err := s.repo.SaveAll(ctx, records); err != nil {
			return internal.NewStorageError("No se pudo guardar el personal", err)
		}
		s.logger.Info("personnel record deactivated", "id", id)
		return nil
	}

	return ErrNotFound
}
