package registration

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/core/common/validation"
	"github.com/bomberosvinadelmar/portal-admin/internal/core/events"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// Event types published on status changes.
const (
	EventSubmitted     = "registration.submitted"
	EventStatusChanged = "registration.status_changed"
)

type Service struct {
	repo   RepositoryAPI
	bus    *events.Bus
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, bus *events.Bus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

func (s *Service) ListRequests(ctx context.Context) ([]*Request, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("failed to load registration requests", "error", err)
		return nil, internal.NewStorageError("No se pudieron cargar las solicitudes", err)
	}
	return requests, nil
}

// PendingRequests filters the list to undecided applications.
func (s *Service) PendingRequests(ctx context.Context) ([]*Request, error) {
	requests, err := s.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	pending := make([]*Request, 0, len(requests))
	for _, req := range requests {
		if req.Status == StatusPending || req.Status == StatusNeedsInfo {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func (s *Service) GetRequest(ctx context.Context, id string) (*Request, error) {
	return s.repo.GetByID(ctx, id)
}

// SubmitRequest validates the applicant form and files a Pending
// request. The RUT is stored in canonical punctuation.
func (s *Service) SubmitRequest(ctx context.Context, dto SubmitRequestDTO) (*Request, error) {
	if fe := dto.Validate(); !fe.Valid() {
		return nil, internal.NewValidationError("La solicitud contiene datos inválidos", internal.ErrCodeValidationFailed).WithDetails(fe)
	}

	rut := validation.ValidateNationalID(dto.NationalID)

	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewStorageError("No se pudieron cargar las solicitudes", err)
	}

	for _, existing := range requests {
		if existing.NationalID == rut.Normalized && !existing.Status.IsTerminal() {
			return nil, internal.NewDomainError("Ya existe una solicitud en curso para ese RUT", internal.ErrCodeDuplicateRecord)
		}
	}

	now := time.Now()
	req := &Request{
		ID:             uuid.NewString(),
		FirstName:      dto.FirstName,
		LastName:       dto.LastName,
		NationalID:     rut.Normalized,
		BirthDate:      dto.BirthDate,
		Email:          dto.Email,
		Phone:          dto.Phone,
		EmergencyPhone: dto.EmergencyPhone,
		Address:        dto.Address,
		Company:        dto.Company,
		Role:           roles.Role(dto.Role),
		Status:         StatusPending,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}

	requests = append(requests, req)
	if err := s.repo.SaveAll(ctx, requests); err != nil {
		s.logger.Error("failed to persist registration requests", "error", err)
		return nil, internal.NewStorageError("No se pudo guardar la solicitud", err)
	}

	s.publish(ctx, EventSubmitted, req)
	s.logger.Info("registration request submitted", "id", req.ID)
	return req, nil
}

// Approve moves a request to its terminal Approved status.
func (s *Service) Approve(ctx context.Context, id string, caller roles.Role, note string) (*Request, error) {
	return s.decide(ctx, id, caller, StatusApproved, note)
}

// Reject moves a request to its terminal Rejected status.
func (s *Service) Reject(ctx context.Context, id string, caller roles.Role, note string) (*Request, error) {
	return s.decide(ctx, id, caller, StatusRejected, note)
}

// RequestInfo sends a request back to the applicant for more data.
func (s *Service) RequestInfo(ctx context.Context, id string, caller roles.Role, note string) (*Request, error) {
	return s.decide(ctx, id, caller, StatusNeedsInfo, note)
}

// Suspend parks a pending request.
func (s *Service) Suspend(ctx context.Context, id string, caller roles.Role, note string) (*Request, error) {
	return s.decide(ctx, id, caller, StatusSuspended, note)
}

// Resume returns a NeedsInfo or Suspended request to Pending.
func (s *Service) Resume(ctx context.Context, id string, caller roles.Role, note string) (*Request, error) {
	return s.decide(ctx, id, caller, StatusPending, note)
}

func (s *Service) decide(ctx context.Context, id string, caller roles.Role, to Status, note string) (*Request, error) {
	if caller != roles.RoleAdministrador {
		return nil, internal.NewAuthorizationError("Solo el Administrador puede decidir solicitudes")
	}

	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, internal.NewStorageError("No se pudieron cargar las solicitudes", err)
	}

	for _, req := range requests {
		if req.ID != id {
			continue
		}

		if !CanTransition(req.Status, to) {
			return nil, internal.NewDomainError(
				"Transición de estado no permitida: "+string(req.Status)+" a "+string(to),
				internal.ErrCodeInvalidTransition)
		}

		from := req.Status
		req.Status = to
		req.Note = note
		req.DecidedBy = caller.String()
		req.UpdatedAt = time.Now()

		if err := s.repo.SaveAll(ctx, requests); err != nil {
			s.logger.Error("failed to persist registration decision", "id", id, "error", err)
			return nil, internal.NewStorageError("No se pudo guardar la decisión", err)
		}

		s.publish(ctx, EventStatusChanged, req)
		s.logger.Info("registration status changed",
			"id", req.ID,
			"from", from,
			"to", to)
		return req, nil
	}

	return nil, ErrNotFound
}

func (s *Service) publish(ctx context.Context, eventType string, req *Request) {
	if s.bus == nil {
		return
	}
	event := events.NewPortalEvent(eventType, map[string]interface{}{
		"request_id": req.ID,
		"status":     string(req.Status),
		"email":      req.Email,
	})
	if err := s.bus.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish registration event", "event_type", eventType, "error", err)
	}
}
