package registration

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	internal "github.com/bomberosvinadelmar/portal-admin/internal"
	"github.com/bomberosvinadelmar/portal-admin/internal/auth"
	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/transport"
	"github.com/bomberosvinadelmar/portal-admin/pkg/logger"
)

type Handler struct {
	*transport.BaseHandler
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Submit files a new application. Public: applicants have no session.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var dto SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req, err := h.Service.SubmitRequest(r.Context(), dto)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, req)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("pending") == "true" {
		requests, err := h.Service.PendingRequests(r.Context())
		if err != nil {
			h.writeServiceError(w, err)
			return
		}
		h.WriteJSON(w, http.StatusOK, requests)
		return
	}

	requests, err := h.Service.ListRequests(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.Service.GetRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "registration request not found")
			return
		}
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Approve)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Reject)
}

func (h *Handler) RequestInfo(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.RequestInfo)
}

func (h *Handler) Suspend(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Suspend)
}

func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.Service.Resume)
}

type decisionFunc func(ctx context.Context, id string, caller roles.Role, note string) (*Request, error)

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, fn decisionFunc) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var dto DecisionDTO
	if r.Body != nil {
		// A missing or empty body is fine; the note is optional.
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	req, err := fn(r.Context(), chi.URLParam(r, "id"), sess.Role, dto.Note)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.WriteError(w, http.StatusNotFound, "registration request not found")
			return
		}
		h.writeServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, req)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.Logger.Warn("registration operation rejected", "code", appErr.Code, "error", err)
		h.WriteJSON(w, appErr.StatusCode, appErr)
		return
	}
	h.Logger.Error("registration operation failed", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
