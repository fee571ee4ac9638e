package permission

import (
	"encoding/json"
	"log/slog"
	"net/http"

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

// GetTable returns the full permission matrix, one row per known role.
func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	rows := make([]RolePermissionsResponse, 0, len(roles.All()))
	for _, role := range roles.All() {
		modules := h.Service.AllowedModules(role)
		names := make([]string, len(modules))
		for i, m := range modules {
			names[i] = m.String()
		}
		rows = append(rows, RolePermissionsResponse{
			Role:       role.String(),
			Category:   string(roles.Classify(role)),
			Modules:    names,
			Customized: h.Service.IsCustomized(role),
		})
	}

	h.WriteJSON(w, http.StatusOK, rows)
}

// GetRole returns the module set of a single role.
func (h *Handler) GetRole(w http.ResponseWriter, r *http.Request) {
	role := roles.Role(r.URL.Query().Get("role"))
	if role == "" {
		h.WriteError(w, http.StatusBadRequest, "role is required")
		return
	}
	if !roles.IsKnown(role) {
		h.WriteError(w, http.StatusNotFound, "unknown role")
		return
	}

	modules := h.Service.AllowedModules(role)
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.String()
	}

	h.WriteJSON(w, http.StatusOK, RolePermissionsResponse{
		Role:       role.String(),
		Category:   string(roles.Classify(role)),
		Modules:    names,
		Customized: h.Service.IsCustomized(role),
	})
}

// UpdateRole replaces the module set of one role. The caller's role
// comes from the authenticated session, never from the payload.
func (h *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	var dto UpdatePermissionsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	modules := make([]roles.Module, len(dto.Modules))
	for i, m := range dto.Modules {
		modules[i] = roles.Module(m)
	}

	if err := h.Service.UpdateRolePermissions(r.Context(), roles.Role(dto.Role), modules, sess.Role); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Reset restores the default mapping for every role.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		h.WriteError(w, http.StatusUnauthorized, "no active session")
		return
	}

	if err := h.Service.ResetToDefaults(r.Context(), sess.Role); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		h.WriteError(w, appErr.StatusCode, appErr.Message)
		return
	}
	h.Logger.Error("permission operation failed", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}
