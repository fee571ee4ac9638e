package auth

import (
	"log/slog"
	"net/http"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
)

// ModuleAuthorizer answers whether a role may open a portal module.
type ModuleAuthorizer interface {
	CanAccess(role roles.Role, module roles.Module) bool
}

// ModuleAuthorization gates HTTP routes on the permission table. It
// runs after AuthMiddleware, which places the session in the context.
type ModuleAuthorization struct {
	authorizer ModuleAuthorizer
	logger     *slog.Logger
}

func NewModuleAuthorization(authorizer ModuleAuthorizer, logger *slog.Logger) *ModuleAuthorization {
	return &ModuleAuthorization{
		authorizer: authorizer,
		logger:     logger,
	}
}

// RequireModule rejects the request unless the session's role has
// access to the named module.
func (ma *ModuleAuthorization) RequireModule(module roles.Module) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok {
				ma.logger.Warn("module authorization: session not found in context", "module", module)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !ma.authorizer.CanAccess(sess.Role, module) {
				ma.logger.WarnContext(r.Context(), "access denied: module not granted",
					"user_id", sess.ID,
					"role", sess.Role,
					"module", module)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdministrator rejects any session whose role is not the
// administrator role, regardless of the permission table.
func (ma *ModuleAuthorization) RequireAdministrator() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !sess.IsAdministrator() {
				ma.logger.WarnContext(r.Context(), "access denied: administrator role required",
					"user_id", sess.ID,
					"role", sess.Role)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
