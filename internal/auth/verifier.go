package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bomberosvinadelmar/portal-admin/internal/roles"
	"github.com/bomberosvinadelmar/portal-admin/internal/session"
)

// Principal is one entry of the known-member catalog.
type Principal struct {
	ID         string
	Name       string
	Email      string
	NationalID string
	Role       roles.Role
}

// placeholderSecret is the single constant every catalog principal
// authenticates with. This is NOT credential verification — it stands
// in for the real mechanism and must be replaced (see BcryptVerifier)
// before any production use.
const placeholderSecret = "bomberos2024"

// CatalogVerifier matches identifiers against a fixed catalog and
// accepts the placeholder secret. Returns a fully populated session
// on match, nil otherwise; never an error.
type CatalogVerifier struct {
	principals []Principal
}

func NewCatalogVerifier(principals []Principal) *CatalogVerifier {
	if principals == nil {
		principals = DefaultPrincipals()
	}
	return &CatalogVerifier{principals: principals}
}

func (v *CatalogVerifier) Verify(identifier, secret string) *session.UserSession {
	if secret != placeholderSecret {
		return nil
	}

	for _, p := range v.principals {
		if strings.EqualFold(p.Email, identifier) || p.ID == identifier {
			return &session.UserSession{
				ID:              p.ID,
				Name:            p.Name,
				Email:           p.Email,
				NationalID:      p.NationalID,
				Role:            p.Role,
				IsAuthenticated: true,
				CreatedAt:       time.Now(),
			}
		}
	}
	return nil
}

// DefaultPrincipals is the development catalog.
func DefaultPrincipals() []Principal {
	return []Principal{
		{
			ID:         "u-admin",
			Name:       "Administrador del Sistema",
			Email:      "admin@bomberosvinadelmar.cl",
			NationalID: "11.111.111-1",
			Role:       roles.RoleAdministrador,
		},
		{
			ID:         "u-director",
			Name:       "Carlos Fuentes",
			Email:      "carlos.fuentes@bomberosvinadelmar.cl",
			NationalID: "12.345.678-5",
			Role:       roles.RoleDirector,
		},
		{
			ID:         "u-capitan",
			Name:       "Andrea Soto",
			Email:      "andrea.soto@bomberosvinadelmar.cl",
			NationalID: "16.874.325-4",
			Role:       roles.RoleCapitan,
		},
		{
			ID:         "u-bombero",
			Name:       "Pedro Rojas",
			Email:      "pedro.rojas@bomberosvinadelmar.cl",
			NationalID: "18.456.789-K",
			Role:       roles.RoleBomberoActivo,
		},
	}
}

// BcryptPrincipal pairs a catalog entry with its password hash.
type BcryptPrincipal struct {
	Principal
	PasswordHash string
}

// BcryptVerifier is the real credential implementation behind the
// same port: bcrypt comparison per principal.
type BcryptVerifier struct {
	principals []BcryptPrincipal
}

func NewBcryptVerifier(principals []BcryptPrincipal) *BcryptVerifier {
	return &BcryptVerifier{principals: principals}
}

func (v *BcryptVerifier) Verify(identifier, secret string) *session.UserSession {
	for _, p := range v.principals {
		if !strings.EqualFold(p.Email, identifier) && p.ID != identifier {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(secret)) != nil {
			return nil
		}
		return &session.UserSession{
			ID:              p.ID,
			Name:            p.Name,
			Email:           p.Email,
			NationalID:      p.NationalID,
			Role:            p.Role,
			IsAuthenticated: true,
			CreatedAt:       time.Now(),
		}
	}
	return nil
}

// HashPassword creates a bcrypt hash for seeding bcrypt principals.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
