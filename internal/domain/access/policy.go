package access

import (
	"context"
	"errors"
	"strings"

	"pills-tracker/internal/ports/auth"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Role: dos roles y nada más.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStandard      Role = "standard"
)

// Capabilities es el value object que consumen handlers y servicios en vez de
// chequear booleanos sueltos: concentra qué puede ver/hacer una identidad.
type Capabilities struct {
	Identity string
	Role     Role
}

// Resolve arma las capabilities de la sesión: identidad de los claims
// verificados + rol vía el resolver. Sin claims => ErrUnauthorized.
func Resolve(ctx context.Context, claims auth.Claims, roles auth.RoleResolver) (Capabilities, error) {
	identity := strings.TrimSpace(claims.UserID)
	if identity == "" {
		return Capabilities{}, ErrUnauthorized
	}

	role := RoleStandard
	if roles != nil {
		isAdmin, err := roles.IsAdmin(ctx, identity)
		if err == nil && isAdmin {
			role = RoleAdministrator
		}
		// Error en el lookup => rol estándar; nunca escalamos por fallo upstream.
	}

	return Capabilities{Identity: identity, Role: role}, nil
}

func (c Capabilities) IsAdmin() bool {
	return c.Role == RoleAdministrator
}

// CanManageMedications / CanViewHistory: las páginas fuera de la agenda son
// solo de administradores; el gate devuelve Forbidden, no un error de datos.
func (c Capabilities) CanManageMedications() bool { return c.IsAdmin() }
func (c Capabilities) CanViewHistory() bool       { return c.IsAdmin() }

// CanViewSchedule: la agenda la ve cualquier identidad autenticada.
func (c Capabilities) CanViewSchedule() bool { return c.Identity != "" }
