package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// RoleResolver responde si una identidad es administradora.
// El core nunca autentica ni decide roles; solo consume esto.
type RoleResolver interface {
	IsAdmin(ctx context.Context, identity string) (bool, error)
}
