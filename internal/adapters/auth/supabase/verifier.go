package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pills-tracker/internal/ports/auth"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier; Roles implementa auth.RoleResolver.
// Se instancian desde main/router, no se integran solos.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("supabase verify failed: %w", err)
	}

	if strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, errors.New("supabase claims missing identity")
	}
	return claims, nil
}

type Roles struct {
	client *Client
}

func NewRoles(client *Client) *Roles {
	return &Roles{client: client}
}

func (r *Roles) IsAdmin(ctx context.Context, identity string) (bool, error) {
	if r == nil || r.client == nil {
		return false, ErrNotConfigured
	}
	return r.client.IsAdmin(ctx, identity)
}
