package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pills-tracker/internal/platform/httpclient"
	"pills-tracker/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("supabase client not configured")
	ErrUnauthorized  = errors.New("supabase unauthorized")
	ErrUpstream      = errors.New("supabase upstream error")
)

// Config del cliente. BaseURL y AnonKey vienen de env en quien lo instancia.
type Config struct {
	BaseURL string
	AnonKey string
	Timeout time.Duration
}

type Client struct {
	http    *httpclient.Client
	anonKey string
}

func NewClient(cfg Config) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		http:    hc,
		anonKey: strings.TrimSpace(cfg.AnonKey),
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.anonKey != ""
}

// VerifyToken resuelve el usuario del access token contra /auth/v1/user.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	err := c.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user", map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + token,
	}, nil, &out)
	if err != nil {
		var he *httpclient.HTTPError
		if errors.As(err, &he) && (he.StatusCode == http.StatusUnauthorized || he.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	email := strings.TrimSpace(out.Email)
	if email == "" {
		return auth.Claims{}, errors.New("supabase response missing email")
	}

	// La identidad del reporter es el email: es lo que se estampa en los logs.
	return auth.Claims{
		UserID: email,
		Email:  email,
	}, nil
}

// IsAdmin consulta la tabla user_roles vía PostgREST.
func (c *Client) IsAdmin(ctx context.Context, identity string) (bool, error) {
	if !c.IsConfigured() {
		return false, ErrNotConfigured
	}
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return false, nil
	}

	var out []struct {
		IsAdmin bool `json:"is_admin"`
	}

	path := "/rest/v1/user_roles?select=is_admin&email=eq." + identity
	err := c.http.DoJSON(ctx, http.MethodGet, path, map[string]string{
		"apikey":        c.anonKey,
		"Authorization": "Bearer " + c.anonKey,
	}, nil, &out)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// Sin fila => usuario estándar.
	if len(out) == 0 {
		return false, nil
	}
	return out[0].IsAdmin, nil
}
