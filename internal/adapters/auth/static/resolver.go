package static

import (
	"context"
	"os"
	"strings"
)

// Resolver es el RoleResolver de dev: lista fija de administradores.
// Con ADMIN_USERS="a@x.com,b@y.com" (env) o la lista que le pasen.
type Resolver struct {
	admins map[string]struct{}
}

func NewResolver(admins []string) *Resolver {
	set := make(map[string]struct{}, len(admins))
	for _, a := range admins {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		set[a] = struct{}{}
	}
	return &Resolver{admins: set}
}

func NewResolverFromEnv() *Resolver {
	return NewResolver(strings.Split(os.Getenv("ADMIN_USERS"), ","))
}

func (r *Resolver) IsAdmin(ctx context.Context, identity string) (bool, error) {
	if r == nil {
		return false, nil
	}
	_, ok := r.admins[strings.TrimSpace(identity)]
	return ok, nil
}
