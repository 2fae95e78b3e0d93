package ports

import (
	"context"

	"printflow/internal/core/domain/model/principal"
)

// ClientDirectory lists the clients orders can be placed for.
type ClientDirectory interface {
	// Client looks up a client by identifier.
	Client(id string) (principal.Principal, bool)

	// Clients returns every known client ordered by identifier.
	Clients() []principal.Principal
}

// CredentialStore checks login credentials.
type CredentialStore interface {
	// Authenticate returns the principal owning the credentials, or an
	// errs.AuthenticationError when no record matches.
	Authenticate(ctx context.Context, email, password string) (principal.Principal, error)
}
