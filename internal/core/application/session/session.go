// Package session holds the login state of one portal session: at most one
// authenticated principal at a time, starting with none.
package session

import (
	"context"
	"fmt"
	"sync"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/principal"
	"printflow/internal/core/ports"
	"printflow/internal/pkg/errs"
)

// ErrNotAuthenticated is returned by RequirePrincipal when nobody is logged in.
var ErrNotAuthenticated = fmt.Errorf("%w: no active session", errs.ErrAuthentication)

// Session is an explicit, per-caller login context.
// Several sessions may share one CredentialStore without affecting each other.
type Session struct {
	mu          sync.Mutex
	credentials ports.CredentialStore

	current principal.Principal
	token   kernel.UUID
	active  bool
}

func New(credentials ports.CredentialStore) *Session {
	return &Session{credentials: credentials}
}

// Login authenticates email and password and makes the matching principal
// current, replacing whoever was logged in. A failed login leaves the
// session as it was.
func (s *Session) Login(ctx context.Context, email, password string) (principal.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.credentials.Authenticate(ctx, email, password)
	if err != nil {
		return principal.Principal{}, err
	}

	s.current = p
	s.token = kernel.NewUUID()
	s.active = true
	return p, nil
}

// Logout clears the current principal. Logging out twice is harmless.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = principal.Principal{}
	s.token = kernel.UUID{}
	s.active = false
}

// Current returns the logged-in principal, if any.
func (s *Session) Current() (principal.Principal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, s.active
}

// Token identifies the current login. Every successful Login issues a new one.
func (s *Session) Token() (kernel.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.active
}

// RequirePrincipal returns the logged-in principal or ErrNotAuthenticated.
func (s *Session) RequirePrincipal() (principal.Principal, error) {
	p, ok := s.Current()
	if !ok {
		return principal.Principal{}, ErrNotAuthenticated
	}
	return p, nil
}
