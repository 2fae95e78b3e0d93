package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is the mocked login backend. Passwords are kept only as
// bcrypt hashes; emails match case-insensitively.
type CredentialStore struct {
	mu      sync.RWMutex
	cost    int
	records map[string]credential
}

type credential struct {
	hash      []byte
	principal principal.Principal
}

// NewCredentialStore creates an empty store hashing with the given bcrypt
// cost. Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{
		cost:    cost,
		records: make(map[string]credential),
	}
}

// NewDemoCredentialStore returns a store holding the portal's two demo accounts.
func NewDemoCredentialStore(cost int) (*CredentialStore, error) {
	s := NewCredentialStore(cost)

	admin, err := principal.NewPrincipal("1", "admin@printflow.com", "Admin User", principal.Admin)
	if err != nil {
		return nil, err
	}
	client, err := principal.NewPrincipal("2", "client@example.com", "John Doe", principal.Client)
	if err != nil {
		return nil, err
	}

	if err = s.Register(admin, "admin123"); err != nil {
		return nil, err
	}
	if err = s.Register(client, "client123"); err != nil {
		return nil, err
	}
	return s, nil
}

// Register stores a credential record for p, replacing any record with the same email.
func (s *CredentialStore) Register(p principal.Principal, password string) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", p.Email(), err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[normalizeEmail(p.Email())] = credential{hash: hash, principal: p}
	return nil
}

// Authenticate returns the principal whose email and password match.
// Unknown emails and wrong passwords produce the same AuthenticationError.
func (s *CredentialStore) Authenticate(ctx context.Context, email, password string) (principal.Principal, error) {
	if err := ctx.Err(); err != nil {
		return principal.Principal{}, err
	}

	s.mu.RLock()
	record, ok := s.records[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return principal.Principal{}, errs.NewAuthenticationError(email)
	}
	if err := bcrypt.CompareHashAndPassword(record.hash, []byte(password)); err != nil {
		return principal.Principal{}, errs.NewAuthenticationError(email)
	}
	return record.principal, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
