// Package principal models the authenticated user acting on the portal and
// the role that decides what that user may see and change.
package principal

import (
	"errors"
	"fmt"
	"strings"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrPrincipalIsNotConstructed is returned when a Principal was not created via NewPrincipal.
var ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")

// Role is the coarse permission level of a principal.
type Role string

const (
	Admin  Role = "admin"
	Client Role = "client"
)

// ParseRole converts a stored role name into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects anything other than admin or client.
func (r Role) Validate() error {
	switch r {
	case Admin, Client:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// Principal is the authenticated user. It is a value: copies are independent.
type Principal struct {
	id    string
	email string
	name  string
	role  Role

	guard guard.ConstructorGuard
}

// NewPrincipal validates and builds a Principal. Id, email and name are
// trimmed and must be non-empty.
func NewPrincipal(id, email, name string, role Role) (Principal, error) {
	p := Principal{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setEmail(email),
		p.setName(name),
		p.setRole(role),
	); err != nil {
		return Principal{}, err
	}

	return p, nil
}

// Validate ensures the principal was built through NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

func (p Principal) ID() string {
	return p.id
}

func (p Principal) Email() string {
	return p.email
}

func (p Principal) Name() string {
	return p.name
}

func (p Principal) Role() Role {
	return p.role
}

func (p Principal) IsAdmin() bool {
	return p.role == Admin
}

func (p Principal) IsClient() bool {
	return p.role == Client
}

func (p *Principal) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("principal id")
	}
	p.id = id
	return nil
}

func (p *Principal) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no @", email))
	}
	p.email = email
	return nil
}

func (p *Principal) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Principal) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	p.role = role
	return nil
}
