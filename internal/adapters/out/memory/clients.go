package memory

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/errs"
)

// ClientDirectory is a fixed, read-only list of clients.
type ClientDirectory struct {
	byID    map[string]principal.Principal
	ordered []principal.Principal
}

// NewClientDirectory builds a directory from clients. Every entry must be a
// constructed principal with the client role and a unique id.
func NewClientDirectory(clients ...principal.Principal) (*ClientDirectory, error) {
	d := &ClientDirectory{
		byID:    make(map[string]principal.Principal, len(clients)),
		ordered: make([]principal.Principal, 0, len(clients)),
	}

	var problems []error
	for _, c := range clients {
		if err := c.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		if !c.IsClient() {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"client", fmt.Errorf("principal %s has role %s", c.ID(), c.Role())))
			continue
		}
		if _, dup := d.byID[c.ID()]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"client", fmt.Errorf("duplicate client id %s", c.ID())))
			continue
		}
		d.byID[c.ID()] = c
		d.ordered = append(d.ordered, c)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}

	slices.SortFunc(d.ordered, func(a, b principal.Principal) int {
		return compareIDs(a.ID(), b.ID())
	})
	return d, nil
}

// NewDemoClientDirectory returns the portal's demo clients.
func NewDemoClientDirectory() (*ClientDirectory, error) {
	clients := make([]principal.Principal, 0, 3)
	for _, c := range []struct{ id, email, name string }{
		{"2", "client@example.com", "John Doe"},
		{"3", "jane@example.com", "Jane Smith"},
		{"4", "bob@example.com", "Bob Wilson"},
	} {
		p, err := principal.NewPrincipal(c.id, c.email, c.name, principal.Client)
		if err != nil {
			return nil, err
		}
		clients = append(clients, p)
	}
	return NewClientDirectory(clients...)
}

func (d *ClientDirectory) Client(id string) (principal.Principal, bool) {
	p, ok := d.byID[id]
	return p, ok
}

func (d *ClientDirectory) Clients() []principal.Principal {
	return slices.Clone(d.ordered)
}

// compareIDs orders numeric ids numerically and everything else lexically after them.
func compareIDs(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

