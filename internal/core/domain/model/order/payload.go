package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"printflow/internal/core/domain/model/principal"
	"printflow/internal/pkg/errs"
)

// SpecificationsInput is the raw, unvalidated form of Specifications as
// submitted by the order form.
type SpecificationsInput struct {
	Type      string
	Size      string
	Quantity  int
	PaperType string
	Color     bool
}

// Build validates the input into Specifications.
func (in SpecificationsInput) Build() (Specifications, error) {
	return NewSpecifications(in.Type, in.Size, in.Quantity, in.PaperType, in.Color)
}

// NewOrderPayload is a New-Order request. ClientID names the owning client;
// clients may leave it empty to order for themselves, admins must set it.
type NewOrderPayload struct {
	ProjectName    string
	Specifications SpecificationsInput
	ClientID       string
	Notes          string
}

// ValidateNewOrder checks a New-Order request and returns it normalized:
// strings trimmed and option values in their canonical spelling.
// Every failing field is reported in the joined error.
func ValidateNewOrder(payload NewOrderPayload, submitter principal.Role) (NewOrderPayload, error) {
	normalized := NewOrderPayload{
		ProjectName: strings.TrimSpace(payload.ProjectName),
		ClientID:    strings.TrimSpace(payload.ClientID),
		Notes:       strings.TrimSpace(payload.Notes),
	}

	var problems []error
	if err := submitter.Validate(); err != nil {
		problems = append(problems, err)
	}
	if normalized.ProjectName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("project name"))
	}
	specs, err := payload.Specifications.Build()
	if err != nil {
		problems = append(problems, err)
	} else {
		normalized.Specifications = specs.Input()
	}
	if submitter == principal.Admin && normalized.ClientID == "" {
		problems = append(problems, errs.NewValueIsRequiredError("client id"))
	}

	if err = errors.Join(problems...); err != nil {
		return NewOrderPayload{}, err
	}
	return normalized, nil
}

// SpecificationsPatch carries the specification fields to change; nil fields are left alone.
type SpecificationsPatch struct {
	Type      *string
	Size      *string
	Quantity  *int
	PaperType *string
	Color     *bool
}

// Patch is a partial order update. Only non-nil fields are applied.
// OwnerID and CreatedAt exist so that an attempt to change them can be
// detected and rejected; sending the current value is accepted as a no-op.
type Patch struct {
	OwnerID             *string
	CreatedAt           *time.Time
	Status              *Status
	ProjectName         *string
	Specifications      *SpecificationsPatch
	EstimatedCompletion *time.Time
	TrackingNumbers     *[]string
	Notes               *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.OwnerID == nil && p.CreatedAt == nil && p.Status == nil && p.ProjectName == nil &&
		p.Specifications == nil && p.EstimatedCompletion == nil && p.TrackingNumbers == nil && p.Notes == nil
}

// ValidateUpdate checks patch against existing without modifying either.
// Field rules match ValidateNewOrder; in addition the owner and creation
// timestamp may not change, the estimate may not precede creation, and
// tracking numbers may not be blank. An out-of-range status yields an
// UnknownStatusError.
func ValidateUpdate(existing *Order, patch Patch) error {
	if err := existing.Validate(); err != nil {
		return err
	}

	var problems []error
	if patch.OwnerID != nil && strings.TrimSpace(*patch.OwnerID) != existing.ownerID {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"owner id", fmt.Errorf("owner of order %s cannot change", existing.id)))
	}
	if patch.CreatedAt != nil && !patch.CreatedAt.Equal(existing.createdAt) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"created at", fmt.Errorf("creation time of order %s cannot change", existing.id)))
	}
	if patch.Status != nil {
		if err := patch.Status.Validate(); err != nil {
			problems = append(problems, err)
		}
	}
	if patch.ProjectName != nil && strings.TrimSpace(*patch.ProjectName) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("project name"))
	}
	if patch.Specifications != nil {
		if _, err := existing.specifications.merge(*patch.Specifications); err != nil {
			problems = append(problems, err)
		}
	}
	if patch.EstimatedCompletion != nil {
		if err := validateEstimate(existing.createdAt, *patch.EstimatedCompletion); err != nil {
			problems = append(problems, err)
		}
	}
	if patch.TrackingNumbers != nil {
		if _, err := normalizeTrackingNumbers(*patch.TrackingNumbers); err != nil {
			problems = append(problems, err)
		}
	}

	return errors.Join(problems...)
}

func validateEstimate(createdAt, estimate time.Time) error {
	if estimate.IsZero() {
		return errs.NewValueIsRequiredError("estimated completion")
	}
	if estimate.Before(createdAt) {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimated completion",
			fmt.Errorf("%s is before creation time %s", estimate.Format(time.RFC3339), createdAt.Format(time.RFC3339)),
		)
	}
	return nil
}

func normalizeTrackingNumbers(numbers []string) ([]string, error) {
	out := make([]string, 0, len(numbers))
	var problems []error
	for i, n := range numbers {
		trimmed, err := normalizeTrackingNumber(n)
		if err != nil {
			problems = append(problems, errs.NewValueIsRequiredErrorWithCause(
				"tracking number", fmt.Errorf("entry %d is blank", i)))
			continue
		}
		out = append(out, trimmed)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeTrackingNumber(n string) (string, error) {
	trimmed := strings.TrimSpace(n)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("tracking number")
	}
	return trimmed, nil
}
