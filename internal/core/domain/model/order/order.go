package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"printflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// DefaultLeadTime is how far after creation a new order's completion is estimated.
const DefaultLeadTime = 3 * 24 * time.Hour

// Order is a client's print job. It is the aggregate root of the portal:
// every change goes through its methods so that its invariants hold.
//
// Order follows these invariants:
//   - ID is unique and never reused (assigned by the repository)
//   - Owner and creation time never change after construction
//   - Quantity is at least 1
//   - Tracking numbers are never blank
//
// Orders have no delete operation.
type Order struct {
	id      string
	ownerID string

	status         Status
	projectName    string
	specifications Specifications

	createdAt           time.Time
	estimatedCompletion time.Time

	trackingNumbers []string
	notes           string

	isConstructed bool
}

// NewOrder creates a freshly submitted order: status Pending, no tracking
// numbers, and completion estimated at createdAt + leadTime.
//
// Example:
//
//	specs, _ := order.NewSpecifications("Flyers", "Standard", 250, "Glossy", true)
//	o, err := order.NewOrder("1003", "2", "Flyers Q1", specs, "", now, order.DefaultLeadTime)
func NewOrder(
	id, ownerID, projectName string,
	specifications Specifications,
	notes string,
	createdAt time.Time,
	leadTime time.Duration,
) (*Order, error) {
	if leadTime < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("lead time", fmt.Errorf("%s is negative", leadTime))
	}
	return RestoreOrder(id, ownerID, Pending, projectName, specifications,
		createdAt, createdAt.Add(leadTime), nil, notes)
}

// RestoreOrder rebuilds an order in any state, for seeding and reloading
// orders that already exist. All invariants are checked.
func RestoreOrder(
	id, ownerID string,
	status Status,
	projectName string,
	specifications Specifications,
	createdAt, estimatedCompletion time.Time,
	trackingNumbers []string,
	notes string,
) (*Order, error) {
	o := &Order{
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setStatus(status),
		o.setProjectName(projectName),
		o.setSpecifications(specifications),
		o.setTimes(createdAt, estimatedCompletion),
		o.setTrackingNumbers(trackingNumbers),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// Clone returns a deep copy that shares no mutable state with o.
func (o *Order) Clone() *Order {
	c := *o
	c.trackingNumbers = slices.Clone(o.trackingNumbers)
	return &c
}

func (o *Order) ID() string {
	return o.id
}

// OwnerID returns the identifier of the client the order belongs to.
func (o *Order) OwnerID() string {
	return o.ownerID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ProjectName() string {
	return o.projectName
}

func (o *Order) Specifications() Specifications {
	return o.specifications
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) EstimatedCompletion() time.Time {
	return o.estimatedCompletion
}

// TrackingNumbers returns a copy of the shipment tracking numbers in the order they were added.
func (o *Order) TrackingNumbers() []string {
	return slices.Clone(o.trackingNumbers)
}

func (o *Order) Notes() string {
	return o.notes
}

// Progress returns the completion ratio of the current status in [0, 1].
func (o *Order) Progress() float64 {
	ratio, err := ProgressRatio(o.status)
	if err != nil {
		return 0
	}
	return ratio
}

// Apply merges patch into the order field by field. Nothing changes unless
// the whole patch passes ValidateUpdate.
func (o *Order) Apply(patch Patch) error {
	if err := ValidateUpdate(o, patch); err != nil {
		return err
	}

	if patch.Status != nil {
		o.status = *patch.Status
	}
	if patch.ProjectName != nil {
		o.projectName = strings.TrimSpace(*patch.ProjectName)
	}
	if patch.Specifications != nil {
		specs, err := o.specifications.merge(*patch.Specifications)
		if err != nil {
			return err
		}
		o.specifications = specs
	}
	if patch.EstimatedCompletion != nil {
		o.estimatedCompletion = patch.EstimatedCompletion.UTC()
	}
	if patch.TrackingNumbers != nil {
		numbers, err := normalizeTrackingNumbers(*patch.TrackingNumbers)
		if err != nil {
			return err
		}
		o.trackingNumbers = numbers
	}
	if patch.Notes != nil {
		o.notes = strings.TrimSpace(*patch.Notes)
	}
	return nil
}

// AddTrackingNumber appends a trimmed, non-blank tracking number.
func (o *Order) AddTrackingNumber(number string) error {
	trimmed, err := normalizeTrackingNumber(number)
	if err != nil {
		return err
	}
	o.trackingNumbers = append(o.trackingNumbers, trimmed)
	return nil
}

// RemoveTrackingNumber deletes the tracking number at index.
func (o *Order) RemoveTrackingNumber(index int) error {
	if index < 0 || index >= len(o.trackingNumbers) {
		return errs.NewValueIsOutOfRangeError("tracking number index", index, 0, len(o.trackingNumbers)-1)
	}
	o.trackingNumbers = slices.Delete(o.trackingNumbers, index, index+1)
	return nil
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID string) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return errs.NewValueIsRequiredError("owner id")
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("project name")
	}
	o.projectName = name
	return nil
}

func (o *Order) setSpecifications(specifications Specifications) error {
	if err := specifications.Validate(); err != nil {
		return err
	}
	o.specifications = specifications
	return nil
}

func (o *Order) setTimes(createdAt, estimatedCompletion time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	if err := validateEstimate(createdAt, estimatedCompletion); err != nil {
		return err
	}
	o.createdAt = createdAt.UTC()
	o.estimatedCompletion = estimatedCompletion.UTC()
	return nil
}

func (o *Order) setTrackingNumbers(numbers []string) error {
	normalized, err := normalizeTrackingNumbers(numbers)
	if err != nil {
		return err
	}
	o.trackingNumbers = normalized
	return nil
}
