package order

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is matched by every UnknownStatusError.
var ErrUnknownStatus = errors.New("unknown status")

// UnknownStatusError reports a status value outside the five canonical states.
// It signals a programming or data-integrity fault rather than bad user input.
type UnknownStatusError struct {
	Value string
}

func NewUnknownStatusError(value string) *UnknownStatusError {
	return &UnknownStatusError{Value: value}
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("%s: %q is not one of %s", ErrUnknownStatus, e.Value, strings.Join(pipelineNames(), ", "))
}

func (e *UnknownStatusError) Unwrap() error {
	return ErrUnknownStatus
}

// Status represents the lifecycle state of a print order.
// The pipeline is strictly linear:
//
//	Pending ──> Processing ──> Printing ──> Shipped ──> Completed
//
// There is no branch and no cancellation state. The pipeline only defines
// ordering and progress; admins may still set any status on an order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the order has been received.
	Pending

	// Processing means the shop is preparing the job.
	Processing

	// Printing means the job is on the press.
	Printing

	// Shipped means the job left the shop; tracking numbers usually exist by now.
	Shipped

	// Completed is the terminal status.
	Completed
)

type statusInfo struct {
	name  string
	label string
}

func getStatusInfo() map[Status]statusInfo {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]statusInfo{
		Pending:    {name: "pending", label: "Order Received"},
		Processing: {name: "processing", label: "Processing"},
		Printing:   {name: "printing", label: "Printing"},
		Shipped:    {name: "shipped", label: "Shipped"},
		Completed:  {name: "completed", label: "Completed"},
	}
}

// Pipeline returns the canonical status sequence in lifecycle order.
func Pipeline() []Status {
	return []Status{Pending, Processing, Printing, Shipped, Completed}
}

func pipelineNames() []string {
	names := make([]string, 0, len(Pipeline()))
	for _, s := range Pipeline() {
		names = append(names, s.String())
	}
	return names
}

// ParseStatus maps a status name such as "printing" to its Status.
// Matching ignores case and surrounding spaces.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for status, info := range getStatusInfo() {
		if info.name == name {
			return status, nil
		}
	}
	return Unknown, NewUnknownStatusError(s)
}

// Validate returns an UnknownStatusError for anything outside the pipeline.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return NewUnknownStatusError(fmt.Sprintf("%d", int(s)))
	}
	return nil
}

// String returns the lowercase status name, or "unknown" for invalid values.
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.name
	}
	return "unknown"
}

// Label returns the human-readable step title shown on the order tracker.
func (s Status) Label() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.label
	}
	return "Unknown"
}

// IsTerminal reports whether s is the last pipeline state.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// Next returns the following pipeline state. It returns false for Completed
// and for invalid values.
func (s Status) Next() (Status, bool) {
	idx, err := IndexOf(s)
	if err != nil || s.IsTerminal() {
		return Unknown, false
	}
	return Pipeline()[idx+1], true
}

// IndexOf returns the zero-based position of s in the pipeline.
func IndexOf(s Status) (int, error) {
	for i, candidate := range Pipeline() {
		if candidate == s {
			return i, nil
		}
	}
	return -1, s.Validate()
}

// ProgressRatio returns IndexOf(s) / (len(Pipeline()) - 1): 0 for Pending, 1 for Completed.
func ProgressRatio(s Status) (float64, error) {
	idx, err := IndexOf(s)
	if err != nil {
		return 0, err
	}
	return float64(idx) / float64(len(Pipeline())-1), nil
}

// MarshalText implements encoding.TextMarshaler so statuses serialize by name.
func (s Status) MarshalText() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
