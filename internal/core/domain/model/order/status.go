package order

import (
	"errors"
	"fmt"

	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyTerminal is returned when a status change is attempted
	// on an order that reached DELIVERED or CANCELLED. Terminal statuses
	// permit no outgoing transitions.
	ErrOrderAlreadyTerminal = errors.New("order is in a terminal status")

	// ErrInvalidTransition is the unwrap target for InvalidTransitionError.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError reports an attempted status move that the
// transition table does not permit, e.g. PLACED directly to DELIVERED.
type InvalidTransitionError struct {
	Current Status
	Target  Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected move from current to target.
func NewInvalidTransitionError(current, target Status) *InvalidTransitionError {
	return &InvalidTransitionError{Current: current, Target: target}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.Current, e.Target)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a retail order.
// It implements a forward-only state machine:
//
//	PLACED ──> PREPARING ──> SHIPPING ──> DELIVERED
//	   │           │            │
//	   └───────────┴────────────┴──────> CANCELLED
//
// DELIVERED and CANCELLED are terminal. The transition table is the single
// source of truth for permitted moves; no other package encodes status
// vocabulary or ordering.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status of every order.
	Placed

	// Preparing indicates the order is being picked and packed.
	Preparing

	// Shipping indicates the order has been handed to the carrier.
	Shipping

	// Delivered indicates the order reached the receiver. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// getStatusStrings returns the wire/display names for all statuses,
// matching the stored status vocabulary.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Placed:    "PLACED",
		Preparing: "PREPARING",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:    "PLACED",
		Preparing: "PREPARING",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// forwardTransitions maps each status to its single permitted successor on
// the fulfilment path. Cancellation is handled separately: any non-terminal
// status may move to Cancelled.
func forwardTransitions() map[Status]Status {
	return map[Status]Status{
		Placed:    Preparing,
		Preparing: Shipping,
		Shipping:  Delivered,
	}
}

// StatusFromString parses a stored or caller-supplied status name.
// Returns a ValueIsInvalidError for anything outside the valid vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status value is one an order may hold.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the status name, e.g. "PLACED".
// Safe to call on any value; invalid values return "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status permits no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the move from s to target and returns the new
// status.
//
// Valid moves:
//   - the next status on the fulfilment path (PLACED -> PREPARING,
//     PREPARING -> SHIPPING, SHIPPING -> DELIVERED)
//   - any non-terminal status -> CANCELLED
//
// Returns ErrOrderAlreadyTerminal when s is terminal and an
// InvalidTransitionError for every other rejected move. Transitioning to
// the current status is rejected here; idempotent same-status requests are
// short-circuited by Order.Advance before reaching the table.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, ErrOrderAlreadyTerminal
	}

	if target == Cancelled {
		return Cancelled, nil
	}

	if next, ok := forwardTransitions()[s]; ok && next == target {
		return target, nil
	}

	return Unknown, NewInvalidTransitionError(s, target)
}
