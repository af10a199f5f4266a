package order

import (
	"fmt"
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// CancellationReason is the buyer's stated reason for cancelling an order.
// The vocabulary is fixed; free-form detail goes into the optional notes.
type CancellationReason int

const (
	// ReasonUnknown represents an invalid or undefined reason.
	ReasonUnknown CancellationReason = iota

	// ChangedMind: the buyer no longer wants the order.
	ChangedMind

	// BetterPrice: the buyer found the goods cheaper elsewhere.
	BetterPrice

	// LongDelivery: delivery was taking too long.
	LongDelivery

	// OtherReason: anything else; usually paired with notes.
	OtherReason
)

func getReasonStrings() map[CancellationReason]string {
	return map[CancellationReason]string{
		ChangedMind:  "CHANGED_MIND",
		BetterPrice:  "BETTER_PRICE",
		LongDelivery: "LONG_DELIVERY",
		OtherReason:  "OTHER",
	}
}

// CancellationReasonFromString parses a stored or caller-supplied reason.
func CancellationReasonFromString(s string) (CancellationReason, error) {
	for reason, name := range getReasonStrings() {
		if name == s {
			return reason, nil
		}
	}
	return ReasonUnknown, errs.NewValueIsInvalidErrorWithCause(
		"cancellation reason",
		fmt.Errorf("%q is not a valid cancellation reason", s),
	)
}

// Validate checks that the reason belongs to the fixed vocabulary.
func (r CancellationReason) Validate() error {
	if _, ok := getReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"cancellation reason",
			fmt.Errorf("%d is not a valid cancellation reason", r),
		)
	}
	return nil
}

// String returns the reason name, e.g. "LONG_DELIVERY".
func (r CancellationReason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// Cancellation records why and when an order was cancelled. It is written
// exactly once, by Order.Cancel, in the same update that moves the order to
// CANCELLED.
type Cancellation struct {
	reason      CancellationReason
	notes       *string
	cancelledAt time.Time
}

// NewCancellation creates a cancellation record. The reason is mandatory;
// notes are optional free text stored verbatim.
func NewCancellation(reason CancellationReason, notes *string, cancelledAt time.Time) (Cancellation, error) {
	if err := reason.Validate(); err != nil {
		return Cancellation{}, err
	}

	if cancelledAt.IsZero() {
		return Cancellation{}, errs.NewValueIsRequiredError("cancelledAt")
	}

	return Cancellation{
		reason:      reason,
		notes:       notes,
		cancelledAt: cancelledAt,
	}, nil
}

// Reason returns the buyer's stated reason.
func (c Cancellation) Reason() CancellationReason {
	return c.reason
}

// Notes returns the optional free-text notes, nil when none were given.
func (c Cancellation) Notes() *string {
	return c.notes
}

// CancelledAt returns when the cancellation was recorded.
func (c Cancellation) CancelledAt() time.Time {
	return c.cancelledAt
}
