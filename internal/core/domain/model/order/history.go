package order

import (
	"time"

	"github.com/vudinhquy04/NovaTechApp/internal/pkg/errs"
)

// HistoryEntry is one record of the order's append-only audit trail.
// Entries are immutable once created; the trail is never reordered or
// truncated, and insertion order is chronological order.
type HistoryEntry struct {
	status      Status
	label       string
	description string
	timestamp   time.Time
}

// NewHistoryEntry creates an audit trail entry. The status must be valid,
// the label is a required short human-readable summary ("order placed"),
// and the description is optional free text.
func NewHistoryEntry(status Status, label, description string, timestamp time.Time) (HistoryEntry, error) {
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	if label == "" {
		return HistoryEntry{}, errs.NewValueIsRequiredError("history entry label")
	}

	if timestamp.IsZero() {
		return HistoryEntry{}, errs.NewValueIsRequiredError("history entry timestamp")
	}

	return HistoryEntry{
		status:      status,
		label:       label,
		description: description,
		timestamp:   timestamp,
	}, nil
}

// Status returns the status recorded by this entry.
func (h HistoryEntry) Status() Status {
	return h.status
}

// Label returns the short human-readable summary.
func (h HistoryEntry) Label() string {
	return h.label
}

// Description returns the optional free-text detail.
func (h HistoryEntry) Description() string {
	return h.description
}

// Timestamp returns when the status change was recorded.
func (h HistoryEntry) Timestamp() time.Time {
	return h.timestamp
}

// validateHistory enforces the audit trail invariants shared by NewOrder and
// RestoreOrder: the trail is non-empty, starts at PLACED, its timestamps
// never decrease, and its last entry matches the order's current status.
func validateHistory(history []HistoryEntry, current Status) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("status history")
	}

	if history[0].Status() != Placed {
		return errs.NewValueIsInvalidError("status history must start at PLACED")
	}

	for i := 1; i < len(history); i++ {
		if history[i].Timestamp().Before(history[i-1].Timestamp()) {
			return errs.NewValueIsInvalidError("status history timestamps must be non-decreasing")
		}
	}

	if history[len(history)-1].Status() != current {
		return errs.NewValueIsInvalidError("order status must match the last history entry")
	}

	return nil
}
