package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CodePrefix brands every order code. Codes look like NT-20260829-1A2B3C4D.
const CodePrefix = "NT"

// OrderCodeAllocator is a domain service that produces candidate order codes.
//
// A candidate is not guaranteed unique: uniqueness is owned by the database
// constraint on the code column. The allocator only makes collisions
// astronomically unlikely by deriving the suffix from a fresh random UUID,
// so the bounded retry loop in the create handler almost never spins.
type OrderCodeAllocator struct{}

// NewOrderCodeAllocator creates a new OrderCodeAllocator instance.
func NewOrderCodeAllocator() OrderCodeAllocator {
	return OrderCodeAllocator{}
}

// Generate returns a candidate order code for the given allocation time.
// The date segment keeps codes human-sortable; the suffix carries the entropy.
func (a OrderCodeAllocator) Generate(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("%s-%s-%s", CodePrefix, now.UTC().Format("20060102"), suffix)
}
