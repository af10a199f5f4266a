// Package services provides domain services for the order lifecycle that
// don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderCodeAllocator: generates high-entropy candidate order codes;
//     the database unique constraint on the code column is the final
//     arbiter of uniqueness.
package services
