// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: identity for entities and aggregates
//   - Money: decimal monetary amounts for settlement arithmetic
//
// Kernel types are immutable value objects. They validate on construction
// and are safe to pass by value and share between goroutines.
package kernel
