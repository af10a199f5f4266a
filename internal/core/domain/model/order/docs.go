// Package order contains the Order aggregate for the storefront's order
// lifecycle & settlement engine.
//
// The aggregate owns:
//   - the settlement amounts (sub total, shipping fee, discount, total)
//   - the forward-only status state machine and its transition table
//   - the append-only status history audit trail
//   - the single-shot cancellation record
//
// All mutation goes through NewOrder, Advance, and Cancel; persistence
// rehydration goes through RestoreOrder, which re-checks every invariant.
package order
