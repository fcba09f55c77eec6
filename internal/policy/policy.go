// Package policy implements the time-in-force enforcement hooks that wrap
// the matching loop: FillOrKill and PostOnly run before matching begins,
// ImmediateOrCancel runs once matching has finished.
package policy

import (
	"matchbook/internal/order"
	"matchbook/internal/orderbook"
)

// Func is the shape every policy enforces: inspect (and possibly cancel)
// the incoming order against the current state of the book.
type Func func(incoming *order.Order, ob *orderbook.Orderbook)

// Before returns the policies that must run before an incoming order is
// matched against the book, in the order they must run: FillOrKill first,
// since it may cancel the order outright and make PostOnly's check moot.
func Before() []Func {
	return []Func{enforceFillOrKill, enforcePostOnly}
}

// After returns the policies that must run once matching has completed.
func After() []Func {
	return []Func{enforceImmediateOrCancel}
}
