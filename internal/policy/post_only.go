package policy

import (
	"matchbook/internal/order"
	"matchbook/internal/orderbook"
)

// enforcePostOnly cancels incoming if it is post-only and would execute
// immediately against the current top of the opposite book. Post-only
// orders must rest; they are never allowed to take.
func enforcePostOnly(incoming *order.Order, ob *orderbook.Orderbook) {
	if !incoming.IsPostOnly() {
		return
	}

	top, ok := ob.Peek(incoming.Side().Opposite())
	if !ok {
		return
	}

	if top.Matches(incoming) == nil {
		incoming.Cancel()
	}
}
