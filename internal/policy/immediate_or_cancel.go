package policy

import (
	"matchbook/internal/order"
	"matchbook/internal/orderbook"
)

// enforceImmediateOrCancel closes incoming once matching has finished if
// it is immediate-or-cancel: any quantity left over must not rest.
func enforceImmediateOrCancel(incoming *order.Order, _ *orderbook.Orderbook) {
	if incoming.IsImmediateOrCancel() {
		incoming.Cancel()
	}
}
