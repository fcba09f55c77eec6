package policy

import (
	"matchbook/internal/order"
	"matchbook/internal/orderbook"
	"matchbook/internal/types"
)

// enforceFillOrKill cancels incoming if it is fill-or-kill and the book
// cannot currently fill it in full.
func enforceFillOrKill(incoming *order.Order, ob *orderbook.Orderbook) {
	if incoming.IsFillOrKill() && !canFill(incoming, ob) {
		incoming.Cancel()
	}
}

// canFill walks the opposite side of the book in price-time priority,
// stopping as soon as either the order is exhausted (true) or a
// non-crossing resting order is reached (false). It is short-circuiting:
// it never visits more of the book than necessary to decide.
func canFill(incoming *order.Order, ob *orderbook.Orderbook) bool {
	opposite := incoming.Side().Opposite()

	if incoming.Type().IsFundsPriced() {
		remaining := incoming.RemainingNotional()
		filled := false
		ob.Iter(opposite, func(resting *order.LimitOrder) bool {
			if resting.Matches(incoming) != nil {
				return false
			}
			available := resting.Remaining().Mul(resting.LimitPrice())
			take := types.MinNotional(remaining, available)
			remaining = remaining.Sub(take)
			if remaining.IsZero() {
				filled = true
				return false
			}
			return true
		})
		return filled
	}

	remaining := incoming.Remaining()
	filled := false
	ob.Iter(opposite, func(resting *order.LimitOrder) bool {
		if resting.Matches(incoming) != nil {
			return false
		}
		take := types.MinQuantity(remaining, resting.Remaining())
		remaining = remaining.Sub(take)
		if remaining.IsZero() {
			filled = true
			return false
		}
		return true
	})
	return filled
}
