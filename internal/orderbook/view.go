package orderbook

import (
	"fmt"
	"strings"

	"matchbook/internal/common"
	"matchbook/internal/order"
)

// String renders a human-readable view of both sides in price-time
// priority, intended for debugging and terminal reports rather than any
// wire format.
func (ob *Orderbook) String() string {
	var b strings.Builder
	for _, side := range [...]common.Side{common.Ask, common.Bid} {
		fmt.Fprintf(&b, "%s:\n", side)
		ob.Iter(side, func(l *order.LimitOrder) bool {
			fmt.Fprintf(&b, "  price=%s remaining=%s status=%s\n", l.LimitPrice(), l.Remaining(), l.Status())
			return true
		})
	}
	return b.String()
}
