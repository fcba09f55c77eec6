package orderbook

import (
	"strconv"
	"testing"

	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/types"
)

// BenchmarkSweepAsks floods the ask side with N resting orders at
// ascending prices, then times a single bid sweep across all of them.
func BenchmarkSweepAsks(b *testing.B) {
	for _, n := range []int{100, 1_000, 10_000} {
		n := n
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				ob := New()
				for p := 0; p < n; p++ {
					price := types.NewPrice(strconv.Itoa(p + 1))
					qty := types.NewQuantity("1")
					l, err := order.ToLimitOrder(order.New(common.NewOrderID(), common.Ask,
						order.NewLimit(price, common.DefaultTimeInForce(), qty)))
					if err != nil {
						b.Fatal(err)
					}
					ob.Insert(l)
				}

				taker := order.New(common.NewOrderID(), common.Bid,
					order.NewMarketByBase(false, types.NewQuantity(strconv.Itoa(n))))
				b.StartTimer()

				for !taker.IsClosed() {
					top, ok := ob.PeekMut(common.Ask)
					if !ok {
						taker.Cancel()
						break
					}
					if top.Matches(taker) != nil {
						taker.Cancel()
						break
					}
					fillQty := top.Remaining()
					if taker.Remaining().LessThan(fillQty) {
						fillQty = taker.Remaining()
					}
					if err := top.Fill(fillQty); err != nil {
						b.Fatal(err)
					}
					if err := taker.Fill(fillQty, top.LimitPrice()); err != nil {
						b.Fatal(err)
					}
					if top.IsClosed() {
						ob.Pop(common.Ask)
					}
				}
			}
		})
	}
}
