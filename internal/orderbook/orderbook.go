// Package orderbook composes the id and price-level indices from
// internal/book into the single structure the matching algorithm operates
// on: insert, remove, peek the best order on a side, pop it once it is
// fully consumed, and report aggregate spread/length/volume.
package orderbook

import (
	"matchbook/internal/book"
	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/types"
)

// Orderbook holds the resting orders for a single trading pair.
type Orderbook struct {
	byID   *book.OrdersByID
	bySide *book.OrdersBySide
}

// New constructs an empty orderbook.
func New() *Orderbook {
	return &Orderbook{
		byID:   book.NewOrdersByID(),
		bySide: book.NewOrdersBySide(),
	}
}

// Insert books a resting limit order. Callers must not insert an order
// that is already closed.
func (ob *Orderbook) Insert(l *order.LimitOrder) {
	ob.byID.Insert(l.ID(), l)
	ob.bySide.Insert(l.Side(), l.LimitPrice(), l.ID())
}

// Remove takes an order out of the book entirely, returning it if present.
func (ob *Orderbook) Remove(id common.OrderID) (*order.LimitOrder, bool) {
	l, ok := ob.byID.Remove(id)
	if !ok {
		return nil, false
	}
	ob.bySide.Remove(l.Side(), l.LimitPrice(), id)
	return l, true
}

// Peek returns the best resting order on side without removing it.
func (ob *Orderbook) Peek(side common.Side) (*order.LimitOrder, bool) {
	id, ok := ob.bySide.Peek(side)
	if !ok {
		return nil, false
	}
	l, ok := ob.byID.Get(id)
	if !ok {
		panic("orderbook: id indexed by side is missing from id index")
	}
	return l, true
}

// PeekMut returns a mutable handle to the best resting order on side. The
// caller is responsible for popping the order from the book once it
// closes; PeekMut itself never mutates the index.
func (ob *Orderbook) PeekMut(side common.Side) (*order.LimitOrder, bool) {
	id, ok := ob.bySide.Peek(side)
	if !ok {
		return nil, false
	}
	l, ok := ob.byID.GetMut(id)
	if !ok {
		panic("orderbook: id indexed by side is missing from id index")
	}
	return l, true
}

// Pop removes and returns the best resting order on side.
func (ob *Orderbook) Pop(side common.Side) (*order.LimitOrder, bool) {
	id, ok := ob.bySide.Pop(side)
	if !ok {
		return nil, false
	}
	l, ok := ob.byID.Remove(id)
	if !ok {
		panic("orderbook: id popped from side index is missing from id index")
	}
	return l, true
}

// Spread returns the best ask and best bid price, if both sides are
// non-empty.
func (ob *Orderbook) Spread() (ask, bid types.Price, ok bool) {
	askPrice, askOk := ob.bySide.PeekPrice(common.Ask)
	bidPrice, bidOk := ob.bySide.PeekPrice(common.Bid)
	if !askOk || !bidOk {
		return types.ZeroPrice, types.ZeroPrice, false
	}
	return askPrice, bidPrice, true
}

// Len reports the number of resting orders on each side.
func (ob *Orderbook) Len() (asks, bids int) {
	return ob.bySide.Len(common.Ask), ob.bySide.Len(common.Bid)
}

// Volume reports the total remaining quantity resting on each side.
func (ob *Orderbook) Volume() (asks, bids types.Quantity) {
	asks, bids = types.ZeroQuantity, types.ZeroQuantity
	ob.bySide.Iter(common.Ask, func(_ types.Price, id common.OrderID) bool {
		if l, ok := ob.byID.Get(id); ok {
			asks = asks.Add(l.Remaining())
		}
		return true
	})
	ob.bySide.Iter(common.Bid, func(_ types.Price, id common.OrderID) bool {
		if l, ok := ob.byID.Get(id); ok {
			bids = bids.Add(l.Remaining())
		}
		return true
	})
	return asks, bids
}

// Iter calls fn for every resting order on side in price-time priority,
// stopping early if fn returns false.
func (ob *Orderbook) Iter(side common.Side, fn func(*order.LimitOrder) bool) {
	ob.bySide.Iter(side, func(_ types.Price, id common.OrderID) bool {
		l, ok := ob.byID.Get(id)
		if !ok {
			panic("orderbook: id indexed by side is missing from id index")
		}
		return fn(l)
	})
}
