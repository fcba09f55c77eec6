// Package book implements the two-sided price-level index described in the
// matching subsystem: OrdersByID maps an order id to its resting
// LimitOrder, and OrdersBySide maps (side, price) to a FIFO queue of order
// ids in price-time priority.
package book

import (
	"bytes"

	"github.com/tidwall/btree"

	"matchbook/internal/common"
	"matchbook/internal/order"
)

type idEntry struct {
	id common.OrderID
	o  *order.LimitOrder
}

// OrdersByID is the id -> resting order store. It is backed by an ordered
// map keyed by id so iteration is deterministic, matching the original
// workspace's BTreeMap<OrderId, LimitOrder> index.
type OrdersByID struct {
	tree *btree.BTreeG[*idEntry]
}

// NewOrdersByID constructs an empty id index.
func NewOrdersByID() *OrdersByID {
	less := func(a, b *idEntry) bool {
		return bytes.Compare(a.id[:], b.id[:]) < 0
	}
	return &OrdersByID{tree: btree.NewBTreeG(less)}
}

// Get returns the resting order for id, if any.
func (idx *OrdersByID) Get(id common.OrderID) (*order.LimitOrder, bool) {
	e, ok := idx.tree.Get(&idEntry{id: id})
	if !ok {
		return nil, false
	}
	return e.o, true
}

// GetMut returns a mutable handle to the resting order for id, if any.
// Mutations through the returned pointer are visible immediately: LimitOrder
// is stored by pointer, so there is no separate commit step at this layer
// (nor in Orderbook.PeekMut: its caller pops an order that has closed).
func (idx *OrdersByID) GetMut(id common.OrderID) (*order.LimitOrder, bool) {
	e, ok := idx.tree.GetMut(&idEntry{id: id})
	if !ok {
		return nil, false
	}
	return e.o, true
}

// Insert adds or replaces the resting order under id.
func (idx *OrdersByID) Insert(id common.OrderID, o *order.LimitOrder) {
	idx.tree.Set(&idEntry{id: id, o: o})
}

// Remove deletes and returns the resting order for id, if any.
func (idx *OrdersByID) Remove(id common.OrderID) (*order.LimitOrder, bool) {
	e, ok := idx.tree.Delete(&idEntry{id: id})
	if !ok {
		return nil, false
	}
	return e.o, true
}

// Len returns the number of resting orders indexed by id.
func (idx *OrdersByID) Len() int { return idx.tree.Len() }
