package book

import (
	"github.com/tidwall/btree"

	"matchbook/internal/common"
	"matchbook/internal/types"
)

// priceLevel is a FIFO queue of order ids resting at a single price.
type priceLevel struct {
	price types.Price
	ids   []common.OrderID
}

func (l *priceLevel) pushBack(id common.OrderID) {
	l.ids = append(l.ids, id)
}

func (l *priceLevel) front() (common.OrderID, bool) {
	if len(l.ids) == 0 {
		return common.OrderID{}, false
	}
	return l.ids[0], true
}

func (l *priceLevel) popFront() {
	l.ids = l.ids[1:]
}

func (l *priceLevel) remove(id common.OrderID) bool {
	for i, existing := range l.ids {
		if existing == id {
			l.ids = append(l.ids[:i], l.ids[i+1:]...)
			return true
		}
	}
	return false
}

// OrdersBySide is the two-sided price-level index: one btree per side,
// ordered so that Min() always yields the best price level for that side
// (lowest for asks, highest for bids), mirroring the teacher's
// PriceLevels = btree.BTreeG[*PriceLevel] layout but keyed by price with a
// FIFO id queue per level instead of a slice of full orders.
type OrdersBySide struct {
	asks *btree.BTreeG[*priceLevel]
	bids *btree.BTreeG[*priceLevel]
}

// NewOrdersBySide constructs an empty two-sided index.
func NewOrdersBySide() *OrdersBySide {
	askLess := func(a, b *priceLevel) bool { return a.price.LessThan(b.price) }
	bidLess := func(a, b *priceLevel) bool { return a.price.GreaterThan(b.price) }
	return &OrdersBySide{
		asks: btree.NewBTreeG(askLess),
		bids: btree.NewBTreeG(bidLess),
	}
}

func (s *OrdersBySide) tree(side common.Side) *btree.BTreeG[*priceLevel] {
	if side == common.Ask {
		return s.asks
	}
	return s.bids
}

// Insert appends id to the FIFO queue at price on side, creating the level
// if it does not already exist.
func (s *OrdersBySide) Insert(side common.Side, price types.Price, id common.OrderID) {
	t := s.tree(side)
	if lvl, ok := t.GetMut(&priceLevel{price: price}); ok {
		lvl.pushBack(id)
		return
	}
	lvl := &priceLevel{price: price}
	lvl.pushBack(id)
	t.Set(lvl)
}

// Remove deletes id from the level at price on side. It reports whether id
// was found. A level left empty by the removal is deleted immediately, so
// no dangling price levels survive (book invariant: no empty levels).
func (s *OrdersBySide) Remove(side common.Side, price types.Price, id common.OrderID) bool {
	t := s.tree(side)
	lvl, ok := t.GetMut(&priceLevel{price: price})
	if !ok {
		return false
	}
	if !lvl.remove(id) {
		return false
	}
	if len(lvl.ids) == 0 {
		t.Delete(&priceLevel{price: price})
	}
	return true
}

// Peek returns the id at the front of the best price level on side.
func (s *OrdersBySide) Peek(side common.Side) (common.OrderID, bool) {
	lvl, ok := s.tree(side).Min()
	if !ok {
		return common.OrderID{}, false
	}
	return lvl.front()
}

// PeekPrice returns the best price on side, if the side is non-empty.
func (s *OrdersBySide) PeekPrice(side common.Side) (types.Price, bool) {
	lvl, ok := s.tree(side).Min()
	if !ok {
		return types.ZeroPrice, false
	}
	return lvl.price, true
}

// Pop removes and returns the id at the front of the best price level on
// side. A level emptied by the pop is deleted immediately.
func (s *OrdersBySide) Pop(side common.Side) (common.OrderID, bool) {
	t := s.tree(side)
	lvl, ok := t.MinMut()
	if !ok {
		return common.OrderID{}, false
	}
	id, ok := lvl.front()
	if !ok {
		return common.OrderID{}, false
	}
	lvl.popFront()
	if len(lvl.ids) == 0 {
		t.Delete(&priceLevel{price: lvl.price})
	}
	return id, true
}

// Len returns the number of resting ids on side, summed across all levels.
func (s *OrdersBySide) Len(side common.Side) int {
	n := 0
	s.tree(side).Scan(func(lvl *priceLevel) bool {
		n += len(lvl.ids)
		return true
	})
	return n
}

// Levels returns the number of distinct price levels on side.
func (s *OrdersBySide) Levels(side common.Side) int {
	return s.tree(side).Len()
}

// Iter calls fn for every resting id on side in price-time priority order,
// stopping early if fn returns false.
func (s *OrdersBySide) Iter(side common.Side, fn func(price types.Price, id common.OrderID) bool) {
	s.tree(side).Scan(func(lvl *priceLevel) bool {
		for _, id := range lvl.ids {
			if !fn(lvl.price, id) {
				return false
			}
		}
		return true
	})
}
