package order

import (
	"matchbook/internal/common"
	"matchbook/internal/types"
)

// LimitOrder is a resting maker order: always a limit, always GTC. It is
// produced by converting an Order that survived matching as an open limit
// residual, and is owned exclusively by the Orderbook until it is fully
// filled or removed.
type LimitOrder struct {
	id          common.OrderID
	side        common.Side
	limitPrice  types.Price
	postOnly    bool
	quantity    types.Quantity
	filled      types.Quantity
	status      common.Status
}

func (l *LimitOrder) ID() common.OrderID       { return l.id }
func (l *LimitOrder) Side() common.Side        { return l.side }
func (l *LimitOrder) LimitPrice() types.Price  { return l.limitPrice }
func (l *LimitOrder) PostOnly() bool           { return l.postOnly }
func (l *LimitOrder) Status() common.Status    { return l.status }
func (l *LimitOrder) IsClosed() bool           { return l.status.IsClosed() }
func (l *LimitOrder) Quantity() types.Quantity { return l.quantity }
func (l *LimitOrder) Filled() types.Quantity   { return l.filled }

// Remaining returns the unfilled quantity: 0 <= Remaining() <= original
// quantity (P4, fill conservation).
func (l *LimitOrder) Remaining() types.Quantity {
	return l.quantity.Sub(l.filled)
}

// Fill applies a quantity fill, advancing filled and status.
func (l *LimitOrder) Fill(q types.Quantity) error {
	if q.IsZero() {
		return ErrNoFill
	}
	if q.GreaterThan(l.Remaining()) {
		return ErrOverfill
	}
	l.filled = l.filled.Add(q)
	if l.Remaining().IsZero() {
		l.status = common.Completed
	} else {
		l.status = common.Partial
	}
	return nil
}

// Cancel moves Open -> Cancelled and Partial -> Closed; any other status is
// a no-op.
func (l *LimitOrder) Cancel() {
	switch l.status {
	case common.Open:
		l.status = common.Cancelled
	case common.Partial:
		l.status = common.Closed
	}
}

// Matches reports whether this resting LimitOrder (maker) can trade against
// the given incoming Order (taker): neither may be closed, they must be on
// opposite sides, and if the taker carries a limit price the pair must
// cross (bid.price >= ask.price). A market taker matches any open,
// opposite-sided maker.
func (l *LimitOrder) Matches(taker *Order) error {
	if taker.IsClosed() || l.IsClosed() {
		return ErrClosed
	}

	if taker.Side() == l.Side() {
		return ErrSameSide
	}

	takerPrice, hasLimitPrice := taker.LimitPrice()
	if !hasLimitPrice {
		// Market taker: any opposite-sided, open maker matches.
		return nil
	}

	var askPrice, bidPrice types.Price
	switch taker.Side() {
	case common.Ask:
		askPrice, bidPrice = takerPrice, l.limitPrice
	case common.Bid:
		askPrice, bidPrice = l.limitPrice, takerPrice
	}

	if bidPrice.GreaterOrEqual(askPrice) {
		return nil
	}
	return ErrIncompatible
}

// ToOrder converts a resting LimitOrder back into the incoming Order shape,
// used when reporting or re-queuing a removed order.
func (l *LimitOrder) ToOrder() *Order {
	return &Order{
		id:   l.id,
		side: l.side,
		typ: Type{
			kind:        KindLimit,
			limitPrice:  l.limitPrice,
			timeInForce: common.GoodTillCancel(l.postOnly),
			quantity:    l.quantity,
			filled:      l.filled,
		},
		status: l.status,
	}
}

// Restore reconstructs a LimitOrder from its persisted fields, for loading
// the id index back from storage. Callers are responsible for recomputing
// the side index afterwards.
func Restore(id common.OrderID, side common.Side, price types.Price, postOnly bool, quantity, filled types.Quantity, status common.Status) *LimitOrder {
	return &LimitOrder{
		id:         id,
		side:       side,
		limitPrice: price,
		postOnly:   postOnly,
		quantity:   quantity,
		filled:     filled,
		status:     status,
	}
}

// ToLimitOrder converts a surviving incoming Order into a resting
// LimitOrder. It fails if the order is not a good-till-cancel limit order,
// or if it is already closed.
func ToLimitOrder(o *Order) (*LimitOrder, error) {
	if o.typ.kind != KindLimit || !o.typ.timeInForce.IsGoodTillCancel() {
		return nil, ErrNotLimitGTC
	}
	if o.IsClosed() {
		return nil, ErrClosed
	}

	return &LimitOrder{
		id:         o.id,
		side:       o.side,
		limitPrice: o.typ.limitPrice,
		postOnly:   o.typ.timeInForce.PostOnly(),
		quantity:   o.typ.quantity,
		filled:     o.typ.filled,
		status:     o.status,
	}, nil
}
