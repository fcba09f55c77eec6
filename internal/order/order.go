// Package order implements the taker/maker order state machines: the
// incoming Order (market or limit, "taker" until it rests) and the resting
// LimitOrder (always limit, always GTC, "maker").
package order

import (
	"matchbook/internal/common"
	"matchbook/internal/types"
)

// Kind discriminates a limit order from a market order.
type Kind int

const (
	KindLimit Kind = iota
	KindMarket
)

// PricedBy discriminates how a market order's size is expressed.
type PricedBy int

const (
	// ByBase prices the order in units of the base asset (a quantity).
	ByBase PricedBy = iota
	// ByFunds prices the order in units of quote currency (a notional).
	ByFunds
)

// Type is the tagged shape of an order: Limit{limit_price, time_in_force,
// quantity, filled} or Market{all_or_none, priced_by}. It is immutable in
// shape; only the filled component mutates, through Order.Fill.
type Type struct {
	kind Kind

	// Limit fields.
	limitPrice  types.Price
	timeInForce common.TimeInForce

	// Market fields.
	allOrNone bool
	pricedBy  PricedBy

	// Shared mutable fill state. For ByBase orders (and all limit orders)
	// quantity/filled are in base units; for ByFunds orders
	// funds/filledNotional are in notional units.
	quantity types.Quantity
	filled   types.Quantity

	funds          types.Notional
	filledNotional types.Notional
}

// NewLimit builds a Limit order type.
func NewLimit(limitPrice types.Price, tif common.TimeInForce, quantity types.Quantity) Type {
	return Type{
		kind:        KindLimit,
		limitPrice:  limitPrice,
		timeInForce: tif,
		quantity:    quantity,
		filled:      types.ZeroQuantity,
	}
}

// NewMarketByBase builds a Market order type priced in base-asset quantity.
func NewMarketByBase(allOrNone bool, quantity types.Quantity) Type {
	return Type{
		kind:      KindMarket,
		allOrNone: allOrNone,
		pricedBy:  ByBase,
		quantity:  quantity,
		filled:    types.ZeroQuantity,
	}
}

// NewMarketByFunds builds a Market order type priced in quote-currency funds.
func NewMarketByFunds(allOrNone bool, funds types.Notional) Type {
	return Type{
		kind:           KindMarket,
		allOrNone:      allOrNone,
		pricedBy:       ByFunds,
		funds:          funds,
		filledNotional: types.ZeroNotional,
	}
}

func (t Type) IsLimit() bool  { return t.kind == KindLimit }
func (t Type) IsMarket() bool { return t.kind == KindMarket }

// IsFundsPriced reports whether this is a market order priced by funds.
func (t Type) IsFundsPriced() bool { return t.kind == KindMarket && t.pricedBy == ByFunds }

// Order is an incoming order: it is owned by the engine until it is fully
// consumed, rejected, or converted into a resting LimitOrder.
type Order struct {
	id     common.OrderID
	side   common.Side
	typ    Type
	status common.Status
}

// New constructs an Order in the Open state.
func New(id common.OrderID, side common.Side, typ Type) *Order {
	return &Order{id: id, side: side, typ: typ, status: common.Open}
}

func (o *Order) ID() common.OrderID    { return o.id }
func (o *Order) Side() common.Side     { return o.side }
func (o *Order) Type() Type            { return o.typ }
func (o *Order) Status() common.Status { return o.status }

// LimitPrice returns the order's limit price and whether it has one; market
// orders have none.
func (o *Order) LimitPrice() (types.Price, bool) {
	if o.typ.kind == KindLimit {
		return o.typ.limitPrice, true
	}
	return types.ZeroPrice, false
}

// IsFillOrKill reports whether the order must be fully filled or cancelled:
// an IOC(all_or_none) limit order, or any all-or-none market order.
func (o *Order) IsFillOrKill() bool {
	switch {
	case o.typ.kind == KindMarket:
		return o.typ.allOrNone
	case o.typ.kind == KindLimit && o.typ.timeInForce.IsImmediateOrCancel():
		return o.typ.timeInForce.AllOrNone()
	default:
		return false
	}
}

// IsImmediateOrCancel reports whether residual quantity must be cancelled
// after matching: any market order, or a limit order with IOC time-in-force.
func (o *Order) IsImmediateOrCancel() bool {
	if o.typ.kind == KindMarket {
		return true
	}
	return o.typ.kind == KindLimit && o.typ.timeInForce.IsImmediateOrCancel()
}

// IsPostOnly reports whether the order is a GTC limit marked post-only.
func (o *Order) IsPostOnly() bool {
	return o.typ.kind == KindLimit && o.typ.timeInForce.PostOnly()
}

// IsClosed reports whether the order has reached an absorbing status.
func (o *Order) IsClosed() bool { return o.status.IsClosed() }

// Remaining returns the order's remaining base-asset quantity. It must not
// be called on a funds-priced market order; use RemainingNotional instead.
func (o *Order) Remaining() types.Quantity {
	return o.typ.quantity.Sub(o.typ.filled)
}

// RemainingNotional returns the order's remaining funds. It must only be
// called on a funds-priced market order.
func (o *Order) RemainingNotional() types.Notional {
	return o.typ.funds.Sub(o.typ.filledNotional)
}

// RemainingInQuantity returns how much base-asset quantity this order could
// still absorb at price p: funds/p for a funds-priced market order,
// otherwise its own remaining quantity.
func (o *Order) RemainingInQuantity(p types.Price) types.Quantity {
	if o.typ.IsFundsPriced() {
		return o.RemainingNotional().Div(p)
	}
	return o.Remaining()
}

// Fill applies a quantity fill at price p, advancing filled and status.
// p is only consulted for funds-priced market orders.
func (o *Order) Fill(q types.Quantity, p types.Price) error {
	if q.IsZero() {
		return ErrNoFill
	}

	if o.typ.IsFundsPriced() {
		notional := q.Mul(p)
		if notional.GreaterThan(o.RemainingNotional()) {
			return ErrOverfill
		}
		o.typ.filledNotional = o.typ.filledNotional.Add(notional)
		if o.RemainingNotional().IsZero() {
			o.status = common.Completed
		} else {
			o.status = common.Partial
		}
		return nil
	}

	if q.GreaterThan(o.Remaining()) {
		return ErrOverfill
	}
	o.typ.filled = o.typ.filled.Add(q)
	if o.Remaining().IsZero() {
		o.status = common.Completed
	} else {
		o.status = common.Partial
	}
	return nil
}

// Cancel moves Open -> Cancelled and Partial -> Closed; any other status is
// a no-op (P8, P5: closed states are absorbing).
func (o *Order) Cancel() {
	switch o.status {
	case common.Open:
		o.status = common.Cancelled
	case common.Partial:
		o.status = common.Closed
	}
}
