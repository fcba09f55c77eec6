package order

import "errors"

// Fill errors: the caller violated the fill contract.
var (
	ErrNoFill   = errors.New("order: empty filling is not allowed")
	ErrOverfill = errors.New("order: filling amount exceeds remaining amount")
)

// Trade errors: the matching loop treats all of these as "stop matching
// this taker"; none of them propagate past the matching algorithm.
var (
	ErrSameSide     = errors.New("order: maker and taker are on the same side")
	ErrIncompatible = errors.New("order: prices do not cross")
	ErrClosed       = errors.New("order: one side is already closed")
)

// ErrNotLimitGTC is returned when converting an Order that is not a
// good-till-cancel limit order into a LimitOrder.
var ErrNotLimitGTC = errors.New("order: only good-till-cancel limit orders may rest in the book")
