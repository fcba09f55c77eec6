// Package trade implements the result of a single taker<->maker fill and
// the fill procedure that produces it.
package trade

import (
	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/types"
)

// Trade is the immutable result of a single successful match between a
// taker order and a resting maker order.
type Trade struct {
	TakerID  common.OrderID
	MakerID  common.OrderID
	Quantity types.Quantity
	Price    types.Price
	Notional types.Notional
}

// Fill attempts to match taker against maker in place: it validates the
// pair with maker.Matches, computes the exchangeable quantity at the
// maker's price ("taker advantage"), applies the fill to both orders in
// maker-then-taker order, and returns the resulting Trade.
//
// A zero-quantity result (err == nil, Trade.Quantity.IsZero()) must cause
// the caller to stop matching this taker; it is not an error but it is
// also not progress, and retrying would livelock on funds-priced dust.
func Fill(taker *order.Order, maker *order.LimitOrder) (Trade, error) {
	if err := maker.Matches(taker); err != nil {
		return Trade{}, err
	}

	price := maker.LimitPrice()
	quantity := types.MinQuantity(maker.Remaining(), taker.RemainingInQuantity(price))

	if quantity.IsZero() {
		return Trade{TakerID: taker.ID(), MakerID: maker.ID(), Price: price}, nil
	}

	if err := maker.Fill(quantity); err != nil {
		return Trade{}, err
	}
	if err := taker.Fill(quantity, price); err != nil {
		return Trade{}, err
	}

	return Trade{
		TakerID:  taker.ID(),
		MakerID:  maker.ID(),
		Quantity: quantity,
		Price:    price,
		Notional: quantity.Mul(price),
	}, nil
}
