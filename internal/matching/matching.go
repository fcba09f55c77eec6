// Package matching implements the single matching algorithm described in
// the specification: run pre-match policies, sweep the opposite side of
// the book while the incoming order still crosses, run post-match
// policies, then book whatever remains open.
package matching

import (
	"github.com/rs/zerolog/log"

	"matchbook/internal/order"
	"matchbook/internal/orderbook"
	"matchbook/internal/policy"
	"matchbook/internal/trade"
)

// Algo runs the matching algorithm against a single orderbook.
type Algo struct{}

// New constructs a matching algorithm. It holds no state of its own; all
// state lives in the Orderbook passed to Match.
func New() *Algo { return &Algo{} }

// Match runs incoming through the full matching algorithm: before-policies,
// the trade loop, after-policies, and the final book-or-discard step. It
// returns every trade produced, in the order they occurred.
func (a *Algo) Match(incoming *order.Order, ob *orderbook.Orderbook) ([]trade.Trade, error) {
	for _, enforce := range policy.Before() {
		enforce(incoming, ob)
	}

	var trades []trade.Trade
	for !incoming.IsClosed() {
		opposite := incoming.Side().Opposite()

		top, ok := ob.PeekMut(opposite)
		if !ok {
			break
		}

		tr, err := trade.Fill(incoming, top)
		if err != nil {
			// top no longer crosses incoming; the sweep is done.
			break
		}
		if tr.Quantity.IsZero() {
			// No progress was made (funds-priced dust); stop rather than
			// spin on the same top-of-book order forever.
			break
		}

		trades = append(trades, tr)
		log.Debug().
			Stringer("taker", tr.TakerID).
			Stringer("maker", tr.MakerID).
			Stringer("quantity", tr.Quantity).
			Stringer("price", tr.Price).
			Msg("trade executed")

		if top.IsClosed() {
			if _, ok := ob.Pop(opposite); !ok {
				log.Error().Msg("matching: closed maker missing from book during sweep")
			}
		}
	}

	for _, enforce := range policy.After() {
		enforce(incoming, ob)
	}

	if !incoming.IsClosed() {
		resting, err := order.ToLimitOrder(incoming)
		if err != nil {
			return trades, err
		}
		ob.Insert(resting)
	}

	return trades, nil
}
