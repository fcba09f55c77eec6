package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/types"
)

func limitOrder(t *testing.T, side common.Side, price, qty string) *order.LimitOrder {
	t.Helper()
	o := order.New(common.NewOrderID(), side, order.NewLimit(types.NewPrice(price), common.DefaultTimeInForce(), types.NewQuantity(qty)))
	l, err := order.ToLimitOrder(o)
	assert.NoError(t, err)
	return l
}

func takerLimit(side common.Side, price, qty string) *order.Order {
	return order.New(common.NewOrderID(), side, order.NewLimit(types.NewPrice(price), common.DefaultTimeInForce(), types.NewQuantity(qty)))
}

// Scenario 1: same-price cross, exact fill both sides complete.
func TestFillSamePriceCross(t *testing.T) {
	maker := limitOrder(t, common.Ask, "10", "10")
	taker := takerLimit(common.Bid, "10", "10")

	tr, err := Fill(taker, maker)
	assert.NoError(t, err)
	assert.True(t, tr.Quantity.Equal(types.NewQuantity("10")))
	assert.True(t, tr.Price.Equal(types.NewPrice("10")))
	assert.True(t, tr.Notional.Equal(types.NewNotional("100")))
	assert.Equal(t, common.Completed, maker.Status())
	assert.Equal(t, common.Completed, taker.Status())
}

// Scenario 2: partial maker — taker advantage: trade executes at maker price.
func TestFillPartialMaker(t *testing.T) {
	maker := limitOrder(t, common.Ask, "10", "5")
	taker := takerLimit(common.Bid, "20", "10")

	tr, err := Fill(taker, maker)
	assert.NoError(t, err)
	assert.True(t, tr.Quantity.Equal(types.NewQuantity("5")))
	assert.True(t, tr.Price.Equal(types.NewPrice("10")), "taker advantage: price must be maker's")
	assert.Equal(t, common.Completed, maker.Status())
	assert.Equal(t, common.Partial, taker.Status())
	assert.True(t, taker.Remaining().Equal(types.NewQuantity("5")))
}

// Scenario 3: partial taker.
func TestFillPartialTaker(t *testing.T) {
	maker := limitOrder(t, common.Ask, "10", "10")
	taker := takerLimit(common.Bid, "20", "5")

	tr, err := Fill(taker, maker)
	assert.NoError(t, err)
	assert.True(t, tr.Quantity.Equal(types.NewQuantity("5")))
	assert.Equal(t, common.Completed, taker.Status())
	assert.Equal(t, common.Partial, maker.Status())
	assert.True(t, maker.Remaining().Equal(types.NewQuantity("5")))
}

func TestFillRejectsNonCrossing(t *testing.T) {
	maker := limitOrder(t, common.Ask, "20", "10")
	taker := takerLimit(common.Bid, "10", "10")

	_, err := Fill(taker, maker)
	assert.ErrorIs(t, err, order.ErrIncompatible)
}

func TestFillFundsPricedMarketTaker(t *testing.T) {
	maker := limitOrder(t, common.Ask, "10", "100")
	taker := order.New(common.NewOrderID(), common.Bid, order.NewMarketByFunds(false, types.NewNotional("55")))

	tr, err := Fill(taker, maker)
	assert.NoError(t, err)
	assert.True(t, tr.Quantity.Equal(types.NewQuantity("5.5")))
	assert.Equal(t, common.Completed, taker.Status())
}
