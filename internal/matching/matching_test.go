package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/orderbook"
	"matchbook/internal/types"
)

func limit(side common.Side, price, qty string, tif common.TimeInForce) *order.Order {
	return order.New(common.NewOrderID(), side, order.NewLimit(types.NewPrice(price), tif, types.NewQuantity(qty)))
}

func TestMatchRestsWhenBookEmpty(t *testing.T) {
	ob := orderbook.New()
	algo := New()

	incoming := limit(common.Ask, "10", "5", common.DefaultTimeInForce())
	trades, err := algo.Match(incoming, ob)
	assert.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, common.Open, incoming.Status())

	asks, bids := ob.Len()
	assert.Equal(t, 1, asks)
	assert.Equal(t, 0, bids)
}

func TestMatchSweepsMultipleMakers(t *testing.T) {
	ob := orderbook.New()
	algo := New()

	for _, qty := range []string{"3", "4"} {
		maker := limit(common.Ask, "10", qty, common.DefaultTimeInForce())
		_, err := algo.Match(maker, ob)
		assert.NoError(t, err)
	}

	taker := limit(common.Bid, "10", "5", common.DefaultTimeInForce())
	trades, err := algo.Match(taker, ob)
	assert.NoError(t, err)
	assert.Len(t, trades, 2)
	assert.True(t, trades[0].Quantity.Equal(types.NewQuantity("3")))
	assert.True(t, trades[1].Quantity.Equal(types.NewQuantity("2")))
	assert.Equal(t, common.Completed, taker.Status())

	asks, _ := ob.Len()
	assert.Equal(t, 1, asks)
}

func TestMatchImmediateOrCancelDiscardsResidual(t *testing.T) {
	ob := orderbook.New()
	algo := New()

	maker := limit(common.Ask, "10", "2", common.DefaultTimeInForce())
	_, err := algo.Match(maker, ob)
	assert.NoError(t, err)

	taker := limit(common.Bid, "10", "5", common.ImmediateOrCancel(false))
	trades, err := algo.Match(taker, ob)
	assert.NoError(t, err)
	assert.Len(t, trades, 1)
	assert.Equal(t, common.Closed, taker.Status())

	asks, bids := ob.Len()
	assert.Equal(t, 0, asks)
	assert.Equal(t, 0, bids)
}

func TestMatchFillOrKillCancelsBeforeSweeping(t *testing.T) {
	ob := orderbook.New()
	algo := New()

	maker := limit(common.Ask, "10", "2", common.DefaultTimeInForce())
	_, err := algo.Match(maker, ob)
	assert.NoError(t, err)

	taker := limit(common.Bid, "10", "5", common.ImmediateOrCancel(true))
	trades, err := algo.Match(taker, ob)
	assert.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, common.Cancelled, taker.Status())

	asks, _ := ob.Len()
	assert.Equal(t, 1, asks)
}

func TestMatchPostOnlyCancelsAgainstCrossingBook(t *testing.T) {
	ob := orderbook.New()
	algo := New()

	maker := limit(common.Ask, "10", "5", common.DefaultTimeInForce())
	_, err := algo.Match(maker, ob)
	assert.NoError(t, err)

	taker := limit(common.Bid, "10", "5", common.GoodTillCancel(true))
	trades, err := algo.Match(taker, ob)
	assert.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, common.Cancelled, taker.Status())
}

func TestMatchMarketOrderNeverRests(t *testing.T) {
	ob := orderbook.New()
	algo := New()

	taker := order.New(common.NewOrderID(), common.Bid, order.NewMarketByBase(false, types.NewQuantity("5")))
	trades, err := algo.Match(taker, ob)
	assert.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, common.Cancelled, taker.Status())
}
