package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"matchbook/internal/types"
)

const sampleFeed = `{"type_op":"CREATE","pair":"BTC/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11","side":"SELL","limit_price":"10","amount":"5"}
{"type_op":"CREATE","pair":"BTC/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12","side":"BUY","limit_price":"10","amount":"3"}
{"type_op":"CREATE","pair":"ETH/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13","side":"BUY","limit_price":"10","amount":"1"}
{"type_op":"DELETE","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a14"}
`

func TestRunDrainsAndMatches(t *testing.T) {
	snap, err := Run(strings.NewReader(sampleFeed), Config{Pair: "BTC/USDC", Jobs: 2, QueueSize: 16})
	assert.NoError(t, err)

	assert.Equal(t, 4, snap.Processed)
	assert.Equal(t, 1, snap.Rejected) // the ETH/USDC request
	assert.Equal(t, 1, snap.Trades)
	assert.Equal(t, 1, snap.AskCount) // 5 - 3 = 2 remaining on the ask
	assert.Equal(t, 0, snap.BidCount)
	assert.True(t, snap.AskVolume.Equal(types.NewQuantity("2")))
}

func TestRunEmptyInput(t *testing.T) {
	snap, err := Run(strings.NewReader(""), Config{Pair: "BTC/USDC"})
	assert.NoError(t, err)
	assert.Equal(t, 0, snap.Processed)
	assert.False(t, snap.HasSpread)
}
