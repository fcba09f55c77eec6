package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchbook/internal/common"
	"matchbook/internal/types"
)

func TestDecodeCreateWithStringID(t *testing.T) {
	line := []byte(`{"type_op":"CREATE","pair":"BTC/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11","account_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12","side":"BUY","limit_price":"10.5","amount":"2"}`)

	r, err := Decode(line)
	assert.NoError(t, err)
	assert.Equal(t, Create, r.Kind)
	assert.Equal(t, "BTC/USDC", r.Pair)
	assert.Equal(t, common.Bid, r.Side)
	assert.True(t, r.LimitPrice.Equal(types.NewPrice("10.5")))
	assert.True(t, r.Quantity.Equal(types.NewQuantity("2")))
}

func TestDecodeSideAliases(t *testing.T) {
	for _, tc := range []struct {
		side string
		want common.Side
	}{
		{"BUY", common.Bid},
		{"BID", common.Bid},
		{"SELL", common.Ask},
		{"ASK", common.Ask},
	} {
		line := []byte(`{"type_op":"CREATE","pair":"BTC/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11","side":"` + tc.side + `","limit_price":"10","amount":"1"}`)
		r, err := Decode(line)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, r.Side)
	}
}

func TestDecodeCreateWithNumericAmounts(t *testing.T) {
	line := []byte(`{"type_op":"CREATE","pair":"BTC/USDC","order_id":42,"side":"ASK","limit_price":10.5,"amount":2}`)

	r, err := Decode(line)
	assert.NoError(t, err)
	assert.True(t, r.LimitPrice.Equal(types.NewPrice("10.5")))
	assert.True(t, r.Quantity.Equal(types.NewQuantity("2")))
}

func TestDecodeDelete(t *testing.T) {
	line := []byte(`{"type_op":"DELETE","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11"}`)

	r, err := Decode(line)
	assert.NoError(t, err)
	assert.Equal(t, Delete, r.Kind)

	_, err = r.Order()
	assert.ErrorIs(t, err, ErrMismatchType)
}

func TestDecodeUnknownFieldsIgnored(t *testing.T) {
	line := []byte(`{"type_op":"CREATE","pair":"BTC/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11","side":"BUY","limit_price":"10","amount":"1","extra":"ignored"}`)

	_, err := Decode(line)
	assert.NoError(t, err)
}

func TestDecodeUnknownTypeOp(t *testing.T) {
	line := []byte(`{"type_op":"REPLACE"}`)
	_, err := Decode(line)
	assert.ErrorIs(t, err, ErrUnknownTypeOp)
}

func TestDecodeUnknownSide(t *testing.T) {
	line := []byte(`{"type_op":"CREATE","pair":"BTC/USDC","order_id":"a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11","side":"LONG","limit_price":"10","amount":"1"}`)
	_, err := Decode(line)
	assert.ErrorIs(t, err, ErrUnknownSide)
}
