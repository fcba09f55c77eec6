package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchbook/internal/common"
	"matchbook/internal/order"
	"matchbook/internal/types"
)

func TestPutLoadDeleteRoundTrip(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	o := order.New(common.NewOrderID(), common.Ask, order.NewLimit(types.NewPrice("10"), common.DefaultTimeInForce(), types.NewQuantity("5")))
	l, err := order.ToLimitOrder(o)
	require.NoError(t, err)
	require.NoError(t, l.Fill(types.NewQuantity("2")))

	require.NoError(t, s.Put(l))

	ob, err := s.Load()
	require.NoError(t, err)

	restored, ok := ob.Peek(common.Ask)
	require.True(t, ok)
	assert.Equal(t, l.ID(), restored.ID())
	assert.True(t, restored.Remaining().Equal(types.NewQuantity("3")))
	assert.Equal(t, common.Partial, restored.Status())

	require.NoError(t, s.Delete(l.ID()))
	ob2, err := s.Load()
	require.NoError(t, err)
	_, ok = ob2.Peek(common.Ask)
	assert.False(t, ok)
}
