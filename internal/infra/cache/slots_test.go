package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type recorder struct {
	hits, misses int
}

func (r *recorder) ObserveSlotCache(hit bool) {
	if hit {
		r.hits++
		return
	}
	r.misses++
}

func TestSlotsCache_StoreGet(t *testing.T) {
	rec := &recorder{}
	c, err := NewSlotsCache(8, rec)
	require.NoError(t, err)

	date := types.DateString("2024-01-15")
	_, ok := c.Get(1, date)
	assert.False(t, ok)

	c.Store(1, date, []types.TimeString{"09:00", "09:30"}, c.Epoch())
	slots, ok := c.Get(1, date)
	require.True(t, ok)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, slots)

	slots[0] = "23:00"
	again, _ := c.Get(1, date)
	assert.Equal(t, types.TimeString("09:00"), again[0])

	assert.Equal(t, 2, rec.hits)
	assert.Equal(t, 1, rec.misses)
}

func TestSlotsCache_Invalidate(t *testing.T) {
	c, err := NewSlotsCache(8, nil)
	require.NoError(t, err)

	c.Store(1, "2024-01-15", []types.TimeString{"09:00"}, c.Epoch())
	c.Store(1, "2024-01-16", []types.TimeString{"09:00"}, c.Epoch())
	c.Store(11, "2024-01-15", []types.TimeString{"09:00"}, c.Epoch())

	c.InvalidateDate(1, "2024-01-15")
	_, ok := c.Get(1, "2024-01-15")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	c.InvalidateProvider(1)
	_, ok = c.Get(1, "2024-01-16")
	assert.False(t, ok)
	_, ok = c.Get(11, "2024-01-15")
	assert.True(t, ok, "provider 11 must not match prefix of provider 1")

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestSlotsCache_Nil(t *testing.T) {
	var c *SlotsCache

	c.Store(1, "2024-01-15", []types.TimeString{"09:00"}, c.Epoch())
	_, ok := c.Get(1, "2024-01-15")
	assert.False(t, ok)
	c.InvalidateDate(1, "2024-01-15")
	c.InvalidateProvider(1)
	assert.Equal(t, 0, c.Len())
}

func TestSlotsCache_Eviction(t *testing.T) {
	c, err := NewSlotsCache(2, nil)
	require.NoError(t, err)

	c.Store(1, "2024-01-15", nil, c.Epoch())
	c.Store(2, "2024-01-15", nil, c.Epoch())
	c.Store(3, "2024-01-15", nil, c.Epoch())

	_, ok := c.Get(1, "2024-01-15")
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestSlotsCache_StaleStoreRejected(t *testing.T) {
	c, err := NewSlotsCache(8, nil)
	require.NoError(t, err)

	epoch := c.Epoch()
	c.InvalidateDate(1, "2024-01-15")

	assert.False(t, c.Store(1, "2024-01-15", []types.TimeString{"09:00"}, epoch))
	_, ok := c.Get(1, "2024-01-15")
	assert.False(t, ok)

	assert.True(t, c.Store(1, "2024-01-15", []types.TimeString{"09:00"}, c.Epoch()))
}
