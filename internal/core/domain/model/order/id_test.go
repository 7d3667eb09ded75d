package order_test

import (
	"testing"
	"time"

	"effdel/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("generates timestamp plus six hex digits", func(t *testing.T) {
		before := time.Now()
		id := order.NewID()

		require.NoError(t, id.Validate())
		// YYYYMMDDHHMMSSmmm (17 digits) + 6 hex chars
		assert.Len(t, id.String(), 23)
		assert.Equal(t, before.Format("20060102"), id.String()[:8])
	})

	t.Run("generated IDs sort by creation time", func(t *testing.T) {
		first := order.NewID()
		time.Sleep(2 * time.Millisecond)
		second := order.NewID()

		assert.Less(t, first.String(), second.String())
	})

	t.Run("consecutive IDs are distinct", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			id := order.NewID()
			assert.False(t, seen[id.String()], "duplicate ID generated: %s", id)
			seen[id.String()] = true
		}
	})
}

func TestIDFromString(t *testing.T) {
	t.Run("round-trips a stored identifier", func(t *testing.T) {
		id, err := order.IDFromString("20240115093015123a1b2c3")

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, "20240115093015123a1b2c3", id.String())
	})

	t.Run("rejects empty string", func(t *testing.T) {
		_, err := order.IDFromString("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order ID must be created")
	})
}

func TestID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id order.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrIDIsNotConstructed, err)
	})
}

func TestID_IsEqual(t *testing.T) {
	a, _ := order.IDFromString("20240115093015123a1b2c3")
	b, _ := order.IDFromString("20240115093015123a1b2c3")
	c := order.NewID()

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
