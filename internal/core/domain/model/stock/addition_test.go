package stock_test

import (
	"testing"
	"time"

	"effdel/internal/core/domain/model/stock"
	"effdel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddition(t *testing.T) {
	t.Run("creates audit record with UTC timestamp", func(t *testing.T) {
		a, err := stock.NewAddition("prod-1", "req-1", 50)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, "prod-1", a.ProductID())
		assert.Equal(t, "req-1", a.RequestID())
		assert.Equal(t, 50, a.Units())
		assert.Equal(t, time.UTC, a.Timestamp().Location())
	})

	t.Run("rejects missing references and non-positive units", func(t *testing.T) {
		_, err := stock.NewAddition("", "req-1", 50)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = stock.NewAddition("prod-1", "", 50)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = stock.NewAddition("prod-1", "req-1", 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAddition(t *testing.T) {
	t.Run("keeps the original timestamp", func(t *testing.T) {
		ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

		a, err := stock.RestoreAddition("prod-1", "req-1", 50, ts)

		require.NoError(t, err)
		assert.Equal(t, ts, a.Timestamp())
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := stock.RestoreAddition("prod-1", "req-1", 50, time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddition_Validate(t *testing.T) {
	t.Run("zero value addition fails validation", func(t *testing.T) {
		var a stock.Addition

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, stock.ErrAdditionIsNotConstructed, err)
	})
}
