package queries_test

import (
	"testing"

	"effdel/internal/core/application/usecases/queries"
	"effdel/internal/core/domain/model/product"
	"effdel/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductsByInventoryRangeQuery(t *testing.T) {
	t.Run("unfiltered", func(t *testing.T) {
		query := queries.NewProductsByInventoryRangeQuery()
		require.NoError(t, query.Validate())

		_, hasFilter := query.Filter()
		assert.False(t, hasFilter)
	})

	t.Run("filtered", func(t *testing.T) {
		query, err := queries.NewProductsByInventoryRangeQueryWithFilter(product.RangeLow)
		require.NoError(t, err)
		require.NoError(t, query.Validate())

		filter, hasFilter := query.Filter()
		assert.True(t, hasFilter)
		assert.Equal(t, product.RangeLow, filter)
	})

	t.Run("unknown bucket label", func(t *testing.T) {
		_, err := queries.NewProductsByInventoryRangeQueryWithFilter("50-75")
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.ProductsByInventoryRangeQuery{}
		require.ErrorIs(t, query.Validate(), queries.ErrProductsByInventoryRangeQueryIsNotConstructed)
	})
}

func TestNewProductsBySubCategoryQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewProductsBySubCategoryQuery("sub-1")
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, "sub-1", query.SubCategoryID())
	})

	t.Run("missing sub-category", func(t *testing.T) {
		_, err := queries.NewProductsBySubCategoryQuery("")
		require.ErrorIs(t, err, queries.ErrSubCategoryIDIsRequired)
	})
}

func TestNewProductRequestsByStatusQuery(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewProductRequestsByStatusQuery(stock.RequestUnmatched)
		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, stock.RequestUnmatched, query.Status())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := queries.NewProductRequestsByStatusQuery(stock.RequestStatusUnknown)
		require.Error(t, err)
	})

	t.Run("not constructed via constructor", func(t *testing.T) {
		query := queries.ProductRequestsByStatusQuery{}
		require.ErrorIs(t, query.Validate(), queries.ErrProductRequestsByStatusQueryIsNotConstructed)
	})
}
