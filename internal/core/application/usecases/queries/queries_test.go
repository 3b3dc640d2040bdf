package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/queries"
)

func TestNewGetStockLevelsQuery_Valid(t *testing.T) {
	query := queries.NewGetStockLevelsQuery()
	require.NoError(t, query.Validate())
}

func TestNewGetStockLevelsQueryForProducts_CarriesFilter(t *testing.T) {
	query := queries.NewGetStockLevelsQueryForProducts(3, 1, 2)
	require.NoError(t, query.Validate())
	assert.Equal(t, []int{3, 1, 2}, query.ProductCodes())
}

func TestGetStockLevelsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStockLevelsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStockLevelsQueryIsNotConstructed)
}

func TestNewGetCatalogQuery_Valid(t *testing.T) {
	query := queries.NewGetCatalogQuery()
	require.NoError(t, query.Validate())
}

func TestGetCatalogQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCatalogQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCatalogQueryIsNotConstructed)
}

func TestNewGetUnfulfilledOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUnfulfilledOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUnfulfilledOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnfulfilledOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnfulfilledOrdersQueryIsNotConstructed)
}

func TestNewGetOrderCostQuery(t *testing.T) {
	t.Run("valid order number", func(t *testing.T) {
		query, err := queries.NewGetOrderCostQuery(1001)
		require.NoError(t, err)
		assert.Equal(t, 1001, query.OrderNumber())
		assert.NoError(t, query.Validate())
	})

	t.Run("rejects non-positive order numbers", func(t *testing.T) {
		_, err := queries.NewGetOrderCostQuery(0)
		assert.ErrorIs(t, err, queries.ErrQueryOrderNumberIsInvalid)

		_, err = queries.NewGetOrderCostQuery(-1)
		assert.ErrorIs(t, err, queries.ErrQueryOrderNumberIsInvalid)
	})
}

func TestGetOrderCostQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderCostQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderCostQueryIsNotConstructed)
}
