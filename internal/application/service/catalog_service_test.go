package service

import (
	"context"
	"testing"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductDefaultsAndValidation(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, 5)
	ctx := context.Background()

	product, err := svc.CreateProduct(ctx, &CreateProductInput{
		Name:         "LED Bulb 12W",
		PricePerUnit: 250,
		Stock:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, "piece", string(product.Unit))
	assert.Equal(t, int64(25000), product.PricePerUnit)

	_, err = svc.CreateProduct(ctx, &CreateProductInput{Name: "Bad", Unit: "dozen"})
	assert.Error(t, err)

	_, err = svc.CreateProduct(ctx, &CreateProductInput{Name: "Bad", PricePerUnit: -1})
	assert.Error(t, err)
}

func TestAdjustStockGuard(t *testing.T) {
	bulb := testProduct("LED Bulb", 10000, 3)
	repo := newFakeProductRepo(bulb)
	svc := NewCatalogService(repo, 5)
	ctx := context.Background()

	product, err := svc.AdjustStock(ctx, bulb.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 8, product.Stock)

	// Draining below zero is refused and the stock stays put.
	_, err = svc.AdjustStock(ctx, bulb.ID, -20)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	product, err = svc.GetProduct(ctx, bulb.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, product.Stock)

	_, err = svc.AdjustStock(ctx, uuid.New(), 1)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	_, err = svc.AdjustStock(ctx, bulb.ID, 0)
	assert.Error(t, err, "zero delta")
}
