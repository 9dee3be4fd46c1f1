package service

import (
	"context"
	"testing"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrders(t *testing.T, repo *mockOrderRepo) {
	t.Helper()
	productID := uint(5)
	require.NoError(t, repo.Create(context.Background(), &model.Order{
		UserID:      testUserID,
		TotalAmount: decimal.RequireFromString("60.00"),
		IsPaid:      false,
		Items: []model.OrderItem{
			{ProductID: &productID, ProductName: "Classic Denim Jacket", Size: "M", Quantity: 2, UnitPrice: decimal.RequireFromString("20.00"), LineTotal: decimal.RequireFromString("40.00")},
			{ProductID: &productID, ProductName: "Classic Denim Jacket", Size: "L", Quantity: 1, UnitPrice: decimal.RequireFromString("20.00"), LineTotal: decimal.RequireFromString("20.00")},
		},
	}))
	require.NoError(t, repo.Create(context.Background(), &model.Order{
		UserID:      testUserID,
		TotalAmount: decimal.RequireFromString("15.75"),
		IsPaid:      true,
		Items: []model.OrderItem{
			{ProductName: "Leather Belt", Quantity: 1, UnitPrice: decimal.RequireFromString("15.75"), LineTotal: decimal.RequireFromString("15.75")},
		},
	}))
}

func TestListForUserNewestFirst(t *testing.T) {
	repo := &mockOrderRepo{}
	seedOrders(t, repo)
	svc := NewOrderQueryService(repo)

	views, err := svc.ListForUser(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, uint(2), views[0].ID)
	assert.True(t, views[0].IsPaid)
	assert.Equal(t, uint(1), views[1].ID)
	assert.Len(t, views[1].Items, 2)
}

func TestListForUserEmpty(t *testing.T) {
	svc := NewOrderQueryService(&mockOrderRepo{})

	views, err := svc.ListForUser(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetOneScopedToUser(t *testing.T) {
	repo := &mockOrderRepo{}
	seedOrders(t, repo)
	svc := NewOrderQueryService(repo)

	view, err := svc.GetOne(context.Background(), testUserID, 1)
	require.NoError(t, err)
	assert.True(t, view.TotalAmount.Equal(decimal.RequireFromString("60.00")))
	assert.Len(t, view.Items, 2)

	// someone else's order id reads as not-found, never as data
	_, err = svc.GetOne(context.Background(), testUserID+1, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetOne(context.Background(), testUserID, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderViewKeepsDenormalizedSnapshot(t *testing.T) {
	repo := &mockOrderRepo{}
	seedOrders(t, repo)
	svc := NewOrderQueryService(repo)

	view, err := svc.GetOne(context.Background(), testUserID, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	// belt order was created without a product reference
	assert.Nil(t, view.Items[0].ProductID)
	assert.Equal(t, "Leather Belt", view.Items[0].ProductName)
}
