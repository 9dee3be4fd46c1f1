package service

import (
	"context"
	"errors"
	"testing"

	"github.com/anujthakur2004/Fashion-Hub/internal/client"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = uint(42)
	testBaseURL = "http://localhost:8080"
)

type checkoutFixture struct {
	svc       CheckoutService
	carts     *session.CartStore
	snapshots *session.SnapshotStore
	orders    *mockOrderRepo
	addresses *mockAddressRepo
	payment   *mockPaymentClient
	products  *mockProductRepo
}

func newCheckoutFixture(t *testing.T, products ...*model.Product) *checkoutFixture {
	t.Helper()

	store := session.NewMemoryStore()
	f := &checkoutFixture{
		carts:     session.NewCartStore(store),
		snapshots: session.NewSnapshotStore(store),
		orders:    &mockOrderRepo{},
		addresses: &mockAddressRepo{},
		payment:   &mockPaymentClient{redirect: "https://pay.example.com/cs_123"},
		products:  newMockProductRepo(products...),
	}
	cartService := NewCartService(f.products, f.carts)
	f.svc = NewCheckoutService(
		cartService,
		f.carts,
		f.snapshots,
		f.addresses,
		f.orders,
		f.products,
		f.payment,
		testBaseURL,
	)
	return f
}

func (f *checkoutFixture) fillCart(t *testing.T, entries map[model.ItemKey]int) {
	t.Helper()
	require.NoError(t, f.carts.Save(context.Background(), testSID, model.Cart(entries)))
}

func TestCheckoutWithEmptyCartNeverCreatesOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))

	_, err := f.svc.PlaceCashOrder(ctx, testUserID, testSID, 0)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = f.svc.Review(ctx, testUserID, testSID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	assert.Empty(t, f.orders.orders)
	assert.Zero(t, f.payment.calls)
}

func TestPlaceCashOrderPersistsOnceAndClearsCart(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))
	f.fillCart(t, map[model.ItemKey]int{
		{ProductID: 5, Size: "M"}: 2,
		{ProductID: 5, Size: "L"}: 1,
	})

	result, err := f.svc.PlaceCashOrder(ctx, testUserID, testSID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusOrderPlacedUnpaid.String(), result.Status)
	assert.NotEmpty(t, result.Reference)

	require.Len(t, f.orders.orders, 1)
	order := f.orders.orders[0]
	assert.Equal(t, testUserID, order.UserID)
	assert.False(t, order.IsPaid)
	assert.Len(t, order.Items, 2)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("60.00")), order.TotalAmount.String())

	// order total matches the sum of its line totals
	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(item.LineTotal)
	}
	assert.True(t, order.TotalAmount.Equal(sum))

	cart, err := f.carts.Load(ctx, testSID)
	require.NoError(t, err)
	assert.Empty(t, cart)

	// snapshot promoted to last order, pending discarded
	_, err = f.snapshots.LoadPending(ctx, testSID)
	assert.ErrorIs(t, err, session.ErrNoValue)
	last, err := f.snapshots.LoadLast(ctx, testSID)
	require.NoError(t, err)
	assert.Equal(t, result.Reference, last.Reference)
}

func TestPlaceCashOrderCopiesShippingAddress(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 1})
	require.NoError(t, f.addresses.Create(ctx, &model.Address{
		UserID:    testUserID,
		Address1:  "12 MG Road",
		City:      "Bengaluru",
		IsPrimary: true,
	}))

	_, err := f.svc.PlaceCashOrder(ctx, testUserID, testSID, 0)
	require.NoError(t, err)

	last, err := f.snapshots.LoadLast(ctx, testSID)
	require.NoError(t, err)
	require.NotNil(t, last.Address)
	assert.Equal(t, "12 MG Road", last.Address.Address1)
}

func TestPlaceCashOrderUnknownAddressFails(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 1})

	_, err := f.svc.PlaceCashOrder(ctx, testUserID, testSID, 77)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, f.orders.orders)
}

func TestBeginExternalPaymentBuildsProviderLines(t *testing.T) {
	ctx := context.Background()
	belt := testProduct(9, "15.75")
	belt.Name = "Leather Belt"
	f := newCheckoutFixture(t, testProduct(5, "20.00"), belt)
	f.fillCart(t, map[model.ItemKey]int{
		{ProductID: 5, Size: "M"}: 2,
		{ProductID: 9, Size: ""}:  1,
	})

	result, err := f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/cs_123", result.RedirectURL)
	assert.Equal(t, StatusAwaitingExternalPayment.String(), result.Status)

	require.Len(t, f.payment.lines, 2)
	assert.Equal(t, client.CheckoutLine{Name: "Classic Denim Jacket (M)", UnitAmount: 2000, Quantity: 2}, f.payment.lines[0])
	assert.Equal(t, client.CheckoutLine{Name: "Leather Belt", UnitAmount: 1575, Quantity: 1}, f.payment.lines[1])
	assert.Equal(t, testBaseURL+"/api/checkout/success", f.payment.successURL)
	assert.Equal(t, testBaseURL+"/api/checkout/cancel", f.payment.cancelURL)

	// no order persisted until the provider confirms
	assert.Empty(t, f.orders.orders)
	cart, err := f.carts.Load(ctx, testSID)
	require.NoError(t, err)
	assert.Len(t, cart, 2)
}

func TestBeginExternalPaymentProviderFailureIsRecoverable(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 1})
	f.payment.err = errors.New("connection refused")

	_, err := f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	assert.ErrorIs(t, err, ErrPaymentUnavailable)

	// cart and snapshot stay intact so the buyer can retry or fall
	// back to pay on delivery
	assert.Empty(t, f.orders.orders)
	cart, err := f.carts.Load(ctx, testSID)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
	_, err = f.snapshots.LoadPending(ctx, testSID)
	require.NoError(t, err)

	// the unconfigured provider reads the same way
	f.payment.err = client.ErrNotConfigured
	_, err = f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	assert.ErrorIs(t, err, ErrPaymentUnavailable)
}

func TestConfirmExternalPaymentPersistsPaidOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 2})

	begun, err := f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	require.NoError(t, err)

	result, err := f.svc.ConfirmExternalPayment(ctx, testUserID, testSID)
	require.NoError(t, err)
	assert.Equal(t, begun.Reference, result.Reference)
	assert.Equal(t, StatusOrderPlacedPaid.String(), result.Status)

	require.Len(t, f.orders.orders, 1)
	order := f.orders.orders[0]
	assert.True(t, order.IsPaid)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("40.00")))

	cart, err := f.carts.Load(ctx, testSID)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestStaleCallbackIsRejectedWithoutAnOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))

	_, err := f.svc.ConfirmExternalPayment(ctx, testUserID, testSID)
	assert.ErrorIs(t, err, ErrStaleCallback)
	assert.Empty(t, f.orders.orders)

	// a second callback after a successful one is stale too
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 1})
	_, err = f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	require.NoError(t, err)
	_, err = f.svc.ConfirmExternalPayment(ctx, testUserID, testSID)
	require.NoError(t, err)

	_, err = f.svc.ConfirmExternalPayment(ctx, testUserID, testSID)
	assert.ErrorIs(t, err, ErrStaleCallback)
	assert.Len(t, f.orders.orders, 1)
}

func TestCancelLeavesCartAndSnapshotIntact(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t, testProduct(5, "20.00"))
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 1})
	_, err := f.svc.BeginExternalPayment(ctx, testUserID, testSID, 0)
	require.NoError(t, err)

	status := f.svc.CancelExternalPayment(ctx, testSID)
	assert.Equal(t, StatusPaymentCanceled, status)

	cart, err := f.carts.Load(ctx, testSID)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
	_, err = f.snapshots.LoadPending(ctx, testSID)
	require.NoError(t, err)
}

func TestConfirmationToleratesMissingProducts(t *testing.T) {
	ctx := context.Background()
	jacket := testProduct(5, "20.00")
	jacket.ImageURL = "/media/jacket.jpg"
	f := newCheckoutFixture(t, jacket)
	f.fillCart(t, map[model.ItemKey]int{{ProductID: 5, Size: "M"}: 1})

	_, err := f.svc.PlaceCashOrder(ctx, testUserID, testSID, 0)
	require.NoError(t, err)

	view, err := f.svc.Confirmation(ctx, testSID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "/media/jacket.jpg", view.Items[0].ImageURL)

	// the product disappearing later only loses the image
	f.products.remove(5)
	view, err = f.svc.Confirmation(ctx, testSID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Empty(t, view.Items[0].ImageURL)
	assert.Equal(t, "Classic Denim Jacket", view.Items[0].Name)
}

func TestConfirmationWithoutLastOrderIsNotFound(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Confirmation(context.Background(), testSID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price string
		want  int64
	}{
		{"20.00", 2000},
		{"19.999", 1999}, // floored
		{"15.75", 1575},
		{"0.01", 1},
		{"0.009", 1}, // floor would be zero, provider minimum is 1
		{"0", 1},
	}
	for _, tc := range cases {
		got := minorUnits(decimal.RequireFromString(tc.price))
		assert.Equal(t, tc.want, got, "price %s", tc.price)
	}
}
