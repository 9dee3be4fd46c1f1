package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anujthakur2004/Fashion-Hub/internal/client"
	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"
	"github.com/anujthakur2004/Fashion-Hub/internal/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CheckoutService interface {
	Review(ctx context.Context, userID uint, sessionID string) (*dto.CheckoutView, error)
	PlaceCashOrder(ctx context.Context, userID uint, sessionID string, addressID uint) (*dto.PlaceOrderResponse, error)
	BeginExternalPayment(ctx context.Context, userID uint, sessionID string, addressID uint) (*dto.BeginPaymentResponse, error)
	ConfirmExternalPayment(ctx context.Context, userID uint, sessionID string) (*dto.PlaceOrderResponse, error)
	CancelExternalPayment(ctx context.Context, sessionID string) CheckoutStatus
	Confirmation(ctx context.Context, sessionID string) (*dto.ConfirmationView, error)
}

type checkoutServiceImpl struct {
	cartService   CartService
	carts         *session.CartStore
	snapshots     *session.SnapshotStore
	addressRepo   repository.AddressRepository
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	paymentClient client.PaymentClient
	baseURL       string
	now           func() time.Time
}

func NewCheckoutService(
	cartService CartService,
	carts *session.CartStore,
	snapshots *session.SnapshotStore,
	addressRepo repository.AddressRepository,
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	paymentClient client.PaymentClient,
	baseURL string,
) CheckoutService {
	return &checkoutServiceImpl{
		cartService:   cartService,
		carts:         carts,
		snapshots:     snapshots,
		addressRepo:   addressRepo,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		paymentClient: paymentClient,
		baseURL:       baseURL,
		now:           time.Now,
	}
}

// Review materializes the cart and the saved addresses for the checkout
// page. An empty cart aborts back to the cart view.
func (s *checkoutServiceImpl) Review(ctx context.Context, userID uint, sessionID string) (*dto.CheckoutView, error) {
	cartView, err := s.cartService.Materialize(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartView.Items) == 0 {
		return nil, ErrEmptyCart
	}

	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	view := &dto.CheckoutView{
		Items:      cartView.Items,
		GrandTotal: cartView.GrandTotal,
		Addresses:  make([]dto.AddressView, 0, len(addresses)),
	}
	for _, a := range addresses {
		view.Addresses = append(view.Addresses, addressView(a))
	}
	return view, nil
}

// buildSnapshot captures the cart before either payment path branches,
// so both paths read one consistent source of truth.
func (s *checkoutServiceImpl) buildSnapshot(ctx context.Context, userID uint, sessionID string, addressID uint) (*model.OrderSnapshot, error) {
	cartView, err := s.cartService.Materialize(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartView.Items) == 0 {
		return nil, ErrEmptyCart
	}

	address, err := s.shippingAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	placedAt := s.now()
	snap := &model.OrderSnapshot{
		Reference:  fmt.Sprintf("FH-%s-%d", placedAt.Format("20060102150405"), userID),
		Items:      make([]model.SnapshotItem, 0, len(cartView.Items)),
		GrandTotal: cartView.GrandTotal,
		Address:    address,
		PlacedAt:   placedAt,
	}
	for _, line := range cartView.Items {
		snap.Items = append(snap.Items, model.SnapshotItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}

	if err := s.snapshots.SavePending(ctx, sessionID, snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *checkoutServiceImpl) shippingAddress(ctx context.Context, userID, addressID uint) (*model.Address, error) {
	if addressID != 0 {
		address, err := s.addressRepo.FindByIDForUser(ctx, userID, addressID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: address %d", ErrNotFound, addressID)
			}
			return nil, fmt.Errorf("look up address: %w", err)
		}
		return address, nil
	}

	// fall back to the primary address when one exists
	address, err := s.addressRepo.FindPrimary(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("look up primary address: %w", err)
	}
	return address, nil
}

// PlaceCashOrder persists an unpaid order straight from the snapshot
// (pay on delivery) and clears the cart.
func (s *checkoutServiceImpl) PlaceCashOrder(ctx context.Context, userID uint, sessionID string, addressID uint) (*dto.PlaceOrderResponse, error) {
	snap, err := s.buildSnapshot(ctx, userID, sessionID, addressID)
	if err != nil {
		return nil, err
	}

	order := orderFromSnapshot(userID, snap, false)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.finishCheckout(ctx, sessionID, snap); err != nil {
		return nil, err
	}

	return &dto.PlaceOrderResponse{
		Reference: snap.Reference,
		OrderID:   order.ID,
		Status:    StatusOrderPlacedUnpaid.String(),
	}, nil
}

// BeginExternalPayment builds the snapshot, opens a provider checkout
// session and returns the redirect URL. No order is persisted yet; a
// provider failure leaves the snapshot intact so the buyer can retry or
// fall back to pay on delivery.
func (s *checkoutServiceImpl) BeginExternalPayment(ctx context.Context, userID uint, sessionID string, addressID uint) (*dto.BeginPaymentResponse, error) {
	snap, err := s.buildSnapshot(ctx, userID, sessionID, addressID)
	if err != nil {
		return nil, err
	}

	lines := make([]client.CheckoutLine, 0, len(snap.Items))
	for _, item := range snap.Items {
		name := item.Name
		if item.Size != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.Size)
		}
		lines = append(lines, client.CheckoutLine{
			Name:       name,
			UnitAmount: minorUnits(item.UnitPrice),
			Quantity:   int64(item.Quantity),
		})
	}

	redirectURL, err := s.paymentClient.CreateCheckoutSession(ctx,
		lines,
		s.baseURL+"/api/checkout/success",
		s.baseURL+"/api/checkout/cancel",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	return &dto.BeginPaymentResponse{
		Reference:   snap.Reference,
		RedirectURL: redirectURL,
		Status:      StatusAwaitingExternalPayment.String(),
	}, nil
}

// ConfirmExternalPayment handles the provider success callback. A
// callback without a pending snapshot is rejected as stale instead of
// producing a degenerate zero-total order.
func (s *checkoutServiceImpl) ConfirmExternalPayment(ctx context.Context, userID uint, sessionID string) (*dto.PlaceOrderResponse, error) {
	snap, err := s.snapshots.LoadPending(ctx, sessionID)
	if errors.Is(err, session.ErrNoValue) {
		return nil, ErrStaleCallback
	}
	if err != nil {
		return nil, err
	}

	order := orderFromSnapshot(userID, snap, true)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if err := s.finishCheckout(ctx, sessionID, snap); err != nil {
		return nil, err
	}

	return &dto.PlaceOrderResponse{
		Reference: snap.Reference,
		OrderID:   order.ID,
		Status:    StatusOrderPlacedPaid.String(),
	}, nil
}

// CancelExternalPayment leaves the cart and snapshot untouched; the
// buyer lands back on the cart review.
func (s *checkoutServiceImpl) CancelExternalPayment(_ context.Context, _ string) CheckoutStatus {
	return StatusPaymentCanceled
}

// finishCheckout clears the cart and promotes the snapshot to the
// "last order" record used by the confirmation view.
func (s *checkoutServiceImpl) finishCheckout(ctx context.Context, sessionID string, snap *model.OrderSnapshot) error {
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	if err := s.snapshots.SaveLast(ctx, sessionID, snap); err != nil {
		return err
	}
	return s.snapshots.DeletePending(ctx, sessionID)
}

// Confirmation shows the last placed order, re-resolving each product
// for image display and tolerating products that are gone.
func (s *checkoutServiceImpl) Confirmation(ctx context.Context, sessionID string) (*dto.ConfirmationView, error) {
	snap, err := s.snapshots.LoadLast(ctx, sessionID)
	if errors.Is(err, session.ErrNoValue) {
		return nil, fmt.Errorf("%w: no recent order", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	view := &dto.ConfirmationView{
		Reference:  snap.Reference,
		Items:      make([]dto.ConfirmationLine, 0, len(snap.Items)),
		GrandTotal: snap.GrandTotal,
		PlacedAt:   snap.PlacedAt,
	}
	if snap.Address != nil {
		v := addressView(snap.Address)
		view.Address = &v
	}
	for _, item := range snap.Items {
		line := dto.ConfirmationLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
		if product, err := s.productRepo.FindAvailableByID(ctx, item.ProductID); err == nil {
			line.ImageURL = product.ImageURL
		}
		view.Items = append(view.Items, line)
	}

	return view, nil
}

// minorUnits converts a price to minor currency units, floored, with a
// floor of 1 so the provider never sees a zero-amount line item.
func minorUnits(price decimal.Decimal) int64 {
	cents := price.Mul(decimal.NewFromInt(100)).Floor().IntPart()
	if cents < 1 {
		return 1
	}
	return cents
}

func orderFromSnapshot(userID uint, snap *model.OrderSnapshot, paid bool) *model.Order {
	order := &model.Order{
		UserID:      userID,
		TotalAmount: snap.GrandTotal,
		IsPaid:      paid,
		Items:       make([]model.OrderItem, 0, len(snap.Items)),
	}
	for _, item := range snap.Items {
		productID := item.ProductID
		order.Items = append(order.Items, model.OrderItem{
			ProductID:   &productID,
			ProductName: item.Name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return order
}

func addressView(a *model.Address) dto.AddressView {
	return dto.AddressView{
		ID:        a.ID,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		State:     a.State,
		Pincode:   a.Pincode,
		IsPrimary: a.IsPrimary,
	}
}
