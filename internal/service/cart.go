package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"
	"github.com/anujthakur2004/Fashion-Hub/internal/session"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	Add(ctx context.Context, sessionID string, productID uint, size string) error
	UpdateQuantity(ctx context.Context, sessionID string, productID uint, size string, quantity int) error
	UpdateSize(ctx context.Context, sessionID string, productID uint, oldSize, newSize string) error
	Remove(ctx context.Context, sessionID string, productID uint, size string) error
	Materialize(ctx context.Context, sessionID string) (*dto.CartView, error)
}

type cartServiceImpl struct {
	productRepo repository.ProductRepository
	carts       *session.CartStore
}

func NewCartService(productRepo repository.ProductRepository, carts *session.CartStore) CartService {
	return &cartServiceImpl{
		productRepo: productRepo,
		carts:       carts,
	}
}

// Add puts one more unit of the product/size into the cart. The product
// must exist and be available.
func (s *cartServiceImpl) Add(ctx context.Context, sessionID string, productID uint, size string) error {
	if strings.Contains(size, ":") {
		return fmt.Errorf("%w: size must not contain ':'", ErrValidation)
	}

	if _, err := s.productRepo.FindAvailableByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %d", ErrNotFound, productID)
		}
		return fmt.Errorf("look up product: %w", err)
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	key := model.ItemKey{ProductID: productID, Size: size}
	cart[key]++

	return s.carts.Save(ctx, sessionID, cart)
}

// UpdateQuantity sets the quantity, removing the entry at zero or below.
// An absent entry with a non-positive quantity is a no-op.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, sessionID string, productID uint, size string, quantity int) error {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	key := model.ItemKey{ProductID: productID, Size: size}
	if quantity > 0 {
		cart[key] = quantity
	} else {
		if _, ok := cart[key]; !ok {
			return nil
		}
		delete(cart, key)
	}

	return s.carts.Save(ctx, sessionID, cart)
}

// UpdateSize moves a line to a different size, keeping its quantity.
// When the target size already sits in the cart the quantities are
// merged; nothing happens when the old entry is absent.
func (s *cartServiceImpl) UpdateSize(ctx context.Context, sessionID string, productID uint, oldSize, newSize string) error {
	if strings.Contains(newSize, ":") {
		return fmt.Errorf("%w: size must not contain ':'", ErrValidation)
	}

	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	oldKey := model.ItemKey{ProductID: productID, Size: oldSize}
	qty, ok := cart[oldKey]
	if !ok {
		return nil
	}

	delete(cart, oldKey)
	cart[model.ItemKey{ProductID: productID, Size: newSize}] += qty

	return s.carts.Save(ctx, sessionID, cart)
}

func (s *cartServiceImpl) Remove(ctx context.Context, sessionID string, productID uint, size string) error {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	key := model.ItemKey{ProductID: productID, Size: size}
	if _, ok := cart[key]; !ok {
		return nil
	}
	delete(cart, key)

	return s.carts.Save(ctx, sessionID, cart)
}

// Materialize prices every surviving entry against the current catalog.
// Entries whose product is gone or no longer available are dropped from
// the view but left in the store.
func (s *cartServiceImpl) Materialize(ctx context.Context, sessionID string) (*dto.CartView, error) {
	cart, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &dto.CartView{
		Items:      make([]dto.CartLine, 0, len(cart)),
		GrandTotal: decimal.Zero,
	}

	for key, qty := range cart {
		product, err := s.productRepo.FindAvailableByID(ctx, key.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("look up product: %w", err)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		view.Items = append(view.Items, dto.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			Slug:      product.Slug,
			Size:      key.Size,
			Quantity:  qty,
			UnitPrice: product.Price,
			LineTotal: lineTotal,
			ImageURL:  product.ImageURL,
		})
		view.GrandTotal = view.GrandTotal.Add(lineTotal)
	}

	sort.Slice(view.Items, func(i, j int) bool {
		if view.Items[i].ProductID != view.Items[j].ProductID {
			return view.Items[i].ProductID < view.Items[j].ProductID
		}
		return view.Items[i].Size < view.Items[j].Size
	})

	return view, nil
}
