package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"

	"gorm.io/gorm"
)

// OrderQueryService serves read-only projections of persisted orders.
type OrderQueryService interface {
	ListForUser(ctx context.Context, userID uint) ([]*dto.OrderView, error)
	GetOne(ctx context.Context, userID, orderID uint) (*dto.OrderView, error)
}

type orderQueryServiceImpl struct {
	orderRepo repository.OrderRepository
}

func NewOrderQueryService(orderRepo repository.OrderRepository) OrderQueryService {
	return &orderQueryServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *orderQueryServiceImpl) ListForUser(ctx context.Context, userID uint) ([]*dto.OrderView, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]*dto.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, orderView(order))
	}
	return views, nil
}

// GetOne is scoped strictly to the requesting user; someone else's
// order id reads as not-found, never as data.
func (s *orderQueryServiceImpl) GetOne(ctx context.Context, userID, orderID uint) (*dto.OrderView, error) {
	order, err := s.orderRepo.FindByIDForUser(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, orderID)
		}
		return nil, fmt.Errorf("find order: %w", err)
	}

	return orderView(order), nil
}

func orderView(order *model.Order) *dto.OrderView {
	view := &dto.OrderView{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		IsPaid:      order.IsPaid,
		CreatedAt:   order.CreatedAt,
		Items:       make([]dto.OrderItemView, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		itemView := dto.OrderItemView{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Size:        item.Size,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		}
		if item.Product != nil {
			itemView.ImageURL = item.Product.ImageURL
		}
		view.Items = append(view.Items, itemView)
	}
	return view
}
