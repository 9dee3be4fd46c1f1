package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anujthakur2004/Fashion-Hub/internal/dto"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"
	"github.com/anujthakur2004/Fashion-Hub/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListAvailable(ctx context.Context) ([]*dto.ProductView, error)
	GetBySlug(ctx context.Context, slug string) (*dto.ProductView, error)
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
	}
}

func (s *catalogServiceImpl) ListAvailable(ctx context.Context) ([]*dto.ProductView, error) {
	products, err := s.productRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	views := make([]*dto.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, productView(product))
	}
	return views, nil
}

func (s *catalogServiceImpl) GetBySlug(ctx context.Context, slug string) (*dto.ProductView, error) {
	product, err := s.productRepo.FindAvailableBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %q", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	return productView(product), nil
}

func productView(product *model.Product) *dto.ProductView {
	view := &dto.ProductView{
		ID:          product.ID,
		Name:        product.Name,
		Slug:        product.Slug,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
	}
	if product.Sizes != "" {
		view.Sizes = strings.Split(product.Sizes, ",")
	}
	return view
}
