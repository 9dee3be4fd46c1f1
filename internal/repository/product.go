package repository

import (
	"context"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindAvailableByID(ctx context.Context, productID uint) (*model.Product, error)
	FindAvailableBySlug(ctx context.Context, slug string) (*model.Product, error)
	ListAvailable(ctx context.Context) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: 1, Name: "Classic Denim Jacket", Slug: "classic-denim-jacket", Category: "Men", Sizes: "M,L,XL,XXL", Price: decimal.NewFromFloat(49.99)},
		{ID: 2, Name: "Floral Summer Dress", Slug: "floral-summer-dress", Category: "Women", Sizes: "M,L,XL", Price: decimal.NewFromFloat(39.50)},
		{ID: 3, Name: "Slim Fit Chinos", Slug: "slim-fit-chinos", Category: "Men", Sizes: "M,L,XL,XXL", Price: decimal.NewFromFloat(29.00)},
		{ID: 4, Name: "Leather Belt", Slug: "leather-belt", Category: "Accessories", Price: decimal.NewFromFloat(15.75)},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindAvailableByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_available = ?", productID, true).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindAvailableBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_available = ?", slug, true).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) ListAvailable(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("created_at DESC").
		Find(&products).
		Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
