package repository

import (
	"context"

	"github.com/anujthakur2004/Fashion-Hub/internal/model"

	"gorm.io/gorm"
)

type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) error
	ListByUser(ctx context.Context, userID uint) ([]*model.Address, error)
	FindByIDForUser(ctx context.Context, userID, addressID uint) (*model.Address, error)
	FindPrimary(ctx context.Context, userID uint) (*model.Address, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	SetPrimary(ctx context.Context, userID, addressID uint) error
	DeleteForUser(ctx context.Context, userID, addressID uint) error
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{
		db: db,
	}
}

func (r *addressRepoImpl) Create(ctx context.Context, address *model.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *addressRepoImpl) ListByUser(ctx context.Context, userID uint) ([]*model.Address, error) {
	var addresses []*model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_primary DESC, id DESC").
		Find(&addresses).
		Error

	if err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepoImpl) FindByIDForUser(ctx context.Context, userID, addressID uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		First(&address).Error

	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressRepoImpl) FindPrimary(ctx context.Context, userID uint) (*model.Address, error) {
	var address model.Address
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_primary = ?", userID, true).
		First(&address).Error

	if err != nil {
		return nil, err
	}

	return &address, nil
}

func (r *addressRepoImpl) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Address{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}

// SetPrimary demotes every other address of the user in the same
// transaction, keeping the one-primary-per-user invariant.
func (r *addressRepoImpl) SetPrimary(ctx context.Context, userID, addressID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Address{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_primary", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&model.Address{}).
			Where("user_id = ? AND id <> ?", userID, addressID).
			Update("is_primary", false).Error
	})
}

func (r *addressRepoImpl) DeleteForUser(ctx context.Context, userID, addressID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&model.Address{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
