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

type AddressService interface {
	List(ctx context.Context, userID uint) ([]dto.AddressView, error)
	Add(ctx context.Context, userID uint, req *dto.AddressRequest) (*dto.AddressView, error)
	SetPrimary(ctx context.Context, userID, addressID uint) error
	Delete(ctx context.Context, userID, addressID uint) error
}

type addressServiceImpl struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressServiceImpl{
		addressRepo: addressRepo,
	}
}

func (s *addressServiceImpl) List(ctx context.Context, userID uint) ([]dto.AddressView, error) {
	addresses, err := s.addressRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	views := make([]dto.AddressView, 0, len(addresses))
	for _, a := range addresses {
		views = append(views, addressView(a))
	}
	return views, nil
}

// Add stores a new address. The user's first address becomes primary.
func (s *addressServiceImpl) Add(ctx context.Context, userID uint, req *dto.AddressRequest) (*dto.AddressView, error) {
	if strings.TrimSpace(req.Address1) == "" {
		return nil, fmt.Errorf("%w: address line 1 is required", ErrValidation)
	}

	count, err := s.addressRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count addresses: %w", err)
	}

	address := &model.Address{
		UserID:    userID,
		Address1:  strings.TrimSpace(req.Address1),
		Address2:  strings.TrimSpace(req.Address2),
		City:      strings.TrimSpace(req.City),
		State:     strings.TrimSpace(req.State),
		Pincode:   strings.TrimSpace(req.Pincode),
		IsPrimary: count == 0,
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	view := addressView(address)
	return &view, nil
}

func (s *addressServiceImpl) SetPrimary(ctx context.Context, userID, addressID uint) error {
	err := s.addressRepo.SetPrimary(ctx, userID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: address %d", ErrNotFound, addressID)
	}
	return err
}

func (s *addressServiceImpl) Delete(ctx context.Context, userID, addressID uint) error {
	err := s.addressRepo.DeleteForUser(ctx, userID, addressID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: address %d", ErrNotFound, addressID)
	}
	return err
}
