package service

import (
	"context"
	"sync"

	"github.com/anujthakur2004/Fashion-Hub/internal/client"
	"github.com/anujthakur2004/Fashion-Hub/internal/model"

	"gorm.io/gorm"
)

type mockProductRepo struct {
	mu       sync.RWMutex
	products map[uint]*model.Product
}

func newMockProductRepo(products ...*model.Product) *mockProductRepo {
	repo := &mockProductRepo{products: make(map[uint]*model.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (m *mockProductRepo) Seed(context.Context) error { return nil }

func (m *mockProductRepo) FindAvailableByID(_ context.Context, productID uint) (*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products[productID]
	if !ok || !product.IsAvailable {
		return nil, gorm.ErrRecordNotFound
	}
	return product, nil
}

func (m *mockProductRepo) FindAvailableBySlug(_ context.Context, slug string) (*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, product := range m.products {
		if product.Slug == slug && product.IsAvailable {
			return product, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) ListAvailable(context.Context) ([]*model.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*model.Product
	for _, product := range m.products {
		if product.IsAvailable {
			out = append(out, product)
		}
	}
	return out, nil
}

func (m *mockProductRepo) remove(productID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, productID)
}

type mockOrderRepo struct {
	mu     sync.Mutex
	nextID uint
	orders []*model.Order
	err    error
}

func (m *mockOrderRepo) Create(_ context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.nextID++
	order.ID = m.nextID
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID uint) ([]*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].UserID == userID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *mockOrderRepo) FindByIDForUser(_ context.Context, userID, orderID uint) (*model.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, order := range m.orders {
		if order.ID == orderID && order.UserID == userID {
			return order, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type mockAddressRepo struct {
	mu        sync.Mutex
	nextID    uint
	addresses []*model.Address
}

func (m *mockAddressRepo) Create(_ context.Context, address *model.Address) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	address.ID = m.nextID
	m.addresses = append(m.addresses, address)
	return nil
}

func (m *mockAddressRepo) ListByUser(_ context.Context, userID uint) ([]*model.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Address
	for _, a := range m.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAddressRepo) FindByIDForUser(_ context.Context, userID, addressID uint) (*model.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.addresses {
		if a.ID == addressID && a.UserID == userID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAddressRepo) FindPrimary(_ context.Context, userID uint) (*model.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.addresses {
		if a.UserID == userID && a.IsPrimary {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAddressRepo) CountByUser(_ context.Context, userID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, a := range m.addresses {
		if a.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockAddressRepo) SetPrimary(_ context.Context, userID, addressID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for _, a := range m.addresses {
		if a.ID == addressID && a.UserID == userID {
			found = true
		}
	}
	if !found {
		return gorm.ErrRecordNotFound
	}
	for _, a := range m.addresses {
		if a.UserID == userID {
			a.IsPrimary = a.ID == addressID
		}
	}
	return nil
}

func (m *mockAddressRepo) DeleteForUser(_ context.Context, userID, addressID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.addresses {
		if a.ID == addressID && a.UserID == userID {
			m.addresses = append(m.addresses[:i], m.addresses[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mockPaymentClient struct {
	mu         sync.Mutex
	redirect   string
	err        error
	lines      []client.CheckoutLine
	successURL string
	cancelURL  string
	calls      int
}

func (m *mockPaymentClient) CreateCheckoutSession(_ context.Context, lines []client.CheckoutLine, successURL, cancelURL string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.lines = lines
	m.successURL = successURL
	m.cancelURL = cancelURL
	if m.err != nil {
		return "", m.err
	}
	return m.redirect, nil
}
