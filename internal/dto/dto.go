package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// -------- cart --------

type CartItemRequest struct {
	Size string `json:"size"`
}

type UpdateQuantityRequest struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

type UpdateSizeRequest struct {
	OldSize string `json:"old_size"`
	NewSize string `json:"new_size"`
}

type CartLine struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type CartView struct {
	Items      []CartLine      `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}

// -------- checkout --------

type CheckoutView struct {
	Items      []CartLine      `json:"items"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Addresses  []AddressView   `json:"addresses"`
}

type PlaceOrderRequest struct {
	AddressID uint `json:"address_id"`
}

type PlaceOrderResponse struct {
	Reference string `json:"reference"`
	OrderID   uint   `json:"order_id"`
	Status    string `json:"status"`
}

type BeginPaymentResponse struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirect_url"`
	Status      string `json:"status"`
}

type ConfirmationLine struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type ConfirmationView struct {
	Reference  string             `json:"reference"`
	Items      []ConfirmationLine `json:"items"`
	GrandTotal decimal.Decimal    `json:"grand_total"`
	Address    *AddressView       `json:"address,omitempty"`
	PlacedAt   time.Time          `json:"placed_at"`
}

// -------- orders --------

type OrderItemView struct {
	ProductID   *uint           `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
	ImageURL    string          `json:"image_url,omitempty"`
}

type OrderView struct {
	ID          uint            `json:"id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	IsPaid      bool            `json:"is_paid"`
	CreatedAt   time.Time       `json:"created_at"`
	Items       []OrderItemView `json:"items"`
}

// -------- users / addresses --------

type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Phone           string `json:"phone"`
	Gender          string `json:"gender"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProfileView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

type AddressRequest struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

type AddressView struct {
	ID        uint   `json:"id"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
	Pincode   string `json:"pincode,omitempty"`
	IsPrimary bool   `json:"is_primary"`
}

// -------- catalog --------

type ProductView struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Sizes       []string        `json:"sizes,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
}
