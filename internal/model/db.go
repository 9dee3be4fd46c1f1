package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:150;uniqueIndex;not null"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Phone        string `gorm:"size:15"`
	Gender       string `gorm:"size:10"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Address struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Address1  string `gorm:"size:255"`
	Address2  string `gorm:"size:255"`
	City      string `gorm:"size:100"`
	State     string `gorm:"size:100"`
	Pincode   string `gorm:"size:12"`
	IsPrimary bool   `gorm:"not null;default:false"` // at most one per user, kept by the address service
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	Slug        string          `gorm:"size:255;uniqueIndex;not null"`
	Description string          `gorm:"type:text"`
	Category    string          `gorm:"size:100;index"`
	Sizes       string          `gorm:"size:100"` // comma separated, e.g. "M,L,XL,XXL"
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ImageURL    string          `gorm:"size:512"`
	IsAvailable bool            `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
}

type Order struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"` // sum of item line totals at creation, never recomputed
	IsPaid      bool            `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItem `gorm:"constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID      uint `gorm:"primaryKey"`
	OrderID uint `gorm:"index;not null"`
	// Soft reference: nulled if the product is deleted later. The
	// denormalized columns below keep historical orders readable.
	ProductID   *uint           `gorm:"index"`
	Product     *Product        `gorm:"constraint:OnDelete:SET NULL"`
	ProductName string          `gorm:"size:255;not null"`
	Size        string          `gorm:"size:10"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LineTotal   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt   time.Time
}
