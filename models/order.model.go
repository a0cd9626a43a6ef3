package models

import (
	"time"
)

// Order statuses. Orders are created as pending; status transitions are not
// exposed through the API.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;not null" json:"user_id"`

	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"total"`
	Status      string      `gorm:"default:'pending';size:20" json:"status"`

	ShippingAddress Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user"`
}

// OrderItem is a denormalized snapshot of a catalog product taken at order
// time. It never changes when the catalog does.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product"`
	Name      string  `gorm:"size:255" json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

type Address struct {
	Street string `gorm:"size:255" json:"street"`
	City   string `gorm:"size:100" json:"city"`
	State  string `gorm:"size:100" json:"state"`
	Zip    string `gorm:"size:20" json:"zip"`
}
