package models

import (
	"time"
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;index" json:"category"` // electronics, audio, etc.
	Description string  `gorm:"type:text" json:"description"`
	Image       string  `json:"image"`
	InStock     bool    `gorm:"default:true" json:"inStock"`
	Rating      float64 `json:"rating"` // 0-5
	Stock       int     `gorm:"default:0" json:"stock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
