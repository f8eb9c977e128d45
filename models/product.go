package models

import "time"

type Product struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Price     float64   `gorm:"not null" json:"price"`
	ImageURL  string    `json:"image_url"`
	Rating    int       `gorm:"default:5" json:"rating"`
	Reviews   int       `gorm:"default:0" json:"reviews"`
	Tag       string    `json:"tag"` // e.g. "NOVO", "BEST SELLER"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
