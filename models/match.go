package models

import "time"

type Match struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Tournament string    `gorm:"not null" json:"tournament"`
	Opponent   string    `gorm:"not null" json:"opponent"`
	StartsAt   time.Time `gorm:"not null;index" json:"starts_at"`
}
