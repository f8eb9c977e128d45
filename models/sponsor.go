package models

type Sponsor struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	LogoURL string `gorm:"not null" json:"logo_url"`
	Website string `json:"website"`
}
