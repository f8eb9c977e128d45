package models

type Player struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Role     string `gorm:"not null" json:"role"`
	Game     string `json:"game"`
	ImageURL string `json:"image_url"`

	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
	Twitch    string `json:"twitch"`
}
