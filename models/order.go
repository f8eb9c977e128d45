package models

import "time"

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// Order is an immutable snapshot of a completed checkout. Item names and unit
// prices are denormalized at creation time so later catalog changes never
// alter historical orders.
type Order struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	OrderRef       string        `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID         uint          `gorm:"not null;index" json:"user_id"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	BuyerName      string        `gorm:"not null" json:"buyer_name"`
	BuyerEmail     string        `gorm:"not null" json:"buyer_email"`
	Address        string        `gorm:"not null" json:"address"`
	City           string        `gorm:"not null" json:"city"`
	Zip            string        `gorm:"not null" json:"zip"`
	PaymentMethod  PaymentMethod `gorm:"type:VARCHAR(20);not null" json:"payment_method"`
	CouponCode     string        `json:"coupon_code"`
	DiscountAmount float64       `json:"discount_amount"`
	TotalAmount    float64       `gorm:"not null" json:"total_amount"`
	CreatedAt      time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}
