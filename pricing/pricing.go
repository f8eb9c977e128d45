package pricing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/PhzzX0/esports-api/models"
)

// ErrInvalidCoupon is returned for any non-empty code that is not recognized.
// Checkout must abort on it without touching the cart.
var ErrInvalidCoupon = errors.New("invalid coupon code")

// CouponCode is the single recognized discount code (10% off the cart total).
const CouponCode = "DESCONTO10"

const couponPercent = 10

// LineTotal returns price × quantity for one cart line, read from the live
// product reference.
func LineTotal(item models.CartItem) float64 {
	total, _ := decimal.NewFromFloat(item.Product.Price).
		Mul(decimal.NewFromInt(int64(item.Quantity))).
		Round(2).Float64()
	return total
}

// CartTotal sums the line totals of all items. Items whose product no longer
// resolves in the catalog (zero Product ID after a preload) are skipped rather
// than failing the whole cart. An empty slice yields 0.
func CartTotal(items []models.CartItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		if item.Product.ID == 0 {
			// product was deleted from the catalog after being added
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(item.Product.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	total, _ := sum.Round(2).Float64()
	return total
}

// ApplyCoupon applies a coupon code to a cart total. The code is trimmed and
// uppercased before matching. An empty code is a passthrough; the recognized
// code takes 10% off; anything else is rejected with ErrInvalidCoupon.
// Both returned amounts are rounded to cents.
func ApplyCoupon(total float64, code string) (discounted float64, discount float64, err error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return total, 0, nil
	}
	if normalized != CouponCode {
		return total, 0, ErrInvalidCoupon
	}

	t := decimal.NewFromFloat(total)
	d := t.Mul(decimal.NewFromInt(couponPercent)).Div(decimal.NewFromInt(100)).Round(2)
	discounted, _ = t.Sub(d).Float64()
	discount, _ = d.Float64()
	return discounted, discount, nil
}
