package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhzzX0/esports-api/models"
)

func item(productID uint, price float64, qty int) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Product:   models.Product{ID: productID, Price: price},
		Quantity:  qty,
	}
}

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 299.80, LineTotal(item(1, 149.90, 2)))
	assert.Equal(t, 19.90, LineTotal(item(2, 19.90, 1)))
}

func TestCartTotal(t *testing.T) {
	items := []models.CartItem{
		item(1, 149.90, 2), // 299.80
		item(2, 89.90, 1),  // 89.90
		item(3, 19.90, 3),  // 59.70
	}
	assert.Equal(t, 449.40, CartTotal(items))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
	assert.Equal(t, 0.0, CartTotal([]models.CartItem{}))
}

func TestCartTotalSkipsDeletedProducts(t *testing.T) {
	items := []models.CartItem{
		item(1, 149.90, 1),
		// product 2 was removed from the catalog: preload left a zero Product
		{ProductID: 2, Product: models.Product{}, Quantity: 5},
	}
	assert.Equal(t, 149.90, CartTotal(items))
}

func TestApplyCoupon(t *testing.T) {
	discounted, discount, err := ApplyCoupon(100.0, "DESCONTO10")
	require.NoError(t, err)
	assert.Equal(t, 90.0, discounted)
	assert.Equal(t, 10.0, discount)
}

func TestApplyCouponNormalizesCode(t *testing.T) {
	discounted, discount, err := ApplyCoupon(149.90, "  desconto10 ")
	require.NoError(t, err)
	assert.Equal(t, 134.91, discounted)
	assert.Equal(t, 14.99, discount)
}

func TestApplyCouponInvalid(t *testing.T) {
	discounted, discount, err := ApplyCoupon(100.0, "BADCODE")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Equal(t, 100.0, discounted)
	assert.Equal(t, 0.0, discount)
}

func TestApplyCouponEmptyIsPassthrough(t *testing.T) {
	discounted, discount, err := ApplyCoupon(100.0, "")
	require.NoError(t, err)
	assert.Equal(t, 100.0, discounted)
	assert.Equal(t, 0.0, discount)
}
