package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	cartControllers "github.com/PhzzX0/esports-api/controllers/cart"
	"github.com/PhzzX0/esports-api/models"
	"github.com/PhzzX0/esports-api/pricing"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{},
		&models.Cart{}, &models.CartItem{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		BuyerName:     "Ranielison",
		BuyerEmail:    "user@teste.com",
		Address:       "Rua dos Potiguares, 100",
		City:          "Natal",
		Zip:           "59000-000",
		PaymentMethod: "pix",
	}
}

func addProductToCart(t *testing.T, db *gorm.DB, userID uint, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price}
	require.NoError(t, db.Create(&product).Error)
	_, err := cartControllers.AddItem(db, userID, product.ID)
	require.NoError(t, err)
	return product
}

func countOrders(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&n).Error)
	return n
}

func cartItems(t *testing.T, db *gorm.DB, userID uint) []models.CartItem {
	t.Helper()
	cart, err := cartControllers.FetchOrCreateCart(db, userID)
	require.NoError(t, err)
	return cart.Items
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)

	_, err := Checkout(db, 1, validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, countOrders(t, db, 1))
}

func TestCheckoutEmptiedCartIsStillEmpty(t *testing.T) {
	db := newTestDB(t)
	product := addProductToCart(t, db, 1, "Adesivo Oficial", 19.90)

	_, err := cartControllers.SetQuantity(db, 1, product.ID, 0)
	require.NoError(t, err)

	_, err = Checkout(db, 1, validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, countOrders(t, db, 1))
}

func TestCheckoutMissingBuyerField(t *testing.T) {
	db := newTestDB(t)
	addProductToCart(t, db, 1, "Camiseta Oficial 2025", 149.90)

	req := validRequest()
	req.City = ""
	_, err := Checkout(db, 1, req)
	assert.ErrorIs(t, err, ErrMissingBuyerField)

	// No mutation
	assert.Zero(t, countOrders(t, db, 1))
	assert.Len(t, cartItems(t, db, 1), 1)
}

func TestCheckoutInvalidPaymentMethod(t *testing.T) {
	db := newTestDB(t)
	addProductToCart(t, db, 1, "Camiseta Oficial 2025", 149.90)

	req := validRequest()
	req.PaymentMethod = "cheque"
	_, err := Checkout(db, 1, req)
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Zero(t, countOrders(t, db, 1))
	assert.Len(t, cartItems(t, db, 1), 1)
}

func TestCheckoutInvalidCouponLeavesCartUntouched(t *testing.T) {
	db := newTestDB(t)
	addProductToCart(t, db, 1, "Camiseta Oficial 2025", 149.90)

	req := validRequest()
	req.CouponCode = "BADCODE"
	_, err := Checkout(db, 1, req)
	assert.ErrorIs(t, err, pricing.ErrInvalidCoupon)
	assert.Zero(t, countOrders(t, db, 1))
	assert.Len(t, cartItems(t, db, 1), 1)
}

func TestCheckoutWithCoupon(t *testing.T) {
	db := newTestDB(t)
	product := addProductToCart(t, db, 1, "Camiseta Oficial 2025", 149.90)

	req := validRequest()
	req.CouponCode = "desconto10"
	order, err := Checkout(db, 1, req)
	require.NoError(t, err)

	assert.Equal(t, 134.91, order.TotalAmount)
	assert.Equal(t, 14.99, order.DiscountAmount)
	assert.Equal(t, "DESCONTO10", order.CouponCode)
	assert.Equal(t, models.PaymentMethodPix, order.PaymentMethod)
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductID)
	assert.Equal(t, "Camiseta Oficial 2025", order.Items[0].ProductName)
	assert.Equal(t, 149.90, order.Items[0].UnitPrice)
	assert.Equal(t, 1, order.Items[0].Quantity)

	// Exactly one order, cart emptied atomically with it
	assert.Equal(t, int64(1), countOrders(t, db, 1))
	assert.Empty(t, cartItems(t, db, 1))
}

func TestCheckoutWithoutCoupon(t *testing.T) {
	db := newTestDB(t)
	addProductToCart(t, db, 1, "Moletom Premium", 249.90)
	addProductToCart(t, db, 1, "Adesivo Oficial", 19.90)

	order, err := Checkout(db, 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 269.80, order.TotalAmount)
	assert.Equal(t, 0.0, order.DiscountAmount)
	assert.Len(t, order.Items, 2)
}

func TestCheckoutSnapshotIsDecoupledFromCatalog(t *testing.T) {
	db := newTestDB(t)
	product := addProductToCart(t, db, 1, "Jersey Pro Player", 199.90)

	order, err := Checkout(db, 1, validRequest())
	require.NoError(t, err)

	// Catalog price changes after checkout must not alter the order
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).Update("price", 999.99).Error)

	var reloaded models.Order
	require.NoError(t, db.Preload("Items").First(&reloaded, order.ID).Error)
	assert.Equal(t, 199.90, reloaded.Items[0].UnitPrice)
	assert.Equal(t, 199.90, reloaded.TotalAmount)
}

func TestCheckoutSkipsProductsDeletedFromCatalog(t *testing.T) {
	db := newTestDB(t)
	addProductToCart(t, db, 1, "Camiseta Oficial 2025", 149.90)
	gone := addProductToCart(t, db, 1, "Produto Descontinuado", 59.90)

	require.NoError(t, db.Delete(&models.Product{}, gone.ID).Error)

	order, err := Checkout(db, 1, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 149.90, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Camiseta Oficial 2025", order.Items[0].ProductName)
}

func TestConfirmationStoreIsOneTime(t *testing.T) {
	store := NewConfirmationStore()
	order := &models.Order{
		ID:          7,
		OrderRef:    "ref-7",
		TotalAmount: 134.91,
		BuyerEmail:  "user@teste.com",
		Items:       []models.OrderItem{{ProductName: "Camiseta Oficial 2025", Quantity: 1, UnitPrice: 149.90}},
	}

	token := store.Put(order)
	view, ok := store.Pop(token)
	require.True(t, ok)
	assert.Equal(t, uint(7), view.OrderID)
	assert.Equal(t, 134.91, view.Total)

	// second read misses: the view is display-only, not replayable
	_, ok = store.Pop(token)
	assert.False(t, ok)
}

func TestConfirmationStoreUnknownToken(t *testing.T) {
	store := NewConfirmationStore()
	_, ok := store.Pop("nope")
	assert.False(t, ok)
}
