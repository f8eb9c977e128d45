package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

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

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestFetchOrCreateCartCreatesEmptyCart(t *testing.T) {
	db := newTestDB(t)

	cart, err := FetchOrCreateCart(db, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), cart.UserID)
	assert.Empty(t, cart.Items)

	// Second fetch returns the same cart, not a new one
	again, err := FetchOrCreateCart(db, 1)
	require.NoError(t, err)
	assert.Equal(t, cart.CartID, again.CartID)
}

func TestAddItemCreatesLineWithQuantityOne(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Camiseta Oficial 2025", 149.90)

	item, err := AddItem(db, 1, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, product.ID, item.ProductID)
}

func TestAddItemTwiceIncrementsQuantity(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Mousepad XL", 119.90)

	_, err := AddItem(db, 1, product.ID)
	require.NoError(t, err)
	item, err := AddItem(db, 1, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	// Still one line in the cart
	cart, err := FetchOrCreateCart(db, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	db := newTestDB(t)

	_, err := AddItem(db, 1, 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetQuantityUpserts(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Boné E-Sports", 89.90)

	item, err := SetQuantity(db, 1, product.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)

	item, err = SetQuantity(db, 1, product.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Adesivo Oficial", 19.90)

	_, err := AddItem(db, 1, product.ID)
	require.NoError(t, err)

	item, err := SetQuantity(db, 1, product.ID, 0)
	require.NoError(t, err)
	assert.Nil(t, item)

	cart, err := FetchOrCreateCart(db, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestSetQuantityNegativeOnAbsentLineIsNoop(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Jersey Pro Player", 199.90)

	item, err := SetQuantity(db, 1, product.ID, -2)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCartTotalSkipsProductDeletedFromCatalog(t *testing.T) {
	db := newTestDB(t)
	keep := seedProduct(t, db, "Moletom Premium", 249.90)
	gone := seedProduct(t, db, "Produto Descontinuado", 59.90)

	_, err := AddItem(db, 1, keep.ID)
	require.NoError(t, err)
	_, err = AddItem(db, 1, gone.ID)
	require.NoError(t, err)

	// Catalog deletion after the item landed in the cart
	require.NoError(t, db.Delete(&models.Product{}, gone.ID).Error)

	cart, err := FetchOrCreateCart(db, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 249.90, pricing.CartTotal(cart.Items))
}
