package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PhzzX0/esports-api/models"
	"github.com/PhzzX0/esports-api/pricing"
)

// -------- Request Structs --------

type CheckoutRequest struct {
	BuyerName     string `json:"buyer_name"`
	BuyerEmail    string `json:"buyer_email"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Zip           string `json:"zip"`
	PaymentMethod string `json:"payment_method"`
	CouponCode    string `json:"coupon_code"`
}

// -------- Errors --------

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingBuyerField    = errors.New("missing required buyer field")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// -------- Helpers --------

// Map string to PaymentMethod
func mapPaymentMethod(method string) (models.PaymentMethod, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case string(models.PaymentMethodPix):
		return models.PaymentMethodPix, nil
	case string(models.PaymentMethodCreditCard):
		return models.PaymentMethodCreditCard, nil
	case string(models.PaymentMethodBoleto):
		return models.PaymentMethodBoleto, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func validateCheckoutRequest(req CheckoutRequest) error {
	required := []string{req.BuyerName, req.BuyerEmail, req.Address, req.City, req.Zip, req.PaymentMethod}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingBuyerField
		}
	}
	_, err := mapPaymentMethod(req.PaymentMethod)
	return err
}

// -------- Core Logic --------

// Checkout runs the single-pass checkout sequence: load cart, quote, validate
// input, apply coupon, then commit. Steps before the commit cause no mutation
// on failure; the commit itself (order insert + cart clear) is transactional,
// so a storage failure leaves the cart untouched.
//
// Note: concurrent checkouts for the same user are not coordinated. Two
// in-flight requests could each pass the quote step and append two orders.
func Checkout(db *gorm.DB, userID uint, req CheckoutRequest) (*models.Order, error) {
	var cart models.Cart
	err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmptyCart
	}
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Quote: totals are snapshotted at this instant from live catalog prices.
	total := pricing.CartTotal(cart.Items)

	if err := validateCheckoutRequest(req); err != nil {
		return nil, err
	}
	paymentMethod, _ := mapPaymentMethod(req.PaymentMethod)

	couponCode := strings.ToUpper(strings.TrimSpace(req.CouponCode))
	total, discount, err := pricing.ApplyCoupon(total, couponCode)
	if err != nil {
		return nil, err
	}

	var orderItems []models.OrderItem
	for _, item := range cart.Items {
		if item.Product.ID == 0 {
			// catalog entry deleted after the item was added; excluded from
			// the total above, so exclude it from the snapshot too
			continue
		}
		orderItems = append(orderItems, models.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		})
	}

	order := models.Order{
		OrderRef:       generateOrderRef(),
		UserID:         userID,
		Items:          orderItems,
		BuyerName:      req.BuyerName,
		BuyerEmail:     req.BuyerEmail,
		Address:        req.Address,
		City:           req.City,
		Zip:            req.Zip,
		PaymentMethod:  paymentMethod,
		CouponCode:     couponCode,
		DiscountAmount: discount,
		TotalAmount:    total,
		CreatedAt:      time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// -------- Handlers --------

// POST /user/checkout
func CheckoutHandler(db *gorm.DB, confirmations *ConfirmationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := Checkout(db, userID, req)
		switch {
		case errors.Is(err, ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart is empty", "redirect": "/cart"})
			return
		case errors.Is(err, ErrMissingBuyerField),
			errors.Is(err, ErrInvalidPaymentMethod),
			errors.Is(err, pricing.ErrInvalidCoupon):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		token := confirmations.Put(order)
		broadcastNewOrder(*order)

		c.JSON(http.StatusCreated, gin.H{
			"message":            "Order placed successfully",
			"order_id":           order.ID,
			"order_ref":          order.OrderRef,
			"total":              order.TotalAmount,
			"confirmation_token": token,
		})
	}
}

// GET /user/checkout/confirmation/:token
func ConfirmationHandler(confirmations *ConfirmationStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, ok := confirmations.Pop(c.Param("token"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Confirmation expired or already viewed"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders/:orderID — lookup by numeric id or order_ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
