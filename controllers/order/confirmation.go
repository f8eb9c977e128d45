package orderControllers

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/PhzzX0/esports-api/models"
)

const confirmationTTL = 15 * time.Minute

// ConfirmationView is display-only state for the post-checkout page. It is
// consumed on first read and is not an audit record; the persisted Order is.
type ConfirmationView struct {
	OrderID    uint               `json:"order_id"`
	OrderRef   string             `json:"order_ref"`
	Total      float64            `json:"total"`
	Items      []models.OrderItem `json:"items"`
	BuyerEmail string             `json:"buyer_email"`
	CreatedAt  time.Time          `json:"created_at"`
}

type confirmationEntry struct {
	view      ConfirmationView
	expiresAt time.Time
}

type ConfirmationStore struct {
	mu    sync.Mutex
	store map[string]confirmationEntry
}

func NewConfirmationStore() *ConfirmationStore {
	return &ConfirmationStore{
		store: make(map[string]confirmationEntry),
	}
}

// Put stores a one-time confirmation view for the order and returns its token.
func (s *ConfirmationStore) Put(order *models.Order) string {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for key, entry := range s.store {
		if now.After(entry.expiresAt) {
			delete(s.store, key)
		}
	}
	s.store[token] = confirmationEntry{
		view: ConfirmationView{
			OrderID:    order.ID,
			OrderRef:   order.OrderRef,
			Total:      order.TotalAmount,
			Items:      order.Items,
			BuyerEmail: order.BuyerEmail,
			CreatedAt:  order.CreatedAt,
		},
		expiresAt: now.Add(confirmationTTL),
	}
	return token
}

// Pop removes and returns the view for a token. A second read misses.
func (s *ConfirmationStore) Pop(token string) (ConfirmationView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.store[token]
	if !ok {
		return ConfirmationView{}, false
	}
	delete(s.store, token)
	if time.Now().After(entry.expiresAt) {
		return ConfirmationView{}, false
	}
	return entry.view, true
}
