package services

import (
	"context"
	"errors"
	"log"
	"sync"

	"gran-estacion/models"
	"gran-estacion/repositories"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductOutOfStock = errors.New("product is out of stock")
)

// Observer receives a session's cart after every mutation.
type Observer func(sessionID string, items []models.CartItem)

// CartService owns all cart mutation. Every mutation is a read-modify-write of
// the persisted snapshot, so they are serialized through one mutex; dependent
// views are driven through the observer list instead of reaching into state.
type CartService struct {
	menu      *repositories.MenuRepository
	carts     *repositories.CartRepository
	mu        sync.Mutex
	observers []Observer
}

func NewCartService(menu *repositories.MenuRepository, carts *repositories.CartRepository) *CartService {
	return &CartService{menu: menu, carts: carts}
}

func (s *CartService) Subscribe(fn Observer) {
	s.observers = append(s.observers, fn)
}

func (s *CartService) notify(sessionID string, items []models.CartItem) {
	for _, fn := range s.observers {
		fn(sessionID, items)
	}
}

// load treats any storage failure as "no saved cart".
func (s *CartService) load(ctx context.Context, sessionID string) []models.CartItem {
	items, err := s.carts.Load(ctx, sessionID)
	if err != nil {
		log.Printf("Cart restore failed for session %s: %v", sessionID, err)
		return []models.CartItem{}
	}
	return items
}

// persist is best-effort; a failed write never fails the mutation.
func (s *CartService) persist(ctx context.Context, sessionID string, items []models.CartItem) {
	if err := s.carts.Save(ctx, sessionID, items); err != nil {
		log.Printf("Cart persist failed for session %s: %v", sessionID, err)
	}
}

// Get returns the session's cart in insertion order.
func (s *CartService) Get(ctx context.Context, sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, sessionID)
}

// Add snapshots the product into the cart, or bumps its quantity when already
// present. Unknown and out-of-stock products are rejected without touching the
// cart.
func (s *CartService) Add(ctx context.Context, sessionID, productID string) ([]models.CartItem, error) {
	product, ok := s.menu.FindProductByID(productID)
	if !ok {
		return nil, ErrProductNotFound
	}
	if product.Agotado {
		return nil, ErrProductOutOfStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, sessionID)
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Icon:      product.Icon,
			Quantity:  1,
		})
	}

	s.persist(ctx, sessionID, items)
	s.notify(sessionID, items)
	return items, nil
}

// ChangeQuantity adds delta to an item's quantity; a result of 0 or less
// removes the item. Absent items are a no-op.
func (s *CartService) ChangeQuantity(ctx context.Context, sessionID, productID string, delta int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, sessionID)
	for i := range items {
		if items[i].ProductID != productID {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		}
		s.persist(ctx, sessionID, items)
		s.notify(sessionID, items)
		break
	}
	return items
}

// Remove deletes the matching item; absent items are a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx, sessionID)
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	s.persist(ctx, sessionID, kept)
	s.notify(sessionID, kept)
	return kept
}

func (s *CartService) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	empty := []models.CartItem{}
	s.persist(ctx, sessionID, empty)
	s.notify(sessionID, empty)
}
