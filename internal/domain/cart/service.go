// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/product"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInsufficientStock is returned when a requested quantity exceeds live stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrConcurrentUpdate is returned when cart mutations kept colliding
	ErrConcurrentUpdate = errors.New("cart was modified concurrently, please retry")
)

// Service owns the session cart. Mutations are serialized per session with
// an optimistic version counter: the stored cart is WATCHed and the save
// retried on collision, so concurrent requests on one session cannot lose
// updates.
type Service struct {
	redisClient *redis.Client
	products    *product.Service
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, products *product.Service, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		redisClient: redisClient,
		products:    products,
		config:      cfg,
		logger:      logger,
	}
}

// CartResponse represents a cart with derived totals
type CartResponse struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents update cart item request
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart retrieves the cart for a session, empty if none exists yet
func (s *Service) GetCart(ctx context.Context, sessionID string) (*CartResponse, error) {
	sessionCart, err := s.loadCart(ctx, s.redisClient, sessionID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sessionCart), nil
}

// AddItem adds one product to the cart. If a line for the product already
// exists its quantity is incremented; otherwise a new line is created with
// the product's current price, names and image frozen as a snapshot.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*CartResponse, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	prod, err := s.products.GetProductByID(req.ProductID)
	if err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, sessionID, func(c *SessionCart) error {
		newQuantity := quantity
		if existing := c.FindItem(prod.ID); existing != nil {
			newQuantity += existing.Quantity
		}

		if err := s.checkStock(prod, newQuantity); err != nil {
			return err
		}

		if existing := c.FindItem(prod.ID); existing != nil {
			existing.Quantity = newQuantity
			return nil
		}

		c.Items = append(c.Items, LineItem{
			ProductID: prod.ID,
			NameAr:    prod.NameAr,
			NameEn:    prod.NameEn,
			UnitPrice: prod.Price,
			ImageURL:  prod.ImageURL,
			Quantity:  quantity,
			AddedAt:   time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(updated), nil
}

// UpdateQuantity sets a line's quantity. Zero or negative removes the line.
// A product id not present in the cart is a silent no-op.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartResponse, error) {
	if quantity > 0 && s.config.Cart.EnforceStock {
		// Only clamp against products the catalog still knows about
		if prod, err := s.products.GetProductByID(productID); err == nil {
			if err := s.checkStock(prod, quantity); err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.mutate(ctx, sessionID, func(c *SessionCart) error {
		for i := range c.Items {
			if c.Items[i].ProductID != productID {
				continue
			}
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return nil
		}
		// Item not in cart: no-op
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(updated), nil
}

// RemoveItem deletes a line item if present
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*CartResponse, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, 0)
}

// ClearCart removes all items from the cart
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.redisClient.Del(ctx, cartKey(sessionID)).Err()
}

// GetItemCount returns the sum of quantities across the cart
func (s *Service) GetItemCount(ctx context.Context, sessionID string) (int, error) {
	cartResponse, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return cartResponse.Totals.ItemCount, nil
}

// ValidateCart revalidates every line's snapshot price against the live
// catalog. Mismatched lines are reported and the stored snapshot refreshed
// so the shopper confirms the new price before paying.
func (s *Service) ValidateCart(ctx context.Context, sessionID string) ([]PriceMismatch, *CartResponse, error) {
	current, err := s.loadCart(ctx, s.redisClient, sessionID)
	if err != nil {
		return nil, nil, err
	}

	var mismatches []PriceMismatch
	livePrices := make(map[string]int64, len(current.Items))
	for _, item := range current.Items {
		prod, err := s.products.GetProductByID(item.ProductID)
		if err != nil {
			continue // product withdrawn from catalog, keep the snapshot
		}
		livePrices[item.ProductID] = prod.Price
		if prod.Price != item.UnitPrice {
			mismatches = append(mismatches, PriceMismatch{
				ProductID:    item.ProductID,
				NameEn:       item.NameEn,
				NameAr:       item.NameAr,
				CartPrice:    item.UnitPrice,
				CatalogPrice: prod.Price,
			})
		}
	}

	if len(mismatches) == 0 {
		return nil, s.toResponse(current), nil
	}

	updated, err := s.mutate(ctx, sessionID, func(c *SessionCart) error {
		for i := range c.Items {
			if price, ok := livePrices[c.Items[i].ProductID]; ok {
				c.Items[i].UnitPrice = price
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return mismatches, s.toResponse(updated), nil
}

// checkStock rejects quantities beyond live availability for tracked products
func (s *Service) checkStock(prod *product.Product, quantity int) error {
	if !s.config.Cart.EnforceStock || !prod.TrackQuantity {
		return nil
	}
	if quantity > prod.StockQuantity {
		return fmt.Errorf("%w, available: %d", ErrInsufficientStock, prod.StockQuantity)
	}
	return nil
}

// mutate applies fn to the stored cart under optimistic concurrency control
func (s *Service) mutate(ctx context.Context, sessionID string, fn func(*SessionCart) error) (*SessionCart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	key := cartKey(sessionID)
	var result *SessionCart

	txf := func(tx *redis.Tx) error {
		sessionCart, err := s.loadCart(ctx, tx, sessionID)
		if err != nil {
			return err
		}

		if err := fn(sessionCart); err != nil {
			return err
		}

		now := time.Now().UTC()
		sessionCart.Version++
		sessionCart.UpdatedAt = now
		sessionCart.ExpiresAt = now.Add(s.config.Cart.SessionTTL)

		data, err := json.Marshal(sessionCart)
		if err != nil {
			return fmt.Errorf("failed to serialize cart: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.config.Cart.SessionTTL)
			return nil
		})
		if err != nil {
			return err
		}

		result = sessionCart
		return nil
	}

	retries := s.config.Cart.UpdateRetries
	if retries < 1 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		err := s.redisClient.Watch(ctx, txf, key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue // lost the race, reload and retry
		}
		return nil, err
	}

	s.logger.WithField("session_id", sessionID).Warn("Cart mutation exhausted retries")
	return nil, ErrConcurrentUpdate
}

// redisGetter covers both *redis.Client and *redis.Tx
type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *Service) loadCart(ctx context.Context, client redisGetter, sessionID string) (*SessionCart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	data, err := client.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		now := time.Now().UTC()
		return &SessionCart{
			SessionID: sessionID,
			Items:     []LineItem{},
			CreatedAt: now,
			UpdatedAt: now,
			ExpiresAt: now.Add(s.config.Cart.SessionTTL),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var sessionCart SessionCart
	if err := json.Unmarshal([]byte(data), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to parse stored cart: %w", err)
	}
	return &sessionCart, nil
}

func (s *Service) toResponse(c *SessionCart) *CartResponse {
	return &CartResponse{
		SessionID: c.SessionID,
		Items:     c.Items,
		Totals:    c.ComputeTotals(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
