// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/cart"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/payment"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// State is a step of the checkout flow. success is terminal; a failed
// payment returns the flow to method_selection for retry.
type State string

const (
	StateMethodSelection State = "method_selection"
	StateProcessing      State = "processing"
	StateSuccess         State = "success"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPaymentInFlight is returned when a payment is already being processed
	// for this checkout
	ErrPaymentInFlight = errors.New("a payment is already in progress for this checkout")
)

// PriceChangedError is returned when cart snapshot prices diverged from the
// live catalog. The cart has been refreshed; the shopper must confirm again.
type PriceChangedError struct {
	Mismatches []cart.PriceMismatch
}

func (e *PriceChangedError) Error() string {
	return fmt.Sprintf("prices changed for %d cart item(s), please review before paying", len(e.Mismatches))
}

// Checkout represents the persisted orchestrator state for one cart session
type Checkout struct {
	SessionID        string         `json:"session_id"`
	State            State          `json:"state"`
	AttemptID        string         `json:"attempt_id,omitempty"` // idempotency key of the current attempt
	PaymentSessionID string         `json:"payment_session_id,omitempty"`
	Amount           int64          `json:"amount,omitempty"` // halalas
	Method           payment.Method `json:"method,omitempty"`
	FailureMessage   string         `json:"failure_message,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// PaymentResult is the outcome of one SubmitPayment call
type PaymentResult struct {
	State          State            `json:"state"`
	Succeeded      bool             `json:"succeeded"`
	PaymentSession *payment.Session `json:"payment_session,omitempty"`
	FailureMessage string           `json:"failure_message,omitempty"`
}

// Service drives the checkout state machine. The two gateway calls are
// strictly sequential: ProcessPayment is never issued before InitiatePayment
// has returned a session.
type Service struct {
	redisClient *redis.Client
	cartService *cart.Service
	gateway     payment.Gateway
	config      *config.Config
	logger      *logrus.Logger
}

// NewService creates a new checkout service
func NewService(redisClient *redis.Client, cartService *cart.Service, gateway payment.Gateway, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		redisClient: redisClient,
		cartService: cartService,
		gateway:     gateway,
		config:      cfg,
		logger:      logger,
	}
}

// GetState returns the checkout state for a session. A session that has
// never checked out starts at method_selection.
func (s *Service) GetState(ctx context.Context, sessionID string) (*Checkout, error) {
	return s.loadState(ctx, sessionID)
}

// SubmitPayment runs one checkout attempt: validates the cart, claims the
// processing slot, initiates a payment session, then resolves the payment.
// Failure is non-terminal and returns the flow to method_selection.
func (s *Service) SubmitPayment(ctx context.Context, sessionID string, method payment.Method) (*PaymentResult, error) {
	if !method.Valid() {
		return nil, payment.ErrInvalidMethod
	}

	cartResponse, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartResponse.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Snapshot prices may be stale; revalidate against the live catalog
	// before taking money
	mismatches, refreshed, err := s.cartService.ValidateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(mismatches) > 0 {
		return nil, &PriceChangedError{Mismatches: mismatches}
	}

	amount := refreshed.Totals.Total
	attemptID := uuid.New().String()

	// At most one in-flight payment session per checkout: the transition to
	// processing is claimed under WATCH before any gateway call, so of two
	// concurrent attempts on one session only one reaches the gateway.
	state, err := s.claimProcessing(ctx, sessionID, attemptID, amount, method)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.InitiatePayment(ctx, &payment.InitiateRequest{
		Amount:         amount,
		Method:         method,
		IdempotencyKey: attemptID,
	})
	if err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("Payment initiation failed")
		s.restoreMethodSelection(ctx, sessionID, "Payment could not be started. Please try again.")
		return nil, fmt.Errorf("payment initiation failed: %w", err)
	}

	// The processing slot is held by this attempt, plain save is safe here
	state.PaymentSessionID = session.SessionID
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	approved, err := s.gateway.ProcessPayment(ctx, session.SessionID)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"session_id":         sessionID,
			"payment_session_id": session.SessionID,
		}).Error("Payment processing failed")
		return s.failAttempt(ctx, sessionID, "Payment failed. Please try again."), nil
	}
	if !approved {
		s.logger.WithFields(logrus.Fields{
			"session_id":         sessionID,
			"payment_session_id": session.SessionID,
			"amount":             amount,
		}).Warn("Payment declined by gateway")
		return s.failAttempt(ctx, sessionID, "Payment failed. Please try again."), nil
	}

	state.State = StateSuccess
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	if err := s.cartService.ClearCart(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Warn("Failed to clear cart after successful payment")
	}

	finalSession, err := s.gateway.GetSession(ctx, session.SessionID)
	if err != nil {
		finalSession = session
	}

	return &PaymentResult{
		State:          StateSuccess,
		Succeeded:      true,
		PaymentSession: finalSession,
	}, nil
}

// failAttempt returns the flow to method_selection with a retryable message
func (s *Service) failAttempt(ctx context.Context, sessionID, message string) *PaymentResult {
	s.restoreMethodSelection(ctx, sessionID, message)
	return &PaymentResult{
		State:          StateMethodSelection,
		Succeeded:      false,
		FailureMessage: message,
	}
}

// restoreMethodSelection writes the retryable state even when the caller's
// request was abandoned mid-flight, so the checkout is never stuck in
// processing.
func (s *Service) restoreMethodSelection(ctx context.Context, sessionID, message string) {
	state := &Checkout{
		SessionID:      sessionID,
		State:          StateMethodSelection,
		FailureMessage: message,
	}
	if err := s.saveState(context.WithoutCancel(ctx), state); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).Error("Failed to restore checkout state")
	}
}

// claimProcessing transitions the checkout to processing under optimistic
// concurrency control. A session already in processing, or one that wins the
// slot while this attempt retries, is rejected with ErrPaymentInFlight.
func (s *Service) claimProcessing(ctx context.Context, sessionID, attemptID string, amount int64, method payment.Method) (*Checkout, error) {
	key := checkoutKey(sessionID)
	var claimed *Checkout

	txf := func(tx *redis.Tx) error {
		state, err := s.loadStateFrom(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if state.State == StateProcessing {
			return ErrPaymentInFlight
		}

		state.State = StateProcessing
		state.AttemptID = attemptID
		state.PaymentSessionID = ""
		state.Amount = amount
		state.Method = method
		state.FailureMessage = ""
		state.UpdatedAt = time.Now().UTC()

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to serialize checkout state: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.config.Cart.SessionTTL)
			return nil
		})
		if err != nil {
			return err
		}

		claimed = state
		return nil
	}

	retries := s.config.Cart.UpdateRetries
	if retries < 1 {
		retries = 1
	}
	for i := 0; i < retries; i++ {
		err := s.redisClient.Watch(ctx, txf, key)
		if err == nil {
			return claimed, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue // another attempt raced in, re-check its state
		}
		return nil, err
	}

	s.logger.WithField("session_id", sessionID).Warn("Checkout claim exhausted retries")
	return nil, ErrPaymentInFlight
}

func (s *Service) loadState(ctx context.Context, sessionID string) (*Checkout, error) {
	return s.loadStateFrom(ctx, s.redisClient, sessionID)
}

// redisGetter covers both *redis.Client and *redis.Tx
type redisGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (s *Service) loadStateFrom(ctx context.Context, client redisGetter, sessionID string) (*Checkout, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for checkout")
	}

	data, err := client.Get(ctx, checkoutKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return &Checkout{
			SessionID: sessionID,
			State:     StateMethodSelection,
			UpdatedAt: time.Now().UTC(),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout state: %w", err)
	}

	var state Checkout
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to parse checkout state: %w", err)
	}
	return &state, nil
}

func (s *Service) saveState(ctx context.Context, state *Checkout) error {
	state.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize checkout state: %w", err)
	}
	return s.redisClient.Set(ctx, checkoutKey(state.SessionID), data, s.config.Cart.SessionTTL).Err()
}

func checkoutKey(sessionID string) string {
	return fmt.Sprintf("checkout:session:%s", sessionID)
}
