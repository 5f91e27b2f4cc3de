// internal/domain/payment/simulated.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SessionStore persists payment sessions as JSON documents. The Redis
// infrastructure client satisfies it.
type SessionStore interface {
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
}

// SimulatedGateway is a stand-in for a real provider (Moyasar, Stripe).
// Latency and success rate come from configuration; sessions live in the
// store for the configured TTL.
type SimulatedGateway struct {
	store     SessionStore
	config    *config.Config
	logger    *logrus.Logger
	randFloat func() float64
}

// NewSimulatedGateway creates the simulated gateway
func NewSimulatedGateway(store SessionStore, cfg *config.Config, logger *logrus.Logger) *SimulatedGateway {
	return &SimulatedGateway{
		store:     store,
		config:    cfg,
		logger:    logger,
		randFloat: rand.Float64,
	}
}

// InitiatePayment opens a pending session after the simulated provider latency
func (g *SimulatedGateway) InitiatePayment(ctx context.Context, req *InitiateRequest) (*Session, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !req.Method.Valid() {
		return nil, ErrInvalidMethod
	}

	if req.IdempotencyKey != "" {
		if session, err := g.sessionByIdempotencyKey(ctx, req.IdempotencyKey); err == nil {
			g.logger.WithFields(logrus.Fields{
				"session_id":      session.SessionID,
				"idempotency_key": req.IdempotencyKey,
			}).Info("Duplicate payment initiation deduplicated")
			return session, nil
		}
	}

	if err := g.wait(ctx, g.config.Gateway.InitiateLatency); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &Session{
		SessionID:      fmt.Sprintf("pay_%s", uuid.New().String()),
		Status:         StatusPending,
		Amount:         req.Amount,
		Currency:       g.config.Gateway.Currency,
		Method:         req.Method,
		IdempotencyKey: req.IdempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := g.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != "" {
		err := g.store.SetJSON(ctx, idempotencyKeyKey(req.IdempotencyKey),
			session.SessionID, g.config.Gateway.SessionTTL)
		if err != nil {
			g.logger.WithError(err).Warn("Failed to record payment idempotency key")
		}
	}

	return session, nil
}

// ProcessPayment resolves a pending session. Outcome is drawn from the
// configured success rate.
func (g *SimulatedGateway) ProcessPayment(ctx context.Context, sessionID string) (bool, error) {
	session, err := g.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}

	// Terminal sessions keep their recorded outcome
	switch session.Status {
	case StatusSuccess:
		return true, nil
	case StatusFailed:
		return false, nil
	}

	if err := g.wait(ctx, g.config.Gateway.ProcessLatency); err != nil {
		return false, err
	}

	approved := g.randFloat() < g.config.Gateway.SuccessRate
	if approved {
		session.Status = StatusSuccess
	} else {
		session.Status = StatusFailed
	}
	session.UpdatedAt = time.Now().UTC()

	if err := g.saveSession(ctx, session); err != nil {
		return false, err
	}

	g.logger.WithFields(logrus.Fields{
		"session_id": session.SessionID,
		"status":     session.Status,
		"amount":     session.Amount,
	}).Info("Payment session resolved")

	return approved, nil
}

// GetSession returns the stored session
func (g *SimulatedGateway) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	err := g.store.GetJSON(ctx, sessionKey(sessionID), &session)
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment session: %w", err)
	}
	return &session, nil
}

func (g *SimulatedGateway) sessionByIdempotencyKey(ctx context.Context, key string) (*Session, error) {
	var sessionID string
	if err := g.store.GetJSON(ctx, idempotencyKeyKey(key), &sessionID); err != nil {
		return nil, err
	}
	return g.GetSession(ctx, sessionID)
}

func (g *SimulatedGateway) saveSession(ctx context.Context, session *Session) error {
	return g.store.SetJSON(ctx, sessionKey(session.SessionID), session, g.config.Gateway.SessionTTL)
}

// wait simulates provider latency without outliving the caller's request
func (g *SimulatedGateway) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("payment:session:%s", sessionID)
}

func idempotencyKeyKey(key string) string {
	return fmt.Sprintf("payment:idem:%s", key)
}
