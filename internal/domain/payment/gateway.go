// internal/domain/payment/gateway.go
package payment

import (
	"context"
	"errors"
	"time"
)

// Method is a supported payment method
type Method string

const (
	MethodMada     Method = "mada"
	MethodApplePay Method = "apple_pay"
	MethodCard     Method = "card"
)

// Valid reports whether the method is one the gateway accepts
func (m Method) Valid() bool {
	switch m {
	case MethodMada, MethodApplePay, MethodCard:
		return true
	}
	return false
}

// Status is the lifecycle state of a payment session. A session is terminal
// once its status leaves pending.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Session is a short-lived handle representing one checkout attempt,
// owned by the gateway. Callers hold it read-only to check status.
type Session struct {
	SessionID      string    `json:"session_id"`
	Status         Status    `json:"status"`
	Amount         int64     `json:"amount"` // halalas, > 0
	Currency       string    `json:"currency"`
	Method         Method    `json:"method"`
	IdempotencyKey string    `json:"idempotency_key,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InitiateRequest represents a payment initiation call
type InitiateRequest struct {
	Amount         int64  `json:"amount"`
	Method         Method `json:"method"`
	IdempotencyKey string `json:"idempotency_key"`
}

var (
	ErrInvalidAmount   = errors.New("payment amount must be positive")
	ErrInvalidMethod   = errors.New("unsupported payment method")
	ErrSessionNotFound = errors.New("payment session not found")
)

// Gateway is the external payment collaborator contract
type Gateway interface {
	// InitiatePayment opens a session in pending status. Calls repeated with
	// the same idempotency key return the already-open session.
	InitiatePayment(ctx context.Context, req *InitiateRequest) (*Session, error)

	// ProcessPayment resolves a pending session to its terminal outcome.
	// Re-processing a terminal session returns its recorded outcome.
	ProcessPayment(ctx context.Context, sessionID string) (bool, error)

	// GetSession returns a read-only view of a session
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}
