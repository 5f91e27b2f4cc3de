// internal/domain/erp/service.go

// Package erp handles the read-only synchronization with the Solver ERP
// backend for live stock levels. The current implementation simulates the
// ERP; swapping in a real API client only changes this package.
package erp

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/sirupsen/logrus"
)

// StockStatus is the ERP's view of a product's availability
type StockStatus struct {
	ProductID         string    `json:"product_id"`
	InStock           bool      `json:"in_stock"`
	Quantity          int       `json:"quantity"`
	LastSync          time.Time `json:"last_sync"`
	WarehouseLocation string    `json:"warehouse_location,omitempty"`
}

// Service queries the ERP. It owns no state of its own.
type Service struct {
	config  *config.Config
	logger  *logrus.Logger
	randInt func(n int) int
}

// NewService creates a new ERP sync service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config:  cfg,
		logger:  logger,
		randInt: rand.Intn,
	}
}

// GetLiveStock fetches the current stock level for a product. The simulated
// ERP answers after the configured latency with a quantity in [1, max].
func (s *Service) GetLiveStock(ctx context.Context, productID string) (*StockStatus, error) {
	if productID == "" {
		return nil, fmt.Errorf("product ID required for stock sync")
	}

	if err := wait(ctx, s.config.ERP.SyncLatency); err != nil {
		return nil, err
	}

	maxQuantity := s.config.ERP.MaxMockQuantity
	if maxQuantity < 1 {
		maxQuantity = 1
	}
	quantity := s.randInt(maxQuantity) + 1

	status := &StockStatus{
		ProductID:         productID,
		InStock:           true,
		Quantity:          quantity,
		LastSync:          time.Now().UTC(),
		WarehouseLocation: s.config.ERP.WarehouseLocation,
	}

	s.logger.WithFields(logrus.Fields{
		"product_id": productID,
		"quantity":   quantity,
	}).Debug("ERP stock sync completed")

	return status, nil
}

// wait sleeps for the simulated ERP round trip, honoring cancellation
func wait(ctx context.Context, d time.Duration) error {
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
