// internal/domain/delivery/service.go

// Package delivery handles communication with the Reboost logistics API for
// delivery scheduling and ETA calculation. The estimate itself is a pure
// function of the local wall-clock hour.
package delivery

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/sirupsen/logrus"
)

// Estimate is a delivery promise for a product
type Estimate struct {
	EstimatedMinutes int       `json:"estimated_minutes"`
	DeliveryDate     time.Time `json:"delivery_date"`
	IsExpress        bool      `json:"is_express"`
	ServiceType      string    `json:"service_type"`
}

// Service computes delivery estimates. Clock and rng are injectable so the
// time-of-day business rule is testable at a fixed hour.
type Service struct {
	config  *config.Config
	logger  *logrus.Logger
	now     func() time.Time
	randInt func(n int) int
}

// NewService creates a new delivery estimation service
func NewService(cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		config:  cfg,
		logger:  logger,
		now:     time.Now,
		randInt: rand.Intn,
	}
}

// GetEstimate returns the delivery promise for a product. Within the express
// window (local hour inside [open, close]) the order ships express in 30-59
// minutes; otherwise it rolls to next-day delivery.
func (s *Service) GetEstimate(ctx context.Context, productID string) (*Estimate, error) {
	if productID == "" {
		return nil, fmt.Errorf("product ID required for delivery estimate")
	}

	if err := wait(ctx, s.config.Delivery.EstimateLatency); err != nil {
		return nil, err
	}

	now := s.now()
	hour := now.Hour()
	isBusinessHours := hour >= s.config.Delivery.ExpressOpenHour && hour <= s.config.Delivery.ExpressCloseHour

	estimate := &Estimate{IsExpress: isBusinessHours}
	if isBusinessHours {
		estimate.EstimatedMinutes = s.randInt(30) + 30
		estimate.DeliveryDate = now.Add(60 * time.Minute)
		estimate.ServiceType = "Reboost Express"
	} else {
		estimate.EstimatedMinutes = s.config.Delivery.NextDayMinutes
		estimate.DeliveryDate = now.Add(time.Duration(s.config.Delivery.NextDayMinutes) * time.Minute)
		estimate.ServiceType = "Standard Delivery"
	}

	s.logger.WithFields(logrus.Fields{
		"product_id":        productID,
		"estimated_minutes": estimate.EstimatedMinutes,
		"is_express":        estimate.IsExpress,
	}).Debug("Delivery estimate computed")

	return estimate, nil
}

// wait sleeps for the simulated logistics round trip, honoring cancellation
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
