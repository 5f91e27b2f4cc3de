// internal/interfaces/http/handlers/sync.go
package handlers

import (
	"net/http"
	"sync"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/delivery"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/erp"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SyncHandler handles the read-only product detail sync endpoints (ERP
// stock and delivery estimation)
type SyncHandler struct {
	erpService      *erp.Service
	deliveryService *delivery.Service
	config          *config.Config
	logger          *logrus.Logger
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(cfg *config.Config, logger *logrus.Logger) *SyncHandler {
	return &SyncHandler{
		erpService:      erp.NewService(cfg, logger),
		deliveryService: delivery.NewService(cfg, logger),
		config:          cfg,
		logger:          logger,
	}
}

// GetLiveStock handles GET /products/:id/stock
func (h *SyncHandler) GetLiveStock(c *gin.Context) {
	productID := c.Param("id")

	status, err := h.erpService.GetLiveStock(c.Request.Context(), productID)
	if err != nil {
		h.logger.WithError(err).WithField("product_id", productID).Error("ERP stock sync failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "ERP sync failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock retrieved successfully",
		"data":    status,
	})
}

// GetDeliveryEstimate handles GET /products/:id/delivery-estimate
func (h *SyncHandler) GetDeliveryEstimate(c *gin.Context) {
	productID := c.Param("id")

	estimate, err := h.deliveryService.GetEstimate(c.Request.Context(), productID)
	if err != nil {
		h.logger.WithError(err).WithField("product_id", productID).Error("Delivery sync failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Delivery sync failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Delivery estimate retrieved successfully",
		"data":    estimate,
	})
}

// GetProductSync handles GET /products/:id/sync. Both adapters are queried
// concurrently; a failing section degrades to an explicit flag instead of
// failing the whole response.
func (h *SyncHandler) GetProductSync(c *gin.Context) {
	productID := c.Param("id")
	ctx := c.Request.Context()

	var (
		wg          sync.WaitGroup
		stock       *erp.StockStatus
		stockErr    error
		estimate    *delivery.Estimate
		estimateErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		stock, stockErr = h.erpService.GetLiveStock(ctx, productID)
	}()
	go func() {
		defer wg.Done()
		estimate, estimateErr = h.deliveryService.GetEstimate(ctx, productID)
	}()
	wg.Wait()

	if stockErr != nil {
		h.logger.WithError(stockErr).WithField("product_id", productID).Error("ERP stock sync failed")
	}
	if estimateErr != nil {
		h.logger.WithError(estimateErr).WithField("product_id", productID).Error("Delivery sync failed")
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product sync completed",
		"data": gin.H{
			"stock":                stock,
			"stock_sync_failed":    stockErr != nil,
			"delivery":             estimate,
			"delivery_sync_failed": estimateErr != nil,
		},
	})
}
