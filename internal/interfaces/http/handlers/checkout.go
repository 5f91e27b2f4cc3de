// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/amrhamedpage/shams-web-platform/internal/config"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/cart"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/checkout"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/payment"
	"github.com/amrhamedpage/shams-web-platform/internal/domain/product"
	"github.com/amrhamedpage/shams-web-platform/internal/interfaces/http/middleware"
	"github.com/amrhamedpage/shams-web-platform/internal/pkg/money"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, redisClient *redis.Client, gateway payment.Gateway, cfg *config.Config, logger *logrus.Logger) *CheckoutHandler {
	productService := product.NewService(db, cfg, logger)
	cartService := cart.NewService(redisClient, productService, cfg, logger)
	return &CheckoutHandler{
		checkoutService: checkout.NewService(redisClient, cartService, gateway, cfg, logger),
		config:          cfg,
	}
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	state, err := h.checkoutService.GetState(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve checkout state",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout state retrieved successfully",
		"data":    state,
	})
}

// SubmitPaymentRequest represents the pay request body
type SubmitPaymentRequest struct {
	Method payment.Method `json:"method" binding:"required"`
}

// SubmitPayment handles POST /checkout/pay
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)

	var req SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.checkoutService.SubmitPayment(c.Request.Context(), sessionID, req.Method)
	if err != nil {
		h.renderCheckoutError(c, err)
		return
	}

	if !result.Succeeded {
		// Retryable: the flow is back at method selection
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": result.FailureMessage,
			"data":  result,
		})
		return
	}

	response := gin.H{
		"message": "Payment completed successfully",
		"data":    result,
	}
	if result.PaymentSession != nil {
		response["amount_display"] = money.FormatSAR(result.PaymentSession.Amount)
	}
	c.JSON(http.StatusOK, response)
}

func (h *CheckoutHandler) renderCheckoutError(c *gin.Context, err error) {
	var priceChanged *checkout.PriceChangedError

	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart is empty",
		})
	case errors.Is(err, checkout.ErrPaymentInFlight):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, payment.ErrInvalidMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unsupported payment method",
		})
	case errors.As(err, &priceChanged):
		c.JSON(http.StatusConflict, gin.H{
			"error":            priceChanged.Error(),
			"price_mismatches": priceChanged.Mismatches,
		})
	default:
		// Gateway or storage failure: retryable from method selection
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Payment could not be started. Please try again.",
			"retryable": true,
		})
	}
}
