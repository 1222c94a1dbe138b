package controllers

import (
	"strconv"
	"strings"

	"gran-estacion/config"
	"gran-estacion/middleware"
	"gran-estacion/models"
	"gran-estacion/services"

	"github.com/gin-gonic/gin"
)

// OrderController owns the checkout flow. The order composer itself does no
// validation, so every precondition — non-empty cart, selected zone and
// payment, trimmed customer fields — is enforced here before submit.
type OrderController struct {
	cart  *services.CartService
	order *services.OrderService
}

func NewOrderController(cart *services.CartService, order *services.OrderService) *OrderController {
	return &OrderController{cart: cart, order: order}
}

// @Summary Get checkout summary
// @Description Price the cart against a candidate delivery zone
// @Tags Checkout
// @Produce json
// @Param zone_id query int true "Delivery zone ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/summary [get]
func (ctrl *OrderController) GetSummary(c *gin.Context) {
	zoneID, err := strconv.Atoi(c.Query("zone_id"))
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "zone_id is required"})
		return
	}

	zone, ok := config.AppConfig.FindZone(zoneID)
	if !ok {
		c.JSON(400, gin.H{"success": false, "message": "Unknown delivery zone"})
		return
	}

	items := ctrl.cart.Get(c.Request.Context(), middleware.SessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Summary calculated", "data": ctrl.order.Summary(items, zone)})
}

// @Summary Submit checkout
// @Description Compose the order message and return the WhatsApp hand-off link; the cart is cleared
// @Tags Checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout fields"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Notes = strings.TrimSpace(req.Notes)
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)

	sessionID := middleware.SessionID(c)
	items := ctrl.cart.Get(c.Request.Context(), sessionID)
	if len(items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Tu carrito está vacío"})
		return
	}

	if req.Name == "" || req.Phone == "" || req.Address == "" || req.PaymentMethod == "" {
		c.JSON(400, gin.H{"success": false, "message": "Completa todos los campos"})
		return
	}

	zone, ok := config.AppConfig.FindZone(req.ZoneID)
	if !ok {
		c.JSON(400, gin.H{"success": false, "message": "Completa todos los campos"})
		return
	}

	handoff := ctrl.order.Submit(c.Request.Context(), sessionID, items, req, zone)
	c.JSON(200, gin.H{"success": true, "message": "¡Pedido enviado! 🎉", "data": handoff})
}
