package controllers

import (
	"errors"

	"gran-estacion/middleware"
	"gran-estacion/models"
	"gran-estacion/services"
	"gran-estacion/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

func cartPayload(items []models.CartItem) gin.H {
	return gin.H{
		"items":      items,
		"subtotal":   utils.Subtotal(items),
		"item_count": utils.ItemCount(items),
	}
}

// @Summary Get cart
// @Description Get the session's cart with subtotal and item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	items := ctrl.cart.Get(c.Request.Context(), middleware.SessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(items)})
}

// @Summary Add product to cart
// @Description Add one unit of a product; repeat adds increment quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object true "Product to add" SchemaExample({"product_id": "burger-clasica"})
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(400, gin.H{"success": false, "message": "product_id is required"})
		return
	}

	items, err := ctrl.cart.Add(c.Request.Context(), middleware.SessionID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Product not found"})
			return
		}
		if errors.Is(err, services.ErrProductOutOfStock) {
			c.JSON(400, gin.H{"success": false, "message": "Este producto está agotado"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to add product"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product added", "data": cartPayload(items)})
}

// @Summary Change item quantity
// @Description Apply a signed delta to an item's quantity; 0 or below removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body object true "Quantity delta" SchemaExample({"delta": -1})
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItemQuantity(c *gin.Context) {
	var req struct {
		Delta *int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Delta == nil {
		c.JSON(400, gin.H{"success": false, "message": "delta is required"})
		return
	}

	items := ctrl.cart.ChangeQuantity(c.Request.Context(), middleware.SessionID(c), c.Param("id"), *req.Delta)
	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(items)})
}

// @Summary Remove item
// @Description Delete an item from the cart; removing an absent item is a no-op
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	items := ctrl.cart.Remove(c.Request.Context(), middleware.SessionID(c), c.Param("id"))
	c.JSON(200, gin.H{"success": true, "message": "Producto eliminado", "data": cartPayload(items)})
}

// @Summary Clear cart
// @Description Empty the session's cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	ctrl.cart.Clear(c.Request.Context(), middleware.SessionID(c))
	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload([]models.CartItem{})})
}
