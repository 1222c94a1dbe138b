package controllers

import (
	"gran-estacion/config"
	"gran-estacion/middleware"
	"gran-estacion/repositories"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	menu *repositories.MenuRepository
}

func NewMenuController(menu *repositories.MenuRepository) *MenuController {
	return &MenuController{menu: menu}
}

// @Summary Get full menu
// @Description Get all categories with their products, in menu order
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu [get]
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Menu retrieved", "data": ctrl.menu.Categories()})
}

// @Summary Get category summaries
// @Description Get categories with product counts, without product details
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /menu/categories [get]
func (ctrl *MenuController) GetCategories(c *gin.Context) {
	categories := []gin.H{}
	for _, cat := range ctrl.menu.Categories() {
		categories = append(categories, gin.H{
			"id":            cat.ID,
			"name":          cat.Name,
			"icon":          cat.Icon,
			"product_count": len(cat.Products),
		})
	}
	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get product by ID
// @Description Look up a single product anywhere in the catalog
// @Tags Menu
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menu/products/{id} [get]
func (ctrl *MenuController) GetProductByID(c *gin.Context) {
	product, ok := ctrl.menu.FindProductByID(c.Param("id"))
	if !ok {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}

// @Summary Get client configuration
// @Description Static configuration plus the read-only display mode flag for this request
// @Tags Config
// @Produce json
// @Param mesa query string false "Table number (enables display mode)"
// @Param modo query string false "Set to 'vista' for display mode"
// @Success 200 {object} models.Response
// @Router /config [get]
func (ctrl *MenuController) GetConfig(c *gin.Context) {
	cfg := config.AppConfig
	c.JSON(200, gin.H{
		"success": true,
		"message": "Configuration retrieved",
		"data": gin.H{
			"restaurant_name": cfg.RestaurantName,
			"currency_symbol": cfg.CurrencySymbol,
			"delivery_zones":  cfg.DeliveryZones,
			"view_mode":       middleware.IsViewMode(c),
			"mesa":            c.Query("mesa"),
		},
	})
}
