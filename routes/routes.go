package routes

import (
	"gran-estacion/controllers"
	"gran-estacion/middleware"
	"gran-estacion/repositories"
	"gran-estacion/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, menuRepo *repositories.MenuRepository, cartSvc *services.CartService, orderSvc *services.OrderService) {
	menuCtrl := controllers.NewMenuController(menuRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(cartSvc, orderSvc)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/categories", menuCtrl.GetCategories)
	router.GET("/menu/products/:id", menuCtrl.GetProductByID)
	router.GET("/config", menuCtrl.GetConfig)

	session := router.Group("/")
	session.Use(middleware.SessionMiddleware())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.GET("/checkout/summary", orderCtrl.GetSummary)

		// Display mode (QR table codes) is read-only: no cart or checkout writes.
		ordering := session.Group("/")
		ordering.Use(middleware.ViewModeGuard())
		{
			ordering.POST("/cart/items", cartCtrl.AddItem)
			ordering.PATCH("/cart/items/:id", cartCtrl.UpdateItemQuantity)
			ordering.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
			ordering.DELETE("/cart", cartCtrl.ClearCart)
			ordering.POST("/checkout", orderCtrl.Checkout)
		}
	}
}
