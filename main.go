package main

import (
	"log"

	"gran-estacion/config"
	_ "gran-estacion/docs"
	"gran-estacion/middleware"
	"gran-estacion/models"
	"gran-estacion/repositories"
	"gran-estacion/routes"
	"gran-estacion/services"
	"gran-estacion/utils"

	"github.com/gin-gonic/gin"
)

// @title Gran Estacion API
// @version 1.0
// @description Menu, cart and WhatsApp checkout API for the Gran Estacion ordering page.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitRedis()
	defer config.CloseRedis()

	menuRepo := repositories.NewMenuRepository()
	if err := menuRepo.Load(config.AppConfig.MenuFile); err != nil {
		// A broken menu document is terminal for the catalog but not for the
		// process: the API keeps serving empty views.
		log.Printf("Warning: menu load failed, serving empty catalog: %v", err)
	} else {
		log.Printf("Menu loaded: %d categories", len(menuRepo.Categories()))
	}

	cartRepo := repositories.NewCartRepository(config.RedisClient, config.AppConfig.CartDir)
	cartSvc := services.NewCartService(menuRepo, cartRepo)
	cartSvc.Subscribe(func(sessionID string, items []models.CartItem) {
		log.Printf("Cart updated: session=%s items=%d subtotal=%d", sessionID, utils.ItemCount(items), utils.Subtotal(items))
	})

	orderSvc := services.NewOrderService(config.AppConfig, cartSvc)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, menuRepo, cartSvc, orderSvc)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
