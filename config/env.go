package config

import (
	"encoding/json"
	"log"
	"os"

	"gran-estacion/models"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	RestaurantName string
	WhatsAppNumber string
	CurrencySymbol string
	MenuFile       string
	CartDir        string
	DeliveryZones  []models.DeliveryZone
}

var AppConfig *Config

// defaultZones is the zone table shipped with the restaurant; DELIVERY_ZONES
// replaces it wholesale when set.
var defaultZones = []models.DeliveryZone{
	{ID: 1, Name: "Zona Centro", Cost: 5000},
	{ID: 2, Name: "Zona Norte", Cost: 7000},
	{ID: 3, Name: "Zona Sur", Cost: 4000},
}

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "8080")),
		RestaurantName: getEnv("RESTAURANT_NAME", "Gran Estacion Cafe & Parilla"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "573046468673"),
		CurrencySymbol: getEnv("CURRENCY_SYMBOL", "$"),
		MenuFile:       getEnv("MENU_FILE", "./data/menu.json"),
		CartDir:        getEnv("CART_DIR", "./data/carts"),
		DeliveryZones:  loadZones(),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func loadZones() []models.DeliveryZone {
	raw := os.Getenv("DELIVERY_ZONES")
	if raw == "" {
		return defaultZones
	}

	var zones []models.DeliveryZone
	if err := json.Unmarshal([]byte(raw), &zones); err != nil || len(zones) == 0 {
		log.Println("Warning: invalid DELIVERY_ZONES, falling back to defaults")
		return defaultZones
	}
	return zones
}

// FindZone returns the configured delivery zone with the given id.
func (c *Config) FindZone(id int) (models.DeliveryZone, bool) {
	for _, zone := range c.DeliveryZones {
		if zone.ID == id {
			return zone, true
		}
	}
	return models.DeliveryZone{}, false
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
