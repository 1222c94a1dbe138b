package services

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"gran-estacion/config"
	"gran-estacion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		RestaurantName: "Gran Estacion Cafe & Parilla",
		WhatsAppNumber: "573046468673",
		CurrencySymbol: "$",
		DeliveryZones: []models.DeliveryZone{
			{ID: 1, Name: "Zona Centro", Cost: 5000},
		},
	}
}

func burgerCart() []models.CartItem {
	return []models.CartItem{
		{ProductID: "burger", Name: "Burger", Price: 15000, Quantity: 2},
	}
}

func TestSummary(t *testing.T) {
	svc := NewOrderService(testConfig(), nil)
	zone := models.DeliveryZone{ID: 1, Name: "Zona Centro", Cost: 5000}

	summary := svc.Summary(burgerCart(), zone)

	require.Len(t, summary.Lines, 1)
	assert.Equal(t, "Burger", summary.Lines[0].Name)
	assert.Equal(t, 2, summary.Lines[0].Quantity)
	assert.Equal(t, 30000, summary.Lines[0].LineTotal)
	assert.Equal(t, 30000, summary.Subtotal)
	assert.Equal(t, 5000, summary.Delivery)
	assert.Equal(t, 35000, summary.Total)
}

func TestComposeMessage(t *testing.T) {
	svc := NewOrderService(testConfig(), nil)
	zone := models.DeliveryZone{ID: 1, Name: "Zona Centro", Cost: 5000}
	req := models.CheckoutRequest{
		Name:          "Ana Pérez",
		Phone:         "3001234567",
		Address:       "Calle 10 # 5-23",
		PaymentMethod: "Efectivo",
	}

	msg := svc.ComposeMessage(burgerCart(), req, zone)

	assert.True(t, strings.HasPrefix(msg, "🔥 *NUEVO PEDIDO — Gran Estacion Cafe & Parilla*"))
	assert.Contains(t, msg, "👤 *Cliente:* Ana Pérez")
	assert.Contains(t, msg, "📱 *Teléfono:* 3001234567")
	assert.Contains(t, msg, "📍 *Dirección:* Calle 10 # 5-23")
	assert.Contains(t, msg, "🚚 *Zona:* Zona Centro (+$")
	assert.Contains(t, msg, "💳 *Pago:* Efectivo")
	assert.Contains(t, msg, "• Burger × 2 — $30.000")
	assert.Contains(t, msg, "💰 *Subtotal:* $30.000")
	assert.Contains(t, msg, "✅ *TOTAL:* $35.000")
	assert.True(t, strings.HasSuffix(msg, "¡Gracias por tu pedido! 🙌"))
	assert.NotContains(t, msg, "*Nota:*")
}

func TestComposeMessageWithNotes(t *testing.T) {
	svc := NewOrderService(testConfig(), nil)
	zone := models.DeliveryZone{ID: 1, Name: "Zona Centro", Cost: 5000}
	req := models.CheckoutRequest{
		Name:          "Ana",
		Phone:         "300",
		Address:       "Calle 10",
		Notes:         "Sin cebolla",
		PaymentMethod: "Transferencia",
	}

	msg := svc.ComposeMessage(burgerCart(), req, zone)
	assert.Contains(t, msg, "📝 *Nota:* Sin cebolla")
}

func TestComposeMessageItemsInCartOrder(t *testing.T) {
	svc := NewOrderService(testConfig(), nil)
	zone := models.DeliveryZone{ID: 1, Name: "Zona Centro", Cost: 5000}
	items := []models.CartItem{
		{ProductID: "b", Name: "Segundo", Price: 1000, Quantity: 1},
		{ProductID: "a", Name: "Primero", Price: 1000, Quantity: 1},
	}

	msg := svc.ComposeMessage(items, models.CheckoutRequest{}, zone)
	assert.Less(t, strings.Index(msg, "Segundo"), strings.Index(msg, "Primero"))
}

func TestWhatsAppLink(t *testing.T) {
	svc := NewOrderService(testConfig(), nil)

	link := svc.WhatsAppLink("hola mundo")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/573046468673?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hola mundo", parsed.Query().Get("text"))
}

func TestSubmitClearsCart(t *testing.T) {
	cart := newTestCartService(t)
	svc := NewOrderService(testConfig(), cart)
	ctx := context.Background()

	_, err := cart.Add(ctx, "s1", "burger")
	require.NoError(t, err)
	items := cart.Get(ctx, "s1")
	require.NotEmpty(t, items)

	zone := models.DeliveryZone{ID: 1, Name: "Zona Centro", Cost: 5000}
	req := models.CheckoutRequest{Name: "Ana", Phone: "300", Address: "Calle 10", PaymentMethod: "Efectivo"}

	handoff := svc.Submit(ctx, "s1", items, req, zone)

	assert.NotEmpty(t, handoff.Message)
	assert.Contains(t, handoff.WhatsAppURL, "wa.me/573046468673")
	assert.Equal(t, 20000, handoff.Summary.Total)
	assert.Empty(t, cart.Get(ctx, "s1"))
}
