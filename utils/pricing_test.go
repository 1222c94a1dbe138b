package utils

import (
	"testing"

	"gran-estacion/models"

	"github.com/stretchr/testify/assert"
)

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "burger", Name: "Burger", Price: 15000, Quantity: 2},
		{ProductID: "jugo", Name: "Jugo", Price: 8000, Quantity: 1},
	}

	assert.Equal(t, 38000, Subtotal(items))
	assert.Equal(t, 3, ItemCount(items))
}

func TestSubtotalEmptyCart(t *testing.T) {
	assert.Equal(t, 0, Subtotal(nil))
	assert.Equal(t, 0, ItemCount(nil))
}

func TestSubtotalOrderIndependent(t *testing.T) {
	a := []models.CartItem{
		{ProductID: "p1", Price: 15000, Quantity: 2},
		{ProductID: "p2", Price: 9000, Quantity: 3},
		{ProductID: "p3", Price: 5000, Quantity: 1},
	}
	b := []models.CartItem{a[2], a[0], a[1]}

	assert.Equal(t, Subtotal(a), Subtotal(b))
	assert.Equal(t, ItemCount(a), ItemCount(b))
}

func TestTotal(t *testing.T) {
	items := []models.CartItem{{ProductID: "burger", Price: 15000, Quantity: 2}}
	zone := models.DeliveryZone{ID: 1, Name: "Zona Centro", Cost: 5000}

	assert.Equal(t, 5000, DeliveryCost(zone))
	assert.Equal(t, 35000, Total(items, zone))
	assert.Equal(t, 0, Total(nil, models.DeliveryZone{}))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "15.000", FormatPrice(15000))
	assert.Equal(t, "1.500.000", FormatPrice(1500000))
	assert.Equal(t, "0", FormatPrice(0))
}
