package utils

import "gran-estacion/models"

// Subtotal sums price × quantity over the cart in the smallest currency unit.
// Money never touches floating point.
func Subtotal(items []models.CartItem) int {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}
	return subtotal
}

// ItemCount is the sum of quantities across the cart.
func ItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func DeliveryCost(zone models.DeliveryZone) int {
	return zone.Cost
}

func Total(items []models.CartItem, zone models.DeliveryZone) int {
	return Subtotal(items) + DeliveryCost(zone)
}
