package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"gran-estacion/config"
	"gran-estacion/models"
	"gran-estacion/utils"
)

// OrderService turns a cart plus checkout fields into the WhatsApp hand-off.
// It performs no validation; the checkout flow guarantees a non-empty cart,
// a selected zone and payment method, and trimmed non-empty customer fields
// before calling in.
type OrderService struct {
	cfg  *config.Config
	cart *CartService
}

func NewOrderService(cfg *config.Config, cart *CartService) *OrderService {
	return &OrderService{cfg: cfg, cart: cart}
}

// Summary prices the cart against a candidate zone, line by line in cart order.
func (s *OrderService) Summary(items []models.CartItem, zone models.DeliveryZone) models.OrderSummary {
	lines := make([]models.SummaryLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, models.SummaryLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			LineTotal: item.Price * item.Quantity,
		})
	}
	return models.OrderSummary{
		Lines:    lines,
		Subtotal: utils.Subtotal(items),
		Delivery: utils.DeliveryCost(zone),
		Total:    utils.Total(items, zone),
	}
}

// ComposeMessage builds the order message the customer forwards over WhatsApp.
// One ordered block: header, customer identity, zone and fee, payment method,
// itemized list in cart order, totals, optional note, closing line.
func (s *OrderService) ComposeMessage(items []models.CartItem, req models.CheckoutRequest, zone models.DeliveryZone) string {
	cur := s.cfg.CurrencySymbol
	subtotal := utils.Subtotal(items)
	total := subtotal + zone.Cost

	var msg strings.Builder
	fmt.Fprintf(&msg, "🔥 *NUEVO PEDIDO — %s*\n\n", s.cfg.RestaurantName)
	fmt.Fprintf(&msg, "👤 *Cliente:* %s\n", req.Name)
	fmt.Fprintf(&msg, "📱 *Teléfono:* %s\n", req.Phone)
	fmt.Fprintf(&msg, "📍 *Dirección:* %s\n", req.Address)
	fmt.Fprintf(&msg, "🚚 *Zona:* %s (+%s%s)\n", zone.Name, cur, utils.FormatPrice(zone.Cost))
	fmt.Fprintf(&msg, "💳 *Pago:* %s\n\n", req.PaymentMethod)
	msg.WriteString("📋 *PEDIDO:*\n")
	for _, item := range items {
		fmt.Fprintf(&msg, "• %s × %d — %s%s\n", item.Name, item.Quantity, cur, utils.FormatPrice(item.Price*item.Quantity))
	}
	fmt.Fprintf(&msg, "\n💰 *Subtotal:* %s%s\n", cur, utils.FormatPrice(subtotal))
	fmt.Fprintf(&msg, "🛵 *Domicilio:* %s%s\n", cur, utils.FormatPrice(zone.Cost))
	fmt.Fprintf(&msg, "✅ *TOTAL:* %s%s\n", cur, utils.FormatPrice(total))
	if req.Notes != "" {
		fmt.Fprintf(&msg, "\n📝 *Nota:* %s\n", req.Notes)
	}
	msg.WriteString("\n¡Gracias por tu pedido! 🙌")
	return msg.String()
}

// WhatsAppLink embeds the message into the wa.me template for the configured
// recipient. Pure string work; nothing is sent from here.
func (s *OrderService) WhatsAppLink(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.cfg.WhatsAppNumber, url.QueryEscape(message))
}

// Submit composes the hand-off and clears the session's cart. "Success" means
// the link was produced; delivery of the message is up to the customer.
func (s *OrderService) Submit(ctx context.Context, sessionID string, items []models.CartItem, req models.CheckoutRequest, zone models.DeliveryZone) models.OrderHandoff {
	message := s.ComposeMessage(items, req, zone)
	handoff := models.OrderHandoff{
		Message:     message,
		WhatsAppURL: s.WhatsAppLink(message),
		Summary:     s.Summary(items, zone),
	}

	s.cart.Clear(ctx, sessionID)
	return handoff
}
