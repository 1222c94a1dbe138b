package models

type CheckoutRequest struct {
	Name          string `json:"name" form:"name"`
	Phone         string `json:"phone" form:"phone"`
	Address       string `json:"address" form:"address"`
	Notes         string `json:"notes" form:"notes"`
	ZoneID        int    `json:"zone_id" form:"zone_id"`
	PaymentMethod string `json:"payment_method" form:"payment_method"`
}

// SummaryLine is one row of the checkout summary panel.
type SummaryLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

type OrderSummary struct {
	Lines    []SummaryLine `json:"lines"`
	Subtotal int           `json:"subtotal"`
	Delivery int           `json:"delivery"`
	Total    int           `json:"total"`
}

// OrderHandoff is the result of a submitted checkout: the composed message and
// the wa.me link the customer opens to send it. Producing the link is the only
// outbound effect; whether the message is actually sent is unobservable.
type OrderHandoff struct {
	Message     string       `json:"message"`
	WhatsAppURL string       `json:"whatsapp_url"`
	Summary     OrderSummary `json:"summary"`
}
