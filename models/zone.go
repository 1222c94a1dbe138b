package models

// DeliveryZone is static configuration, independent of the menu document.
type DeliveryZone struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
}
