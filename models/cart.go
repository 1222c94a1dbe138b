package models

// CartItem is a denormalized snapshot of a product taken at add time, so a
// later menu change never retroactively alters a cart. Quantity is always >= 1;
// an item that would drop to 0 is removed instead.
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Icon      string `json:"icon,omitempty"`
	Quantity  int    `json:"quantity"`
}
