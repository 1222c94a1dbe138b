package models

// Category is one ordered section of the menu document. The slice order in the
// document defines display order.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Icon     string    `json:"icon,omitempty"`
	Products []Product `json:"products"`
}

// Product is immutable after the menu document is loaded. Price is an integer
// in the smallest currency unit; Agotado marks it out of stock.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	Icon        string `json:"icon,omitempty"`
	Image       string `json:"image,omitempty"`
	Agotado     bool   `json:"agotado"`
}
