package models

// CartLineItem is one row of the cart. Title, price and image are copied
// from the product when it is first added.
type CartLineItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	ImageURL string `json:"imageUrl,omitempty"`
}

type CartSummary struct {
	Items     []CartLineItem `json:"items"`
	Total     int            `json:"total"`
	ItemCount int            `json:"itemCount"`
}
