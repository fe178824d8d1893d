package models

import "time"

type OrderConfirmation struct {
	OrderNumber   string         `json:"orderNumber"`
	Total         int            `json:"total"`
	ItemCount     int            `json:"itemCount"`
	Items         []CartLineItem `json:"items"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	Receipt       string         `json:"receipt,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type OrderRequest struct {
	Items     []CartLineItem
	Total     int
	ItemCount int
	Customer  *UserProfile
}

type ReceiptClaims struct {
	OrderNumber   string `json:"order_number"`
	Total         int    `json:"total"`
	ItemCount     int    `json:"item_count"`
	CustomerEmail string `json:"customer_email,omitempty"`
}
