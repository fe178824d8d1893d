package models

type ProductDetails struct {
	Material string `json:"material"`
	Color    string `json:"color"`
	Size     string `json:"size"`
	Care     string `json:"care"`
}

type Product struct {
	ID          int            `json:"id"`
	ImageURL    string         `json:"imageUrl"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Price       int            `json:"price"`
	Details     ProductDetails `json:"details"`
}

// ProductTile is the catalog grid entry for a product.
type ProductTile struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	PriceLabel  string `json:"priceLabel"`
	DetailsURL  string `json:"detailsUrl"`
}

// ProductDetailView is what the detail page renders. Found is false when
// the requested id is not in the catalog.
type ProductDetailView struct {
	Found      bool     `json:"found"`
	Product    *Product `json:"product,omitempty"`
	PriceLabel string   `json:"priceLabel,omitempty"`
}

type ProductFilter struct {
	Search    string
	MinPrice  int
	MaxPrice  int
	SortName  string
	SortPrice string
	Page      int
	Limit     int
}
