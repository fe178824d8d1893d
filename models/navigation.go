package models

type Page string

const (
	PageHome    Page = "home"
	PageCatalog Page = "catalog"
	PageProduct Page = "product"
	PageCart    Page = "cart"
	PageProfile Page = "profile"
)

type NavigationState struct {
	Page              Page `json:"page"`
	SelectedProductID *int `json:"selectedProductId"`
}
