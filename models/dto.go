package models

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,contains=@"`
	Phone    string `json:"phone" form:"phone" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ProfileFields is the editable part of a profile. Avatar is optional and
// kept unchanged when empty.
type ProfileFields struct {
	Name   string `json:"name" form:"name" validate:"required"`
	Email  string `json:"email" form:"email" validate:"required,contains=@"`
	Phone  string `json:"phone" form:"phone" validate:"required"`
	Avatar string `json:"avatar,omitempty" form:"avatar"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" form:"quantity" binding:"required"`
}
