package controllers

import (
	"net/http"
	"strconv"

	"aliccedress/models"
	"aliccedress/services"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	nav *services.Navigator
}

func NewCartController(nav *services.Navigator) *CartController {
	return &CartController{nav: nav}
}

// @Summary Get cart
// @Description Get line items, total and item count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	respond(c, http.StatusOK, "Cart retrieved", ctrl.nav.Cart())
}

// @Summary Add product to cart
// @Description Adds one unit of a catalog product
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body models.AddToCartRequest true "Product"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	summary, err := ctrl.nav.AddToCart(c.Request.Context(), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Product added to cart", summary)
}

// @Summary Update quantity
// @Description Sets the quantity of a line item. Quantities below 1 remove the item
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body models.UpdateQuantityRequest true "Quantity"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	var req models.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	summary, err := ctrl.nav.UpdateQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Cart updated", summary)
}

// @Summary Remove item
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	summary, err := ctrl.nav.RemoveItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Item removed", summary)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response{data=models.CartSummary}
// @Router /cart [delete]
func (ctrl *CartController) Clear(c *gin.Context) {
	summary, err := ctrl.nav.ClearCart(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Cart cleared", summary)
}

// @Summary Checkout
// @Description Confirms the order, clears the cart and returns to home
// @Tags Cart
// @Produce json
// @Success 201 {object} models.Response{data=models.OrderConfirmation}
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/checkout [post]
func (ctrl *CartController) Checkout(c *gin.Context) {
	confirmation, err := ctrl.nav.Checkout(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "Order confirmed", confirmation)
}

// @Summary Verify receipt
// @Description Decodes a signed order receipt
// @Tags Cart
// @Produce json
// @Param token path string true "Receipt token"
// @Success 200 {object} models.Response{data=models.ReceiptClaims}
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout/receipts/{token} [get]
func (ctrl *CartController) VerifyReceipt(c *gin.Context) {
	claims, err := ctrl.nav.VerifyReceipt(c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "Receipt verified", claims)
}
