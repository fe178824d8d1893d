package controllers

import (
	"net/http"
	"strconv"

	"aliccedress/models"
	"aliccedress/services"

	"github.com/gin-gonic/gin"
)

type NavigationController struct {
	nav *services.Navigator
}

func NewNavigationController(nav *services.Navigator) *NavigationController {
	return &NavigationController{nav: nav}
}

type navigationView struct {
	State   models.NavigationState    `json:"state"`
	Product *models.ProductDetailView `json:"product,omitempty"`
}

func (ctrl *NavigationController) render(c *gin.Context, state models.NavigationState) {
	view := navigationView{State: state}
	if state.Page == models.PageProduct {
		detail := ctrl.nav.CurrentProduct()
		view.Product = &detail
	}
	respond(c, http.StatusOK, "Navigation state", view)
}

// @Summary Get navigation state
// @Tags Navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation [get]
func (ctrl *NavigationController) GetState(c *gin.Context) {
	ctrl.render(c, ctrl.nav.State())
}

// @Summary Go to home page
// @Description Switches to home and clears the selected product
// @Tags Navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation/home [post]
func (ctrl *NavigationController) Home(c *gin.Context) {
	ctrl.render(c, ctrl.nav.NavigateHome())
}

// @Summary Go to catalog page
// @Tags Navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation/catalog [post]
func (ctrl *NavigationController) Catalog(c *gin.Context) {
	ctrl.render(c, ctrl.nav.NavigateCatalog())
}

// @Summary Open cart page
// @Tags Navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation/cart [post]
func (ctrl *NavigationController) Cart(c *gin.Context) {
	ctrl.render(c, ctrl.nav.OpenCart())
}

// @Summary Open profile page
// @Tags Navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation/profile [post]
func (ctrl *NavigationController) Profile(c *gin.Context) {
	ctrl.render(c, ctrl.nav.OpenProfile())
}

// @Summary Go back
// @Tags Navigation
// @Produce json
// @Success 200 {object} models.Response
// @Router /navigation/back [post]
func (ctrl *NavigationController) Back(c *gin.Context) {
	ctrl.render(c, ctrl.nav.Back())
}

// @Summary Select product
// @Description Opens the product detail page
// @Tags Navigation
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Router /navigation/products/{id} [post]
func (ctrl *NavigationController) SelectProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	ctrl.render(c, ctrl.nav.SelectProduct(id))
}
