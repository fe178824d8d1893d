package controllers

import (
	"net/http"
	"strconv"

	"aliccedress/models"
	"aliccedress/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// @Summary Get all products
// @Description Get catalog tiles with optional search, price range, sorting and pagination
// @Tags Products
// @Produce json
// @Param search query string false "Search by title"
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Param sort_name query string false "Sort by title" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	minPrice, _ := strconv.Atoi(c.Query("min_price"))
	maxPrice, _ := strconv.Atoi(c.Query("max_price"))

	tiles, meta := ctrl.catalog.List(models.ProductFilter{
		Search:    c.Query("search"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		SortName:  c.Query("sort_name"),
		SortPrice: c.Query("sort_price"),
		Page:      page,
		Limit:     limit,
	})

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    tiles,
		Meta:    meta,
	})
}

// @Summary Get product detail
// @Description Get a product with its details. Unknown ids return 404 with found=false
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response{data=models.ProductDetailView}
// @Failure 404 {object} models.Response{data=models.ProductDetailView}
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	view := ctrl.catalog.Detail(id)
	if !view.Found {
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Product not found",
			Data:    view,
		})
		return
	}
	respond(c, http.StatusOK, "Product retrieved", view)
}
