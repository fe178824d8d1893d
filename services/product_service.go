package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"aliccedress/models"
	"aliccedress/repositories"
	"aliccedress/utils"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type CatalogService struct {
	productRepo *repositories.ProductRepository
}

func NewCatalogService(productRepo *repositories.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// Tiles maps products to catalog tiles, one per product, in input order.
func (s *CatalogService) Tiles(products []models.Product) []models.ProductTile {
	tiles := make([]models.ProductTile, 0, len(products))
	for _, p := range products {
		tiles = append(tiles, models.ProductTile{
			ID:          p.ID,
			ImageURL:    p.ImageURL,
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			PriceLabel:  utils.PriceLabel(p.Price),
			DetailsURL:  fmt.Sprintf("/products/%d", p.ID),
		})
	}
	return tiles
}

func (s *CatalogService) List(filter models.ProductFilter) ([]models.ProductTile, models.PaginationMeta) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	products := s.filter(filter)
	total := len(products)

	// (page-1)*limit may overflow for huge pages; compare by division first.
	start := total
	if page-1 <= total/limit {
		start = (page - 1) * limit
		if start > total {
			start = total
		}
	}
	end := start + limit
	if end > total {
		end = total
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return s.Tiles(products[start:end]), models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

func (s *CatalogService) filter(filter models.ProductFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var products []models.Product
	for _, p := range s.productRepo.GetAllProducts() {
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		if filter.MinPrice > 0 && p.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		products = append(products, p)
	}

	switch {
	case filter.SortName == "asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title < products[j].Title })
	case filter.SortName == "desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title > products[j].Title })
	case filter.SortPrice == "asc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case filter.SortPrice == "desc":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	}
	return products
}

func (s *CatalogService) Find(id int) (models.Product, bool) {
	return s.productRepo.GetProductByID(id)
}

// Detail looks up a product by id. An unknown id yields a view with
// Found set to false rather than an error.
func (s *CatalogService) Detail(id int) models.ProductDetailView {
	product, ok := s.productRepo.GetProductByID(id)
	if !ok {
		return models.ProductDetailView{Found: false}
	}
	return models.ProductDetailView{
		Found:      true,
		Product:    &product,
		PriceLabel: utils.PriceLabel(product.Price),
	}
}
