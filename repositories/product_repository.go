package repositories

import "aliccedress/models"

var clothingProducts = []models.Product{
	{
		ID:          1,
		ImageURL:    "/assets/dress.jpg",
		Title:       "Летнее платье",
		Description: "Легкое хлопковое платье с цветочным принтом, идеально для жарких дней",
		Price:       4599,
		Details: models.ProductDetails{
			Material: "100% хлопок",
			Color:    "Цветочный принт",
			Size:     "XS, S, M, L, XL",
			Care:     "Стирка при 30°C, гладить при средней температуре",
		},
	},
	{
		ID:          2,
		ImageURL:    "/assets/jacket.jpg",
		Title:       "Джинсовая куртка",
		Description: "Классическая джинсовая куртка с современным кроем и удобными карманами",
		Price:       7999,
		Details: models.ProductDetails{
			Material: "Деним (100% хлопок)",
			Color:    "Синий деним",
			Size:     "S, M, L, XL",
			Care:     "Стирка при 40°C, не отбеливать",
		},
	},
	{
		ID:          3,
		ImageURL:    "/assets/shirt.jpg",
		Title:       "Классическая рубашка",
		Description: "Хлопковая рубашка с длинными рукавами, подходит для офиса и повседневной носки",
		Price:       3999,
		Details: models.ProductDetails{
			Material: "100% хлопок",
			Color:    "Белый, голубой, розовый",
			Size:     "XS, S, M, L, XL, XXL",
			Care:     "Стирка при 30°C, гладить с паром",
		},
	},
	{
		ID:          4,
		ImageURL:    "/assets/trousers.jpg",
		Title:       "Спортивные брюки",
		Description: "Базовые брюки для тренировок с высокой талией и карманом для телефона",
		Price:       3499,
		Details: models.ProductDetails{
			Material: "Полиэстер 85%, Эластан 15%",
			Color:    "Черный, серый, синий",
			Size:     "XS, S, M, L, XL",
			Care:     "Стирка при 40°C, сушить вдали от прямых солнечных лучей",
		},
	},
	{
		ID:          5,
		ImageURL:    "/assets/sweater.jpg",
		Title:       "Вязаный свитер",
		Description: "Теплый свитер из мягкой шерсти с узором кос, идеален для холодной погоды",
		Price:       6599,
		Details: models.ProductDetails{
			Material: "Шерсть 70%, Акрил 30%",
			Color:    "Бежевый, серый, бордовый",
			Size:     "S, M, L, XL",
			Care:     "Ручная стирка при 30°C, сушить горизонтально",
		},
	},
	{
		ID:          6,
		ImageURL:    "/assets/evening_dress.jpg",
		Title:       "Вечернее платье",
		Description: "Элегантное вечернее платье с открытыми плечами и струящимся силуэтом",
		Price:       12999,
		Details: models.ProductDetails{
			Material: "Шелк 100%",
			Color:    "Черный, красный, золотой",
			Size:     "XS, S, M, L",
			Care:     "Химчистка только",
		},
	},
	{
		ID:          7,
		ImageURL:    "/assets/jeans.jpg",
		Title:       "Джинсы",
		Description: "Джинсы Wide leg в светло-голубом цвете с удобной посадкой",
		Price:       5999,
		Details: models.ProductDetails{
			Material: "Хлопок 100%",
			Color:    "Голубой",
			Size:     "XS, S, M, L",
			Care:     "Ручная стирка при 30°C",
		},
	},
	{
		ID:          8,
		ImageURL:    "/assets/trousers2.jpg",
		Title:       "Брюки",
		Description: "Широкие классические брюки в коричневом цвете",
		Price:       5999,
		Details: models.ProductDetails{
			Material: "Хлопок, полиэстер",
			Color:    "Коричневый",
			Size:     "XS, S, M, L",
			Care:     "Ручная стирка при 30°C",
		},
	},
	{
		ID:          9,
		ImageURL:    "/assets/skirt.jpg",
		Title:       "Юбка",
		Description: "Черная мини-юбка с рюшами",
		Price:       2799,
		Details: models.ProductDetails{
			Material: "Хлопок",
			Color:    "Черный",
			Size:     "XS, S, M, L",
			Care:     "Ручная стирка при 30°C",
		},
	},
}

// ProductRepository serves the static catalog table.
type ProductRepository struct {
	products []models.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: clothingProducts}
}

// NewProductRepositoryWith serves the given table instead of the built-in one.
func NewProductRepositoryWith(products []models.Product) *ProductRepository {
	return &ProductRepository{products: products}
}

func (r *ProductRepository) GetAllProducts() []models.Product {
	products := make([]models.Product, len(r.products))
	copy(products, r.products)
	return products
}

func (r *ProductRepository) GetProductByID(id int) (models.Product, bool) {
	for _, p := range r.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
