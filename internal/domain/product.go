package domain

import "time"

type Product struct {
	ID          string
	Name        string
	Description string
	Price       Money
	ImageURL    string
	CategoryID  string
	Brand       string
	Stock       int
	SKU         string
	Tags        []string
	Featured    bool
	Rating      float64
	Slug        string
	Active      bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID            string
	Name          string
	Slug          string
	Description   string
	ImageURL      string
	ParentID      string
	ProductsCount int
	Active        bool
}

type ProductSort string

const (
	SortNewest    ProductSort = "newest"
	SortPriceAsc  ProductSort = "price-asc"
	SortPriceDesc ProductSort = "price-desc"
	SortPopular   ProductSort = "popular"
	SortRating    ProductSort = "rating"
)

// ProductFilter narrows a catalog listing. Zero values mean "no
// constraint"; pagination defaults are applied by the backend.
type ProductFilter struct {
	CategoryID string
	Search     string
	Brand      string
	MinPrice   *Money
	MaxPrice   *Money
	InStock    bool
	Featured   bool
	Sort       ProductSort
	Page       int
	Limit      int
}

type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}
