package client

import (
	"iter"
	"time"

	"github.com/elouannasse/youshop-client/internal/domain"
)

// Wire shapes. Monetary values cross the wire as JSON numbers and are
// converted to decimals at this boundary; no arithmetic happens on the
// float representation.

type productDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CategoryID  string    `json:"categoryId,omitempty"`
	Brand       string    `json:"brand,omitempty"`
	Stock       int       `json:"stock"`
	SKU         string    `json:"sku,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Featured    bool      `json:"featured,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	Slug        string    `json:"slug,omitempty"`
	IsActive    bool      `json:"isActive,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
}

type categoryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug,omitempty"`
	Description   string `json:"description,omitempty"`
	ImageURL      string `json:"image,omitempty"`
	ParentID      string `json:"parentId,omitempty"`
	ProductsCount int    `json:"productsCount,omitempty"`
	IsActive      bool   `json:"isActive,omitempty"`
}

type addressDTO struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
}

type orderLineDTO struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type orderItemDTO struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image,omitempty"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type orderDTO struct {
	ID              string         `json:"id"`
	OrderNumber     string         `json:"orderNumber"`
	Items           []orderItemDTO `json:"items"`
	ShippingAddress addressDTO     `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
	Status          string         `json:"status"`
	Subtotal        float64        `json:"subtotal"`
	Tax             float64        `json:"tax"`
	ShippingCost    float64        `json:"shippingCost"`
	Total           float64        `json:"total"`
	Notes           string         `json:"notes,omitempty"`
	TrackingNumber  string         `json:"trackingNumber,omitempty"`
	ExpiresAt       time.Time      `json:"expiresAt,omitzero"`
	CreatedAt       time.Time      `json:"createdAt,omitzero"`
	UpdatedAt       time.Time      `json:"updatedAt,omitzero"`
}

type userDTO struct {
	ID        string       `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	Email     string       `json:"email"`
	Role      string       `json:"role"`
	Phone     string       `json:"phone,omitempty"`
	Avatar    string       `json:"avatar,omitempty"`
	Addresses []addressDTO `json:"addresses,omitempty"`
	CreatedAt time.Time    `json:"createdAt,omitzero"`
}

type paginationDTO struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func toDomainProduct(dto productDTO) domain.Product {
	return domain.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       domain.EURFromFloat(dto.Price),
		ImageURL:    dto.ImageURL,
		CategoryID:  dto.CategoryID,
		Brand:       dto.Brand,
		Stock:       dto.Stock,
		SKU:         dto.SKU,
		Tags:        dto.Tags,
		Featured:    dto.Featured,
		Rating:      dto.Rating,
		Slug:        dto.Slug,
		Active:      dto.IsActive,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

func toDomainProducts(dtos []productDTO) []domain.Product {
	products := make([]domain.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toDomainProduct(dto))
	}
	return products
}

func toProductDTO(p domain.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Float64(),
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		Brand:       p.Brand,
		Stock:       p.Stock,
		SKU:         p.SKU,
		Tags:        p.Tags,
		Featured:    p.Featured,
		Slug:        p.Slug,
		IsActive:    p.Active,
	}
}

func toDomainCategory(dto categoryDTO) domain.Category {
	return domain.Category{
		ID:            dto.ID,
		Name:          dto.Name,
		Slug:          dto.Slug,
		Description:   dto.Description,
		ImageURL:      dto.ImageURL,
		ParentID:      dto.ParentID,
		ProductsCount: dto.ProductsCount,
		Active:        dto.IsActive,
	}
}

func toCategoryDTO(c domain.Category) categoryDTO {
	return categoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ParentID:    c.ParentID,
		IsActive:    c.Active,
	}
}

func toDomainAddress(dto addressDTO) domain.Address {
	return domain.Address(dto)
}

func toAddressDTO(a domain.Address) addressDTO {
	return addressDTO(a)
}

func toDomainOrder(dto orderDTO) domain.Order {
	items := make([]domain.OrderItem, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			UnitPrice: domain.EURFromFloat(item.Price),
			Quantity:  item.Quantity,
			Subtotal:  domain.EURFromFloat(item.Subtotal),
		})
	}

	return domain.Order{
		ID:              dto.ID,
		OrderNumber:     dto.OrderNumber,
		Items:           items,
		ShippingAddress: toDomainAddress(dto.ShippingAddress),
		PaymentMethod:   domain.PaymentMethod(dto.PaymentMethod),
		Status:          domain.OrderStatus(dto.Status),
		Totals:          toDomainTotals(dto),
		Notes:           dto.Notes,
		TrackingNumber:  dto.TrackingNumber,
		ExpiresAt:       dto.ExpiresAt,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
}

func toDomainOrders(dtos []orderDTO) []domain.Order {
	orders := make([]domain.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toDomainOrder(dto))
	}
	return orders
}

func toDomainTotals(dto orderDTO) domain.CartTotals {
	return domain.CartTotals{
		Subtotal:     domain.EURFromFloat(dto.Subtotal),
		Tax:          domain.EURFromFloat(dto.Tax),
		ShippingCost: domain.EURFromFloat(dto.ShippingCost),
		Total:        domain.EURFromFloat(dto.Total),
	}
}

func toDomainUser(dto userDTO) domain.User {
	addresses := make([]domain.Address, 0, len(dto.Addresses))
	for _, a := range dto.Addresses {
		addresses = append(addresses, toDomainAddress(a))
	}

	return domain.User{
		ID:        dto.ID,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Email:     dto.Email,
		Role:      domain.UserRole(dto.Role),
		Phone:     dto.Phone,
		AvatarURL: dto.Avatar,
		Addresses: addresses,
		CreatedAt: dto.CreatedAt,
	}
}

func toDomainPagination(dto paginationDTO) domain.Pagination {
	return domain.Pagination(dto)
}

func toOrderLineDTOs(lines iter.Seq[domain.OrderLine]) []orderLineDTO {
	var dtos []orderLineDTO
	for line := range lines {
		dtos = append(dtos, orderLineDTO{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice.Float64(),
		})
	}
	return dtos
}
