package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elouannasse/youshop-client/internal/domain"
)

type productsEnvelope struct {
	Success    bool          `json:"success"`
	Products   []productDTO  `json:"products"`
	Pagination paginationDTO `json:"pagination"`
}

type productEnvelope struct {
	Success bool       `json:"success"`
	Data    productDTO `json:"data"`
}

func (c *Client) Products(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, domain.Pagination, error) {
	params := map[string]string{}
	if filter.CategoryID != "" {
		params["category"] = filter.CategoryID
	}
	if filter.Search != "" {
		params["search"] = filter.Search
	}
	if filter.Brand != "" {
		params["brand"] = filter.Brand
	}
	if filter.MinPrice != nil {
		params["minPrice"] = filter.MinPrice.Amount.String()
	}
	if filter.MaxPrice != nil {
		params["maxPrice"] = filter.MaxPrice.Amount.String()
	}
	if filter.InStock {
		params["inStock"] = "true"
	}
	if filter.Featured {
		params["featured"] = "true"
	}
	if filter.Sort != "" {
		params["sort"] = string(filter.Sort)
	}
	if filter.Page > 0 {
		params["page"] = strconv.Itoa(filter.Page)
	}
	if filter.Limit > 0 {
		params["limit"] = strconv.Itoa(filter.Limit)
	}

	var env productsEnvelope
	if err := c.get(ctx, "/products", params, &env); err != nil {
		return nil, domain.Pagination{}, err
	}

	return toDomainProducts(env.Products), toDomainPagination(env.Pagination), nil
}

func (c *Client) Product(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var env productEnvelope
	if err := c.get(ctx, "/products/"+id, nil, &env); err != nil {
		return domain.Product{}, err
	}

	return toDomainProduct(env.Data), nil
}

func (c *Client) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	params := map[string]string{}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var env productsEnvelope
	if err := c.get(ctx, "/products/featured", params, &env); err != nil {
		return nil, err
	}

	return toDomainProducts(env.Products), nil
}

func (c *Client) SearchProducts(ctx context.Context, query string, page, limit int) ([]domain.Product, domain.Pagination, error) {
	if query == "" {
		return nil, domain.Pagination{}, fmt.Errorf("query is empty")
	}

	params := map[string]string{"q": query}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var env productsEnvelope
	if err := c.get(ctx, "/products/search", params, &env); err != nil {
		return nil, domain.Pagination{}, err
	}

	return toDomainProducts(env.Products), toDomainPagination(env.Pagination), nil
}

func (c *Client) ProductsByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	if categoryID == "" {
		return nil, fmt.Errorf("categoryID is empty")
	}

	var env productsEnvelope
	if err := c.get(ctx, "/products/category/"+categoryID, nil, &env); err != nil {
		return nil, err
	}

	return toDomainProducts(env.Products), nil
}

// Admin operations. The backend enforces the role; the client just
// forwards the session token.

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	var env productEnvelope
	if err := c.send(ctx, http.MethodPost, "/products", toProductDTO(p), &env, nil); err != nil {
		return domain.Product{}, err
	}
	return toDomainProduct(env.Data), nil
}

func (c *Client) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	var env productEnvelope
	if err := c.send(ctx, http.MethodPut, "/products/"+p.ID, toProductDTO(p), &env, nil); err != nil {
		return domain.Product{}, err
	}
	return toDomainProduct(env.Data), nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}
	return c.send(ctx, http.MethodDelete, "/products/"+id, nil, nil, nil)
}

func (c *Client) UpdateStock(ctx context.Context, id string, stock int) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, fmt.Errorf("id is empty")
	}

	body := map[string]int{"stock": stock}

	var env productEnvelope
	if err := c.send(ctx, http.MethodPatch, "/products/"+id+"/stock", body, &env, nil); err != nil {
		return domain.Product{}, err
	}
	return toDomainProduct(env.Data), nil
}
