package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/elouannasse/youshop-client/internal/domain"
)

type categoriesEnvelope struct {
	Success    bool          `json:"success"`
	Categories []categoryDTO `json:"categories"`
}

type categoryEnvelope struct {
	Success bool        `json:"success"`
	Data    categoryDTO `json:"data"`
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var env categoriesEnvelope
	if err := c.get(ctx, "/categories", nil, &env); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(env.Categories))
	for _, dto := range env.Categories {
		categories = append(categories, toDomainCategory(dto))
	}
	return categories, nil
}

func (c *Client) Category(ctx context.Context, id string) (domain.Category, error) {
	if id == "" {
		return domain.Category{}, fmt.Errorf("id is empty")
	}

	var env categoryEnvelope
	if err := c.get(ctx, "/categories/"+id, nil, &env); err != nil {
		return domain.Category{}, err
	}
	return toDomainCategory(env.Data), nil
}

func (c *Client) CreateCategory(ctx context.Context, cat domain.Category) (domain.Category, error) {
	var env categoryEnvelope
	if err := c.send(ctx, http.MethodPost, "/categories", toCategoryDTO(cat), &env, nil); err != nil {
		return domain.Category{}, err
	}
	return toDomainCategory(env.Data), nil
}

func (c *Client) UpdateCategory(ctx context.Context, cat domain.Category) (domain.Category, error) {
	if cat.ID == "" {
		return domain.Category{}, fmt.Errorf("id is empty")
	}

	var env categoryEnvelope
	if err := c.send(ctx, http.MethodPatch, "/categories/"+cat.ID, toCategoryDTO(cat), &env, nil); err != nil {
		return domain.Category{}, err
	}
	return toDomainCategory(env.Data), nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("id is empty")
	}
	return c.send(ctx, http.MethodDelete, "/categories/"+id, nil, nil, nil)
}
