package client

import (
	"context"
	"fmt"
	"strings"
)

type categoryRequest struct {
	Name string `json:"nombre"`
}

func (c *Client) GetCategory(ctx context.Context, id int64) (*Category, error) {
	var category Category
	if err := c.getJSON(ctx, fmt.Sprintf("/api/public/categorias/%d", id), &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) GetAllCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := c.getJSON(ctx, "/api/public/categorias/todas", &categories)
	return categories, err
}

// CreateCategory rejects an empty name before any request is built.
func (c *Client) CreateCategory(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, newValidationError(map[string]string{"nombre": "is required"})
	}

	var id int64
	err := c.sendJSON(ctx, "POST", "/api/admin/categorias/crear", categoryRequest{Name: name}, &id)
	return id, err
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, name string) error {
	if strings.TrimSpace(name) == "" {
		return newValidationError(map[string]string{"nombre": "is required"})
	}
	return c.sendJSON(ctx, "PUT", fmt.Sprintf("/api/admin/categorias/%d", id), categoryRequest{Name: name}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "DELETE", fmt.Sprintf("/api/admin/categorias/%d", id), nil, nil)
}
