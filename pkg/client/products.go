package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ProductFilter mirrors the catalog query parameters. Nil pointer fields
// are omitted from the query.
type ProductFilter struct {
	Name        string
	CategoryID  *int64
	OnlyInStock *bool
	Order       string
	Page        int
	Size        int
}

func (f ProductFilter) query() string {
	values := url.Values{}
	if f.Name != "" {
		values.Set("nombre", f.Name)
	}
	if f.CategoryID != nil {
		values.Set("categoria", strconv.FormatInt(*f.CategoryID, 10))
	}
	if f.OnlyInStock != nil {
		values.Set("soloEnStock", strconv.FormatBool(*f.OnlyInStock))
	}
	if f.Order != "" {
		values.Set("orden", f.Order)
	}
	values.Set("page", strconv.Itoa(f.Page))
	values.Set("size", strconv.Itoa(f.Size))
	return values.Encode()
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, fmt.Sprintf("/api/public/productos/%d", id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) FilterProducts(ctx context.Context, filter ProductFilter) (Page[Product], error) {
	var page Page[Product]
	err := c.getJSON(ctx, "/api/public/productos/filtrar?"+filter.query(), &page)
	return page, err
}

func (c *Client) GetAllProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	err := c.getJSON(ctx, "/api/public/productos/todos", &products)
	return products, err
}

// validateProduct checks the fields the admin forms require before a
// request is built, mirroring the server's field -> message envelope.
func validateProduct(req ProductRequest) error {
	fields := map[string]string{}
	if strings.TrimSpace(req.Name) == "" {
		fields["nombre"] = "is required"
	}
	if req.Price <= 0 {
		fields["precio"] = "must be greater than 0"
	}
	if len(fields) > 0 {
		return newValidationError(fields)
	}
	return nil
}

func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) (int64, error) {
	if err := validateProduct(req); err != nil {
		return 0, err
	}

	var id int64
	err := c.sendJSON(ctx, "POST", "/api/admin/productos/crear", req, &id)
	return id, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, req ProductRequest) error {
	if err := validateProduct(req); err != nil {
		return err
	}
	return c.sendJSON(ctx, "PUT", fmt.Sprintf("/api/admin/productos/%d", id), req, nil)
}

func (c *Client) UpdateProductStock(ctx context.Context, id int64, soldOut bool) error {
	body := struct {
		SoldOut bool `json:"soldOut"`
	}{SoldOut: soldOut}
	return c.sendJSON(ctx, "PATCH", fmt.Sprintf("/api/admin/productos/%d/stock", id), body, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "DELETE", fmt.Sprintf("/api/admin/productos/%d", id), nil, nil)
}
