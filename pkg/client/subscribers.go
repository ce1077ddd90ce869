package client

import (
	"context"
	"net/url"
)

func (c *Client) Subscribe(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.sendJSON(ctx, "POST", "/api/public/suscriptores/suscribir", body, nil)
}

func (c *Client) VerifySubscription(ctx context.Context, token string) error {
	return c.getJSON(ctx, "/api/public/suscriptores/verificar?token="+url.QueryEscape(token), nil)
}

func (c *Client) Unsubscribe(ctx context.Context, token string) error {
	return c.getJSON(ctx, "/api/public/suscriptores/desuscribir?token="+url.QueryEscape(token), nil)
}
