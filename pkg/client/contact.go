package client

import "context"

func (c *Client) SendContact(ctx context.Context, form ContactForm) error {
	return c.sendJSON(ctx, "POST", "/api/public/contacto/enviar", form, nil)
}
