package client

import "context"

func (c *Client) GetNewsletterTemplate(ctx context.Context) (*Newsletter, error) {
	var template Newsletter
	if err := c.getJSON(ctx, "/api/admin/plantilla/obtener", &template); err != nil {
		return nil, err
	}
	return &template, nil
}

func (c *Client) UpdateNewsletterTemplate(ctx context.Context, template Newsletter) error {
	return c.sendJSON(ctx, "PUT", "/api/admin/plantilla/modificar", template, nil)
}

// SendNewsletter queues delivery to every verified subscriber and returns
// the queued count.
func (c *Client) SendNewsletter(ctx context.Context, newsletter Newsletter) (int, error) {
	var count int
	err := c.sendJSON(ctx, "POST", "/api/admin/newsletter/enviar", newsletter, &count)
	return count, err
}
