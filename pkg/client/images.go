package client

import (
	"context"
	"fmt"
	"io"
)

// UploadImage posts the file as the multipart field "archivo" and returns
// the stored image metadata.
func (c *Client) UploadImage(ctx context.Context, fileName string, file io.Reader) (*Image, error) {
	var image Image
	if err := c.sendMultipart(ctx, "/api/admin/imagenes/crear", "archivo", fileName, file, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (c *Client) GetImage(ctx context.Context, id int64) (*Image, error) {
	var image Image
	if err := c.getJSON(ctx, fmt.Sprintf("/api/public/imagenes/%d", id), &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "DELETE", fmt.Sprintf("/api/admin/imagenes/%d", id), nil, nil)
}
