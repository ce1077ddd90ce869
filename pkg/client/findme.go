package client

import (
	"context"
	"fmt"
)

func (c *Client) GetFindMePost(ctx context.Context, id int64) (*FindMePost, error) {
	var post FindMePost
	if err := c.getJSON(ctx, fmt.Sprintf("/api/public/find-me-posts/%d", id), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *Client) GetAllFindMePosts(ctx context.Context) ([]FindMePost, error) {
	var posts []FindMePost
	err := c.getJSON(ctx, "/api/public/find-me-posts/todos", &posts)
	return posts, err
}

func (c *Client) CreateFindMePost(ctx context.Context, post FindMePost) (int64, error) {
	var id int64
	err := c.sendJSON(ctx, "POST", "/api/admin/find-me-posts/crear", post, &id)
	return id, err
}

func (c *Client) UpdateFindMePost(ctx context.Context, id int64, post FindMePost) error {
	return c.sendJSON(ctx, "PUT", fmt.Sprintf("/api/admin/find-me-posts/%d", id), post, nil)
}

func (c *Client) DeleteFindMePost(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, "DELETE", fmt.Sprintf("/api/admin/find-me-posts/%d", id), nil, nil)
}
