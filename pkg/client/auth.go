package client

import (
	"context"
	"errors"
)

var ErrNoSession = errors.New("client has no session configured")

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a JWT and stores it in the session,
// arming the auto-logout timer.
func (c *Client) Login(ctx context.Context, email, password string) error {
	if c.session == nil {
		return ErrNoSession
	}

	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp loginResponse
	if err := c.sendJSON(ctx, "POST", "/api/public/login/login", body, &resp); err != nil {
		return err
	}
	return c.session.Login(resp.Token)
}

// Logout clears the session locally. There is no server-side session to
// invalidate, the token simply stops being attached.
func (c *Client) Logout() error {
	if c.session == nil {
		return ErrNoSession
	}
	return c.session.Logout()
}
