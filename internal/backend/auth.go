package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"volunteerHub/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message     string `json:"message"`
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

// Login authenticates against the backend and returns the session token it
// issued, taken from the access_token cookie or, failing that, the body.
func (c *Client) Login(ctx context.Context, email, password string) (Credentials, error) {
	const op = "backend.Login"

	resp, err := c.send(ctx, op, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password})
	if err != nil {
		return Credentials{}, err
	}
	defer resp.Body.Close()

	for _, ck := range resp.Cookies() {
		if ck.Name == AccessTokenCookie && ck.Value != "" {
			_, _ = io.Copy(io.Discard, resp.Body)
			return Credentials{Token: ck.Value}, nil
		}
	}

	var body loginResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err == nil {
		switch {
		case body.AccessToken != "":
			return Credentials{Token: body.AccessToken}, nil
		case body.Token != "":
			return Credentials{Token: body.Token}, nil
		}
	}

	return Credentials{}, &Error{Op: op, StatusCode: resp.StatusCode, Msg: "login response carried no session token"}
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	const op = "backend.Register"

	return c.call(ctx, op, http.MethodPost, "/auth/register", nil, req, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	const op = "backend.Logout"

	return c.call(ctx, op, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	const op = "backend.CurrentUser"

	var u models.User
	if err := c.call(ctx, op, http.MethodGet, "/users/me", nil, nil, &u); err != nil {
		return nil, err
	}

	return &u, nil
}
