package backend

import (
	"context"
	"net/http"

	"volunteerHub/internal/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	const op = "backend.ListUsers"

	users := []models.User{}
	if err := c.call(ctx, op, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	const op = "backend.ListCategories"

	cats := []models.Category{}
	if err := c.call(ctx, op, http.MethodGet, "/categories", nil, nil, &cats); err != nil {
		return nil, err
	}

	return cats, nil
}
