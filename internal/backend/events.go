package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"volunteerHub/internal/models"
)

type actionRequest struct {
	Action string `json:"action"`
}

func eventPath(id int64, suffix string) string {
	return fmt.Sprintf("/events/%d%s", id, suffix)
}

func (c *Client) ListEvents(ctx context.Context, filter models.EventFilter) (*models.Page[models.Event], error) {
	const op = "backend.ListEvents"

	var page models.Page[models.Event]
	if err := c.call(ctx, op, http.MethodGet, "/events", filter.Values(), nil, &page); err != nil {
		return nil, err
	}

	if page.Content == nil {
		page.Content = []models.Event{}
	}

	return &page, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	const op = "backend.GetEvent"

	var e models.Event
	if err := c.call(ctx, op, http.MethodGet, eventPath(id, ""), nil, nil, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (c *Client) CreateEvent(ctx context.Context, in models.EventInput) (*models.Event, error) {
	const op = "backend.CreateEvent"

	var e models.Event
	if err := c.call(ctx, op, http.MethodPost, "/events", nil, in, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, in models.EventInput) (*models.Event, error) {
	const op = "backend.UpdateEvent"

	var e models.Event
	if err := c.call(ctx, op, http.MethodPut, eventPath(id, ""), nil, in, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	const op = "backend.DeleteEvent"

	return c.call(ctx, op, http.MethodDelete, eventPath(id, ""), nil, nil, nil)
}

func (c *Client) CloseEvent(ctx context.Context, id int64, action models.CloseAction) error {
	const op = "backend.CloseEvent"

	return c.call(ctx, op, http.MethodPatch, eventPath(id, "/close"), nil, actionRequest{Action: string(action)}, nil)
}

func (c *Client) RegisterForEvent(ctx context.Context, id int64) error {
	const op = "backend.RegisterForEvent"

	return c.call(ctx, op, http.MethodPost, eventPath(id, "/register"), nil, struct{}{}, nil)
}

func (c *Client) CancelRegistration(ctx context.Context, id int64) error {
	const op = "backend.CancelRegistration"

	return c.call(ctx, op, http.MethodDelete, eventPath(id, "/register"), nil, nil, nil)
}

func (c *Client) MyRegistrations(ctx context.Context) ([]models.Event, error) {
	const op = "backend.MyRegistrations"

	events := []models.Event{}
	if err := c.call(ctx, op, http.MethodGet, "/events/my-registrations", nil, nil, &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *Client) EventRegistrations(ctx context.Context, id int64) ([]models.Registration, error) {
	const op = "backend.EventRegistrations"

	regs := []models.Registration{}
	if err := c.call(ctx, op, http.MethodGet, eventPath(id, "/registrations"), nil, nil, &regs); err != nil {
		return nil, err
	}

	return regs, nil
}

func (c *Client) ReviewRegistration(ctx context.Context, id int64, action models.RegistrationAction) error {
	const op = "backend.ReviewRegistration"

	path := fmt.Sprintf("/events/registrations/%d", id)

	// Completion has its own endpoint; the review endpoint takes only APPROVE and REJECT.
	if action == models.RegistrationComplete {
		return c.call(ctx, op, http.MethodPatch, path+"/complete", nil, nil, nil)
	}

	return c.call(ctx, op, http.MethodPatch, path, nil, actionRequest{Action: string(action)}, nil)
}

func (c *Client) ReviewEvent(ctx context.Context, id int64, action models.EventReviewAction) error {
	const op = "backend.ReviewEvent"

	return c.call(ctx, op, http.MethodPatch, eventPath(id, "/admin-review"), nil, actionRequest{Action: string(action)}, nil)
}

// Export is a file produced by the backend.
type Export struct {
	ContentType string
	Data        []byte
}

func (c *Client) ExportEvents(ctx context.Context, format string) (*Export, error) {
	const op = "backend.ExportEvents"

	resp, err := c.send(ctx, op, http.MethodGet, "/events/export", url.Values{"format": {format}}, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Op: op, StatusCode: resp.StatusCode, Err: err}
	}

	return &Export{ContentType: resp.Header.Get("Content-Type"), Data: data}, nil
}

func (c *Client) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	const op = "backend.Dashboard"

	var d models.Dashboard
	if err := c.call(ctx, op, http.MethodGet, "/events/dashboard", nil, nil, &d); err != nil {
		return nil, err
	}

	return &d, nil
}
