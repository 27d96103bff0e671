package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/lib/logger/sl"
	"volunteerHub/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthAPI
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (backend.Credentials, error)
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Provider owns the unknown → anonymous | authenticated transitions. One
// Provider is built at startup and shared by every request.
type Provider struct {
	log *slog.Logger
	api AuthAPI
	now func() time.Time
}

func NewProvider(log *slog.Logger, api AuthAPI) *Provider {
	return &Provider{
		log: log,
		api: api,
		now: time.Now,
	}
}

// Probe restores a session from stored credentials. It never fails: any
// problem resolves to Anonymous, and only expired or refused credentials are
// reported as Revoked. An unreachable backend leaves them usable for later.
func (p *Provider) Probe(ctx context.Context, creds backend.Credentials) State {
	const op = "session.Provider.Probe"

	if creds.IsZero() {
		return Anonymous()
	}

	log := p.log.With(slog.String("op", op))

	if Expired(creds.Token, p.now()) {
		log.Debug("stored token expired")
		return Revoked()
	}

	u, err := p.api.CurrentUser(backend.WithCredentials(ctx, creds))
	if err != nil {
		if backend.IsUnauthorized(err) {
			log.Info("stored token refused", sl.Err(err))
			return Revoked()
		}

		log.Warn("session probe failed", sl.Err(err))
		return Anonymous()
	}

	return Authenticated(u, creds)
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (State, error) {
	const op = "session.Provider.SignIn"

	creds, err := p.api.Login(ctx, email, password)
	if err != nil {
		return Anonymous(), fmt.Errorf("%s: %w", op, err)
	}

	u, err := p.api.CurrentUser(backend.WithCredentials(ctx, creds))
	if err != nil {
		return Anonymous(), fmt.Errorf("%s: %w", op, err)
	}

	p.log.Info("user signed in", slog.String("op", op), slog.Int64("user_id", u.ID))

	return Authenticated(u, creds), nil
}

// SignUp creates the account; it does not sign the user in.
func (p *Provider) SignUp(ctx context.Context, req models.RegisterRequest) error {
	const op = "session.Provider.SignUp"

	if err := p.api.Register(ctx, req); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SignOut returns Anonymous on success and the unchanged state on failure.
func (p *Provider) SignOut(ctx context.Context, current State) (State, error) {
	const op = "session.Provider.SignOut"

	if current.Credentials.IsZero() {
		return Anonymous(), nil
	}

	if err := p.api.Logout(backend.WithCredentials(ctx, current.Credentials)); err != nil {
		return current, fmt.Errorf("%s: %w", op, err)
	}

	return Anonymous(), nil
}
