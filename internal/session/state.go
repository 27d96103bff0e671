package session

import (
	"context"

	"volunteerHub/internal/backend"
	"volunteerHub/internal/models"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusAnonymous
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is what the frontend believes about the visitor.
type State struct {
	Status      Status
	User        *models.User
	Credentials backend.Credentials
	// Revoked marks stored credentials the backend will never accept again.
	Revoked bool
}

func Unknown() State {
	return State{Status: StatusUnknown}
}

func Anonymous() State {
	return State{Status: StatusAnonymous}
}

// Revoked is Anonymous for a visitor whose stored credentials were refused or
// have expired.
func Revoked() State {
	return State{Status: StatusAnonymous, Revoked: true}
}

func Authenticated(u *models.User, creds backend.Credentials) State {
	return State{Status: StatusAuthenticated, User: u, Credentials: creds}
}

func (s State) SignedIn() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

type stateKey struct{}

func NewContext(ctx context.Context, s State) context.Context {
	return context.WithValue(ctx, stateKey{}, s)
}

// FromContext returns Unknown when no probe ran for ctx.
func FromContext(ctx context.Context) State {
	if s, ok := ctx.Value(stateKey{}).(State); ok {
		return s
	}

	return Unknown()
}
