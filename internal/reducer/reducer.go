// Package reducer decides how each user action updates what the browser shows:
// either patch the rendered detail in place or reload it from the backend.
package reducer

import (
	"volunteerHub/internal/models"
)

type Action string

const (
	Registered         Action = "registered"
	Cancelled          Action = "cancelled"
	EventCreated       Action = "event_created"
	EventUpdated       Action = "event_updated"
	EventDeleted       Action = "event_deleted"
	EventClosed        Action = "event_closed"
	EventReviewed      Action = "event_reviewed"
	RegistrationReview Action = "registration_reviewed"
)

type Strategy int

const (
	Refetch Strategy = iota
	Patch
)

func (s Strategy) String() string {
	if s == Patch {
		return "patch"
	}
	return "refetch"
}

// StrategyFor returns Refetch for anything it does not know.
func StrategyFor(a Action) Strategy {
	switch a {
	case Registered, Cancelled:
		return Patch
	default:
		return Refetch
	}
}

// EventView is the part of an event detail that register/cancel change. Its
// JSON form is the page's signal set.
type EventView struct {
	RegisteredCount int  `json:"registeredCount"`
	IsRegistered    bool `json:"isRegistered"`
	IsApproved      bool `json:"isApproved"`
}

func ViewOf(e models.Event) EventView {
	return EventView{
		RegisteredCount: e.RegisteredCount,
		IsRegistered:    e.IsRegistered,
		IsApproved:      e.IsApproved,
	}
}

// Event applies a confirmed action to v.
func Event(v EventView, a Action) EventView {
	switch a {
	case Registered:
		v.RegisteredCount++
		v.IsRegistered = true
	case Cancelled:
		if v.RegisteredCount > 0 {
			v.RegisteredCount--
		}
		v.IsRegistered = false
		v.IsApproved = false
	}

	return v
}

// Apply patches a full event the same way Event patches its view.
func Apply(e models.Event, a Action) models.Event {
	v := Event(ViewOf(e), a)

	e.RegisteredCount = v.RegisteredCount
	e.IsRegistered = v.IsRegistered
	e.IsApproved = v.IsApproved

	return e
}
