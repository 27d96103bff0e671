package view

import (
	"volunteerHub/internal/forms"
	"volunteerHub/internal/http-server/live"
	"volunteerHub/internal/models"
	"volunteerHub/internal/reducer"
	"volunteerHub/internal/report"
)

// Page template names.
const (
	PageHome            = "home"
	PageAuth            = "auth"
	PageAbout           = "about"
	PageNotFound        = "not_found"
	PageLoading         = "loading"
	PageError           = "error"
	PageEvents          = "events"
	PageEventDetail     = "event_detail"
	PageMyRegistrations = "my_registrations"
	PageManager         = "manager"
	PageEventForm       = "event_form"
	PageRegistrations   = "registrations"
	PageAdminEvents     = "admin_events"
	PageAdminUsers      = "admin_users"
)

type HomeData struct {
	Featured  []models.Event
	Dashboard *models.Dashboard
}

const (
	AuthModeSignIn = "sign-in"
	AuthModeSignUp = "sign-up"
)

type AuthData struct {
	Mode   string
	SignIn forms.SignIn
	SignUp forms.SignUp
	Errors forms.Errors
}

type EventsData struct {
	Page   *models.Page[models.Event]
	Filter models.EventFilter
	// Current is the one-based page number shown to the user.
	Current int
	Prev    string
	Next    string
}

type EventDetailData struct {
	Event models.Event
	View  reducer.EventView
}

// Signals is the page's initial signal set, with an empty toast.
func (d EventDetailData) Signals() live.Signals {
	return live.Signals{EventView: d.View}
}

type MyRegistrationsData struct {
	Events []models.Event
}

type ManagerData struct {
	Events []models.Event
}

type EventFormData struct {
	EventID int64
	Form    forms.Event
	Errors  forms.Errors
}

func (d EventFormData) Editing() bool {
	return d.EventID > 0
}

type RegistrationsData struct {
	Event         models.Event
	Registrations []models.Registration
	Report        report.Report
}

type AdminEventsData struct {
	Events []models.Event
	Status string
}

type AdminUsersData struct {
	Users []models.User
}

type ErrorData struct {
	Message string
}
