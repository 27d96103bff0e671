package forms

import (
	"net/url"
	"strconv"
	"time"

	"volunteerHub/internal/models"
)

// DateTimeLocal is the value format of <input type="datetime-local">.
const DateTimeLocal = "2006-01-02T15:04"

// Event is the create/edit event form as submitted.
type Event struct {
	Title       string
	Description string
	CategoryID  string
	Address     string
	City        string
	District    string
	Ward        string
	StartAt     string
	EndAt       string
}

type eventFields struct {
	Title       string    `form:"title" validate:"required,max=255"`
	Description string    `form:"description" validate:"max=2000"`
	CategoryID  int64     `form:"categoryId" validate:"required,gt=0"`
	Address     string    `form:"address" validate:"max=255"`
	City        string    `form:"city" validate:"max=255"`
	District    string    `form:"district" validate:"max=255"`
	Ward        string    `form:"ward" validate:"max=255"`
	StartAt     time.Time `form:"startAt" validate:"required"`
	EndAt       time.Time `form:"endAt" validate:"required,gtfield=StartAt"`
}

var eventMessages = messages{
	"title.required":   "Title is required",
	"title.max":        "Title is too long (max 255 characters)",
	"description.max":  "Description is too long (max 2000 characters)",
	"categoryId":       "Please choose a category",
	"address.max":      "Address is too long (max 255 characters)",
	"city.max":         "City is too long (max 255 characters)",
	"district.max":     "District is too long (max 255 characters)",
	"ward.max":         "Ward is too long (max 255 characters)",
	"startAt.required": "Start time is required",
	"endAt.required":   "End time is required",
	"endAt.gtfield":    "End time must be after start time",
}

func EventFromValues(v url.Values) Event {
	return Event{
		Title:       value(v, "title"),
		Description: value(v, "description"),
		CategoryID:  value(v, "categoryId"),
		Address:     value(v, "address"),
		City:        value(v, "city"),
		District:    value(v, "district"),
		Ward:        value(v, "ward"),
		StartAt:     value(v, "startAt"),
		EndAt:       value(v, "endAt"),
	}
}

// EventFromModel prefills the edit form. The backend reports the category by
// name only, so categoryID is resolved by the caller.
func EventFromModel(e models.Event, categoryID int64) Event {
	f := Event{
		Title:       e.Title,
		Description: e.Description,
		Address:     e.Address,
		City:        e.City,
		District:    e.District,
		Ward:        e.Ward,
	}

	if categoryID > 0 {
		f.CategoryID = strconv.FormatInt(categoryID, 10)
	}

	if !e.StartAt.IsZero() {
		f.StartAt = e.StartAt.Local().Format(DateTimeLocal)
	}

	if !e.EndAt.IsZero() {
		f.EndAt = e.EndAt.Local().Format(DateTimeLocal)
	}

	return f
}

func (f Event) fields() (eventFields, Errors) {
	bad := Errors{}

	out := eventFields{
		Title:       f.Title,
		Description: f.Description,
		Address:     f.Address,
		City:        f.City,
		District:    f.District,
		Ward:        f.Ward,
	}

	if f.CategoryID != "" {
		id, err := strconv.ParseInt(f.CategoryID, 10, 64)
		if err != nil {
			bad.Add("categoryId", eventMessages["categoryId"])
		}
		out.CategoryID = id
	}

	if f.StartAt != "" {
		t, err := time.ParseInLocation(DateTimeLocal, f.StartAt, time.Local)
		if err != nil {
			bad.Add("startAt", "Start time is not a valid date")
		}
		out.StartAt = t
	}

	if f.EndAt != "" {
		t, err := time.ParseInLocation(DateTimeLocal, f.EndAt, time.Local)
		if err != nil {
			bad.Add("endAt", "End time is not a valid date")
		}
		out.EndAt = t
	}

	return out, bad
}

// Validate returns an empty map when the form can be sent.
func (f Event) Validate() Errors {
	fields, errs := f.fields()

	for k, msg := range check(fields, eventMessages) {
		errs.Add(k, msg)
	}

	return errs
}

// Input converts a valid form into the backend payload.
func (f Event) Input() (models.EventInput, Errors) {
	if errs := f.Validate(); !errs.Valid() {
		return models.EventInput{}, errs
	}

	fields, _ := f.fields()

	return models.EventInput{
		Title:       fields.Title,
		Description: fields.Description,
		CategoryID:  fields.CategoryID,
		Address:     fields.Address,
		City:        fields.City,
		District:    fields.District,
		Ward:        fields.Ward,
		StartAt:     models.NewTimestamp(fields.StartAt),
		EndAt:       models.NewTimestamp(fields.EndAt),
	}, nil
}
