package models

import (
	"net/url"
	"strconv"
	"strings"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "PENDING"
	EventStatusApproved  EventStatus = "APPROVED"
	EventStatusOngoing   EventStatus = "ONGOING"
	EventStatusCompleted EventStatus = "COMPLETED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusRejected  EventStatus = "REJECTED"
)

// Event is the backend's event detail as seen by the current viewer.
type Event struct {
	ID              int64       `json:"eventId"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	CategoryName    string      `json:"categoryName"`
	Address         string      `json:"address"`
	City            string      `json:"city"`
	District        string      `json:"district"`
	Ward            string      `json:"ward"`
	StartAt         Timestamp   `json:"startAt"`
	EndAt           Timestamp   `json:"endAt"`
	Status          EventStatus `json:"status"`
	CreatedBy       string      `json:"createdBy"`
	RegisteredCount int         `json:"registeredCount"`
	IsRegistered    bool        `json:"isRegistered"`
	IsApproved      bool        `json:"isApproved"`
}

func (e Event) FullAddress() string {
	parts := make([]string, 0, 4)

	for _, p := range []string{e.Address, e.Ward, e.District, e.City} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ", ")
}

// Closed reports whether the event reached a terminal status.
func (e Event) Closed() bool {
	switch e.Status {
	case EventStatusCompleted, EventStatusCancelled, EventStatusRejected:
		return true
	}

	return false
}

type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CategoryID  int64     `json:"categoryId"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	District    string    `json:"district,omitempty"`
	Ward        string    `json:"ward,omitempty"`
	StartAt     Timestamp `json:"startAt"`
	EndAt       Timestamp `json:"endAt"`
}

type CloseAction string

const (
	CloseComplete CloseAction = "COMPLETE"
	CloseCancel   CloseAction = "CANCEL"
)

type EventReviewAction string

const (
	EventApprove EventReviewAction = "APPROVE"
	EventReject  EventReviewAction = "REJECT"
)

type EventSummary struct {
	ID              int64       `json:"eventId"`
	Title           string      `json:"title"`
	City            string      `json:"city"`
	StartAt         Timestamp   `json:"startAt"`
	Status          EventStatus `json:"status"`
	RegisteredCount int64       `json:"registeredCount"`
}

type Dashboard struct {
	UpcomingEvents      []EventSummary `json:"upcomingEvents"`
	HotEvents           []EventSummary `json:"hotEvents"`
	NewPostsEvents      []EventSummary `json:"newPostsEvents"`
	UnreadNotifications int            `json:"unreadNotifications"`
}

// EventFilter holds the list query. Page is zero-based like the backend's.
type EventFilter struct {
	Category string `validate:"max=255"`
	City     string `validate:"max=255"`
	District string `validate:"max=255"`
	Ward     string `validate:"max=255"`
	Status   string `validate:"omitempty,oneof=PENDING APPROVED ONGOING COMPLETED CANCELLED REJECTED"`
	Page     int    `validate:"min=0"`
	Size     int    `validate:"min=0,max=100"`
	Sort     string `validate:"max=64"`
}

func (f EventFilter) Values() url.Values {
	v := url.Values{}

	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}

	set("category", f.Category)
	set("city", f.City)
	set("district", f.District)
	set("ward", f.Ward)
	set("status", f.Status)
	set("sort", f.Sort)

	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}

	if f.Size > 0 {
		v.Set("size", strconv.Itoa(f.Size))
	}

	return v
}

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

func (p Page[T]) Empty() bool {
	return len(p.Content) == 0
}

func (p Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages
}

func (p Page[T]) HasPrev() bool {
	return p.Number > 0
}
