package models

import (
	"encoding/json"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "ACTIVE"
	UserStatusLocked UserStatus = "LOCKED"
)

// Role is the backend's role record. Some endpoints send "id", others "roleId".
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r *Role) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID     *int   `json:"id"`
		RoleID *int   `json:"roleId"`
		Name   string `json:"name"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	r.Name = raw.Name
	r.ID = 0

	switch {
	case raw.ID != nil:
		r.ID = *raw.ID
	case raw.RoleID != nil:
		r.ID = *raw.RoleID
	}

	return nil
}

type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	Role        Role       `json:"role"`
	Status      UserStatus `json:"status,omitempty"`
	CreatedAt   Timestamp  `json:"createdAt"`
}

func (u User) Active() bool {
	return u.Status == "" || u.Status == UserStatusActive
}

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}
