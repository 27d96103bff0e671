package forms

import (
	"net/url"

	"volunteerHub/internal/models"
)

type SignIn struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

var signInMessages = messages{
	"email.required":    "Email is required",
	"email.email":       "Email is not valid",
	"password.required": "Password is required",
}

func SignInFromValues(v url.Values) SignIn {
	return SignIn{
		Email:    value(v, "email"),
		Password: v.Get("password"),
	}
}

func (f SignIn) Validate() Errors {
	return check(f, signInMessages)
}

type SignUp struct {
	Email       string `form:"email" validate:"required,email"`
	Password    string `form:"password" validate:"required,min=6"`
	FullName    string `form:"fullName" validate:"required,max=255"`
	PhoneNumber string `form:"phoneNumber" validate:"required,max=32"`
}

var signUpMessages = messages{
	"email.required":       "Email is required",
	"email.email":          "Email is not valid",
	"password.required":    "Password is required",
	"password.min":         "Password must be at least 6 characters",
	"fullName.required":    "Full name is required",
	"fullName.max":         "Full name is too long (max 255 characters)",
	"phoneNumber.required": "Phone number is required",
	"phoneNumber.max":      "Phone number is too long",
}

func SignUpFromValues(v url.Values) SignUp {
	return SignUp{
		Email:       value(v, "email"),
		Password:    v.Get("password"),
		FullName:    value(v, "fullName"),
		PhoneNumber: value(v, "phoneNumber"),
	}
}

func (f SignUp) Validate() Errors {
	return check(f, signUpMessages)
}

func (f SignUp) Request() models.RegisterRequest {
	return models.RegisterRequest{
		Email:       f.Email,
		Password:    f.Password,
		FullName:    f.FullName,
		PhoneNumber: f.PhoneNumber,
	}
}
