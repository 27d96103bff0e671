package session

import (
	"net/http"
	"time"

	"volunteerHub/internal/backend"
)

// CookieStore keeps the backend token in an HttpOnly cookie on the visitor's
// browser. The frontend itself stores nothing.
type CookieStore struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

func (s CookieStore) Load(r *http.Request) backend.Credentials {
	ck, err := r.Cookie(s.Name)
	if err != nil {
		return backend.Credentials{}
	}

	return backend.Credentials{Token: ck.Value}
}

func (s CookieStore) Save(w http.ResponseWriter, creds backend.Credentials) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    creds.Token,
		Path:     "/",
		MaxAge:   int(s.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
