// Package flash carries one toast across a redirect in a short-lived cookie.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const CookieName = "vh_toast"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

type Toast struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Success(msg string) Toast {
	return Toast{Kind: KindSuccess, Message: msg}
}

func Error(msg string) Toast {
	return Toast{Kind: KindError, Message: msg}
}

func (t Toast) Empty() bool {
	return t.Message == ""
}

func Set(w http.ResponseWriter, t Toast) {
	b, err := json.Marshal(t)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the pending toast and expires its cookie. A malformed cookie is
// dropped silently.
func Pop(w http.ResponseWriter, r *http.Request) Toast {
	ck, err := r.Cookie(CookieName)
	if err != nil {
		return Toast{}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	b, err := base64.RawURLEncoding.DecodeString(ck.Value)
	if err != nil {
		return Toast{}
	}

	var t Toast
	if err := json.Unmarshal(b, &t); err != nil {
		return Toast{}
	}

	if t.Kind != KindSuccess && t.Kind != KindError {
		return Toast{}
	}

	return t
}

// Redirect stores t and sends the browser to url with 303 See Other.
func Redirect(w http.ResponseWriter, r *http.Request, url string, t Toast) {
	Set(w, t)
	http.Redirect(w, r, url, http.StatusSeeOther)
}
