package request

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

var (
	ErrMissingParam = errors.New("missing url parameter")
	ErrInvalidID    = errors.New("invalid id format")
)

// ID reads a positive integer URL parameter.
func ID(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	if raw == "" {
		return 0, ErrMissingParam
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// WantsJSON reports whether the client asked for JSON rather than a page.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")

	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// Back returns the local page the request came from, or fallback.
func Back(r *http.Request, fallback string) string {
	ref := r.Header.Get("Referer")
	if ref == "" {
		return fallback
	}

	if i := strings.Index(ref, "://"); i >= 0 {
		rest := ref[i+3:]
		if host, path, ok := strings.Cut(rest, "/"); ok && host == r.Host {
			return local("/"+path, fallback)
		}
		return fallback
	}

	return local(ref, fallback)
}

// local keeps only paths that stay on this host.
func local(path, fallback string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return fallback
	}

	return path
}
