// Package live answers datastar requests with signal patches so register and
// cancel update the page without a reload.
package live

import (
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/reducer"
)

const requestHeader = "Datastar-Request"

// Signals is the event detail page's signal set.
type Signals struct {
	reducer.EventView
	Toast flash.Toast `json:"toast"`
}

func IsRequest(r *http.Request) bool {
	return r.Header.Get(requestHeader) == "true"
}

// ReadView decodes the signals the page sent with the request.
func ReadView(r *http.Request) (reducer.EventView, error) {
	const op = "live.ReadView"

	var s Signals
	if err := datastar.ReadSignals(r, &s); err != nil {
		return reducer.EventView{}, fmt.Errorf("%s: %w", op, err)
	}

	return s.EventView, nil
}

// Patch streams one signal patch and ends the response.
func Patch(w http.ResponseWriter, r *http.Request, v reducer.EventView, toast flash.Toast) error {
	const op = "live.Patch"

	sse := datastar.NewSSE(w, r)

	if err := sse.MarshalAndPatchSignals(Signals{EventView: v, Toast: toast}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Toast patches only the toast, leaving the rest of the page as it is.
func Toast(w http.ResponseWriter, r *http.Request, toast flash.Toast) error {
	const op = "live.Toast"

	sse := datastar.NewSSE(w, r)

	if err := sse.MarshalAndPatchSignals(map[string]flash.Toast{"toast": toast}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
