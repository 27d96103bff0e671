package live

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volunteerHub/internal/http-server/flash"
	"volunteerHub/internal/reducer"
)

func TestIsRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/events/1/register", nil)
	assert.False(t, IsRequest(req))

	req.Header.Set("Datastar-Request", "true")
	assert.True(t, IsRequest(req))
}

func TestReadView(t *testing.T) {
	t.Parallel()

	body := `{"registeredCount":3,"isRegistered":false,"isApproved":false,"toast":{"kind":"","message":""}}`
	req := httptest.NewRequest(http.MethodPost, "/events/1/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")

	v, err := ReadView(req)
	require.NoError(t, err)
	assert.Equal(t, reducer.EventView{RegisteredCount: 3}, v)
}

func TestReadViewMalformed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/events/1/register", strings.NewReader("{"))
	req.Header.Set("Datastar-Request", "true")

	_, err := ReadView(req)
	require.Error(t, err)
}

func TestPatch(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/events/1/register", nil)
	rr := httptest.NewRecorder()

	err := Patch(rr, req, reducer.EventView{RegisteredCount: 4, IsRegistered: true}, flash.Success("Registered"))
	require.NoError(t, err)

	assert.Contains(t, rr.Header().Get("Content-Type"), "text/event-stream")

	body := rr.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `"registeredCount":4`)
	assert.Contains(t, body, `"isRegistered":true`)
	assert.Contains(t, body, `"message":"Registered"`)
}

func TestToast(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	require.NoError(t, Toast(rr, httptest.NewRequest(http.MethodPost, "/", nil), flash.Error("Event is full")))

	assert.Contains(t, rr.Body.String(), `"kind":"error"`)
	assert.NotContains(t, rr.Body.String(), "registeredCount")
}
