package booking

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestHandleEventBookingsWSRejectsPlainHTTP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/ws/events/ev-1/bookings", nil)
	w := httptest.NewRecorder()

	HandleEventBookingsWS(w, r, httprouter.Params{{Key: "eventid", Value: "ev-1"}})

	// the upgrader writes the handshake error itself; the handler must
	// not append a second response on top of it
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, w.Body.String(), "WebSocket upgrade failed")
}
