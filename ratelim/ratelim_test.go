package ratelim

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestLimitKeysOnHostNotPort(t *testing.T) {
	rl := NewRateLimiter()
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	// one client, a fresh ephemeral port per connection: all requests
	// must drain the same bucket
	denied := 0
	for i := 0; i < 30; i++ {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = fmt.Sprintf("10.0.0.1:%d", 40000+i)
		w := httptest.NewRecorder()
		handler(w, r, nil)
		if w.Code == http.StatusTooManyRequests {
			denied++
		}
	}
	assert.Greater(t, denied, 0, "same host across ports must share one bucket")

	// a different host gets its own bucket
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	handler(w, r, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
