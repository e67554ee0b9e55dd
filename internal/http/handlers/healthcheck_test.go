package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-management-api/internal/http/handlers"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name string
		ping error
		code int
		body string
	}{
		{name: "ok", ping: nil, code: http.StatusOK, body: `{"status":"ok"}`},
		{name: "db down", ping: errors.New("dial tcp: refused"), code: http.StatusServiceUnavailable, body: `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handlers.Healthcheck(pingFunc(func(context.Context) error { return tt.ping }))

			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.code, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
