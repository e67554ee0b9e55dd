package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Healthcheck reports "ok" while the database answers pings.
func Healthcheck(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, map[string]string{"status": "unavailable"})
			return
		}
		render.JSON(w, r, map[string]string{"status": "ok"})
	}
}
