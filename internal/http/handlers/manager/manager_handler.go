package manager

import (
	"context"
	"log/slog"
	"net/http"

	"user-management-api/internal/http/api"
	"user-management-api/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type managerService interface {
	List(ctx context.Context) ([]api.ManagerSchema, error)
}

type ManagerHandler struct {
	log     *slog.Logger
	service managerService
}

func NewManagerHandler(log *slog.Logger, s managerService) *ManagerHandler {
	return &ManagerHandler{
		log:     log,
		service: s,
	}
}

func (h *ManagerHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.manager.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	managers, err := h.service.List(r.Context())
	if err != nil {
		log.Error("error while retrieving managers", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("managers retrieved", slog.Int("count", len(managers)))
	render.JSON(w, r, api.ManagersResponse{
		Status:   api.StatusSuccess,
		Managers: managers,
	})
}
