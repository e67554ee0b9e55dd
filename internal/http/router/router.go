package router

import (
	"log/slog"
	"net/http"

	"user-management-api/internal/http/handlers"
	managerh "user-management-api/internal/http/handlers/manager"
	userh "user-management-api/internal/http/handlers/user"
	mw "user-management-api/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func New(
	log *slog.Logger,
	db handlers.Pinger,
	userHandler *userh.UserHandler,
	managerHandler *managerh.ManagerHandler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mw.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", handlers.Healthcheck(db))

	router.Post("/create_user", userHandler.Create)
	router.Post("/get_users", userHandler.List)
	router.Post("/delete_user", userHandler.Delete)
	router.Post("/update_user", userHandler.Update)
	router.Post("/get_managers", managerHandler.List)

	return router
}
