package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"user-management-api/internal/http/api"
	"user-management-api/internal/http/handlers"
	"user-management-api/internal/lib/sl"
	repo "user-management-api/internal/repository"
	usersvc "user-management-api/internal/service/user"
	"user-management-api/internal/validation"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type userService interface {
	Create(ctx context.Context, fullName, mobNum, panNum, managerID string) (string, error)
	List(ctx context.Context, filter usersvc.ListFilter) ([]api.UserSchema, error)
	Delete(ctx context.Context, userID, mobNum string) error
	Update(ctx context.Context, userIDs []string, fields map[string]any) (*usersvc.UpdateResult, error)
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

type CreateUserRequest struct {
	FullName  string `json:"full_name"  validate:"required"`
	MobNum    string `json:"mob_num"    validate:"required"`
	PanNum    string `json:"pan_num"    validate:"required"`
	ManagerID string `json:"manager_id" validate:"required"`
}

type GetUsersRequest struct {
	UserID    string `json:"user_id,omitempty"`
	MobNum    string `json:"mob_num,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id,omitempty" validate:"required_without=MobNum"`
	MobNum string `json:"mob_num,omitempty" validate:"required_without=UserID"`
}

type UpdateUserRequest struct {
	UserIDs    []string       `json:"user_ids"    validate:"required,min=1,dive,required"`
	UpdateData map[string]any `json:"update_data" validate:"required"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input CreateUserRequest
	if !decodeAndValidate(w, r, log, &input) {
		return
	}

	userID, err := h.service.Create(r.Context(), input.FullName, input.MobNum, input.PanNum, input.ManagerID)
	if err != nil {
		writeServiceError(w, r, log, err, "error while creating user")
		return
	}

	log.Info("user created successfully", slog.String("user_id", userID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.CreateUserResponse{
		Status:  api.StatusSuccess,
		Message: "user created successfully",
		UserID:  userID,
	})
}

// List accepts an empty body, which means "no filters".
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input GetUsersRequest
	if err := render.DecodeJSON(r.Body, &input); err != nil && !errors.Is(err, io.EOF) {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	users, err := h.service.List(r.Context(), usersvc.ListFilter{
		UserID:    input.UserID,
		MobNum:    input.MobNum,
		ManagerID: input.ManagerID,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while listing users")
		return
	}

	log.Info("users retrieved", slog.Int("count", len(users)))
	render.JSON(w, r, api.UsersResponse{
		Status: api.StatusSuccess,
		Users:  users,
	})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input DeleteUserRequest
	if !decodeAndValidate(w, r, log, &input) {
		return
	}

	if err := h.service.Delete(r.Context(), input.UserID, input.MobNum); err != nil {
		writeServiceError(w, r, log, err, "error while deleting user")
		return
	}

	log.Info("user deleted successfully")
	render.JSON(w, r, api.Message("user deleted successfully"))
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input UpdateUserRequest
	if !decodeAndValidate(w, r, log, &input) {
		return
	}

	res, err := h.service.Update(r.Context(), input.UserIDs, input.UpdateData)
	if err != nil {
		writeServiceError(w, r, log, err, "error while updating user")
		return
	}

	resp := api.UpdateUserResponse{Status: api.StatusSuccess}
	switch res.Kind {
	case usersvc.PlanBulkReassign:
		count := res.UpdatedCount
		resp.Message = fmt.Sprintf("manager_id updated for %d user(s)", count)
		resp.UpdatedCount = &count
	case usersvc.PlanHistoryReassign:
		resp.Message = "manager changed, previous record deactivated"
		resp.NewUserID = res.NewUserID
	default:
		resp.Message = "user updated successfully"
	}

	log.Info("user update applied", slog.String("plan", res.Kind.String()))
	render.JSON(w, r, resp)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, log *slog.Logger, input any) bool {
	if err := render.DecodeJSON(r.Body, input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return false
	}

	if err := handlers.Validator().Struct(input); err != nil {
		log.Error("invalid request", sl.Err(err))

		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateErr))
		return false
	}

	return true
}

// writeServiceError maps service and repository errors to responses. Unknown
// errors are logged in full and answered with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, internalMsg string) {
	var vErr *validation.ValidationError

	switch {
	case errors.As(err, &vErr):
		log.Info("invalid input", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrValidationErr, vErr.Msg))
	case errors.Is(err, usersvc.ErrManagerInactiveOrMissing):
		log.Info("manager rejected", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeManagerInactive, err.Error()))
	case errors.Is(err, repo.ErrDuplicateField):
		log.Info("duplicate user", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeDuplicateField, err.Error()))
	case errors.Is(err, usersvc.ErrUnsupportedBulkOperation):
		log.Info("bulk update rejected", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeUnsupportedBulkOper, err.Error()))
	case errors.Is(err, repo.ErrNotFound):
		log.Info("user not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, "user not found"))
	default:
		log.Error(internalMsg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
