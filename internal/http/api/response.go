package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	ErrInternalErr             = "INTERNAL_ERROR"
	ErrValidationErr           = "VALIDATION_ERROR"
	ErrBadRequest              = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeManagerInactive     = "MANAGER_INACTIVE_OR_MISSING"
	ErrCodeDuplicateField      = "DUPLICATE_FIELD"
	ErrCodeUnsupportedBulkOper = "UNSUPPORTED_BULK_OPERATION"
)

type CreateUserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type UsersResponse struct {
	Status string       `json:"status"`
	Users  []UserSchema `json:"users"`
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type UpdateUserResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	UpdatedCount *int64 `json:"updated_count,omitempty"`
	NewUserID    string `json:"new_user_id,omitempty"`
}

type ManagersResponse struct {
	Status   string          `json:"status"`
	Managers []ManagerSchema `json:"managers"`
}

type ErrorResponse struct {
	Status string      `json:"status"`
	Error  ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Message(msg string) MessageResponse {
	return MessageResponse{
		Status:  StatusSuccess,
		Message: msg,
	}
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return Error(ErrInternalErr, "internal server error")
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "required_without":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' or an alternative identifier is required", err.Field()))
		case "min":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must contain at least %s item(s)", err.Field(), err.Param()),
			)
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return Error(ErrValidationErr, strings.Join(errMsgs, ", "))
}
