package user_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"user-management-api/internal/http/api"
	"user-management-api/internal/http/handlers/handlerstest"
	"user-management-api/internal/http/handlers/mocks"
	"user-management-api/internal/http/handlers/user"
	repo "user-management-api/internal/repository"
	usersvc "user-management-api/internal/service/user"
	"user-management-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
}

// Create

func TestUserHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/create_user", user.CreateUserRequest{
		FullName:  "Ravi Kumar",
		MobNum:    "+91-98765-43210",
		PanNum:    "abcde1234f",
		ManagerID: "m1",
	})
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "Ravi Kumar", "+91-98765-43210", "abcde1234f", "m1").
		Return("u1", nil)

	h.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp api.CreateUserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, api.StatusSuccess, resp.Status)
	assert.Equal(t, "u1", resp.UserID)
}

func TestUserHandler_Create_BadJSON(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/create_user", bytes.NewReader([]byte("{invalid json")))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestUserHandler_Create_MissingFields(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/create_user", map[string]string{"full_name": "Ravi"})
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "mob_num")
	assert.Contains(t, resp.Error.Message, "manager_id")
}

func TestUserHandler_Create_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{name: "validation", err: validation.NewError("pan_num must match the format AAAAA9999A"), code: http.StatusBadRequest, want: api.ErrValidationErr},
		{name: "inactive manager", err: usersvc.ErrManagerInactiveOrMissing, code: http.StatusBadRequest, want: api.ErrCodeManagerInactive},
		{name: "duplicate", err: repo.ErrDuplicateField, code: http.StatusBadRequest, want: api.ErrCodeDuplicateField},
		{name: "internal", err: errors.New("pq: connection refused"), code: http.StatusInternalServerError, want: api.ErrInternalErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockUserService(t)
			h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

			req := newRequest(t, "/create_user", user.CreateUserRequest{
				FullName: "Ravi", MobNum: "9876543210", PanNum: "ABCDE1234F", ManagerID: "m1",
			})
			w := httptest.NewRecorder()

			mockService.On("Create", mock.Anything, "Ravi", "9876543210", "ABCDE1234F", "m1").Return("", tt.err)

			h.Create(w, req)

			assert.Equal(t, tt.code, w.Code)
			resp := handlerstest.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, tt.want, resp.Error.Code)
		})
	}
}

func TestUserHandler_Create_InternalErrorHidesDetail(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/create_user", user.CreateUserRequest{
		FullName: "Ravi", MobNum: "9876543210", PanNum: "ABCDE1234F", ManagerID: "m1",
	})
	w := httptest.NewRecorder()

	mockService.On("Create", mock.Anything, "Ravi", "9876543210", "ABCDE1234F", "m1").
		Return("", errors.New("user_repo.Create: pq: relation \"users\" does not exist"))

	h.Create(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
}

// List

func TestUserHandler_List_EmptyBody(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/get_users", http.NoBody)
	w := httptest.NewRecorder()

	expected := []api.UserSchema{
		{UserID: "u1", FullName: "Ravi", MobNum: "9876543210", PanNum: "ABCDE1234F", ManagerID: "m1", IsActive: true},
	}
	mockService.On("List", mock.Anything, usersvc.ListFilter{}).Return(expected, nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UsersResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, api.StatusSuccess, resp.Status)
	assert.Equal(t, expected, resp.Users)
}

func TestUserHandler_List_WithFilters(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/get_users", user.GetUsersRequest{MobNum: "43210", ManagerID: "m1"})
	w := httptest.NewRecorder()

	mockService.On("List", mock.Anything, usersvc.ListFilter{MobNum: "43210", ManagerID: "m1"}).
		Return([]api.UserSchema{}, nil)

	h.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","users":[]}`, w.Body.String())
}

func TestUserHandler_List_BadJSON(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/get_users", bytes.NewReader([]byte("[")))
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_List_InternalError(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/get_users", http.NoBody)
	w := httptest.NewRecorder()

	mockService.On("List", mock.Anything, usersvc.ListFilter{}).Return(([]api.UserSchema)(nil), errors.New("db error"))

	h.List(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

// Delete

func TestUserHandler_Delete_ByMobile(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/delete_user", user.DeleteUserRequest{MobNum: "+91-98765-43210"})
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, "", "+91-98765-43210").Return(nil)

	h.Delete(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"user deleted successfully"}`, w.Body.String())
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/delete_user", user.DeleteUserRequest{UserID: "ghost"})
	w := httptest.NewRecorder()

	mockService.On("Delete", mock.Anything, "ghost", "").Return(repo.ErrNotFound)

	h.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestUserHandler_Delete_NoIdentifier(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/delete_user", map[string]string{})
	w := httptest.NewRecorder()

	h.Delete(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlerstest.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
}

// Update

func TestUserHandler_Update_Bulk(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/update_user", map[string]any{
		"user_ids":    []string{"A", "B", "C"},
		"update_data": map[string]any{"manager_id": "m2"},
	})
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, []string{"A", "B", "C"}, map[string]any{"manager_id": "m2"}).
		Return(&usersvc.UpdateResult{Kind: usersvc.PlanBulkReassign, UpdatedCount: 2}, nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UpdateUserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, api.StatusSuccess, resp.Status)
	require.NotNil(t, resp.UpdatedCount)
	assert.Equal(t, int64(2), *resp.UpdatedCount)
	assert.Empty(t, resp.NewUserID)
}

func TestUserHandler_Update_BulkZeroRowsStillReportsCount(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/update_user", map[string]any{
		"user_ids":    []string{"X", "Y"},
		"update_data": map[string]any{"manager_id": "m2"},
	})
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, []string{"X", "Y"}, map[string]any{"manager_id": "m2"}).
		Return(&usersvc.UpdateResult{Kind: usersvc.PlanBulkReassign}, nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated_count":0`)
}

func TestUserHandler_Update_History(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/update_user", map[string]any{
		"user_ids":    []string{"old"},
		"update_data": map[string]any{"manager_id": "m2"},
	})
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, []string{"old"}, map[string]any{"manager_id": "m2"}).
		Return(&usersvc.UpdateResult{Kind: usersvc.PlanHistoryReassign, UpdatedCount: 1, NewUserID: "new"}, nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp api.UpdateUserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "new", resp.NewUserID)
	assert.Nil(t, resp.UpdatedCount)
}

func TestUserHandler_Update_Single(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

	req := newRequest(t, "/update_user", map[string]any{
		"user_ids":    []string{"u1"},
		"update_data": map[string]any{"full_name": "Asha"},
	})
	w := httptest.NewRecorder()

	mockService.On("Update", mock.Anything, []string{"u1"}, map[string]any{"full_name": "Asha"}).
		Return(&usersvc.UpdateResult{Kind: usersvc.PlanSingleFieldUpdate, UpdatedCount: 1}, nil)

	h.Update(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","message":"user updated successfully"}`, w.Body.String())
}

func TestUserHandler_Update_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{name: "unsupported bulk", err: usersvc.ErrUnsupportedBulkOperation, code: http.StatusBadRequest, want: api.ErrCodeUnsupportedBulkOper},
		{name: "not found", err: repo.ErrNotFound, code: http.StatusNotFound, want: api.ErrCodeNotFound},
		{name: "inactive manager", err: usersvc.ErrManagerInactiveOrMissing, code: http.StatusBadRequest, want: api.ErrCodeManagerInactive},
		{name: "validation", err: validation.NewError("invalid field in update_data: 'email'"), code: http.StatusBadRequest, want: api.ErrValidationErr},
		{name: "internal", err: errors.New("tx aborted"), code: http.StatusInternalServerError, want: api.ErrInternalErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockUserService(t)
			h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

			req := newRequest(t, "/update_user", map[string]any{
				"user_ids":    []string{"A", "B"},
				"update_data": map[string]any{"full_name": "x"},
			})
			w := httptest.NewRecorder()

			mockService.On("Update", mock.Anything, []string{"A", "B"}, map[string]any{"full_name": "x"}).
				Return((*usersvc.UpdateResult)(nil), tt.err)

			h.Update(w, req)

			assert.Equal(t, tt.code, w.Code)
			resp := handlerstest.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, tt.want, resp.Error.Code)
		})
	}
}

func TestUserHandler_Update_RequestValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing ids", body: map[string]any{"update_data": map[string]any{"full_name": "x"}}},
		{name: "empty ids", body: map[string]any{"user_ids": []string{}, "update_data": map[string]any{"full_name": "x"}}},
		{name: "blank id", body: map[string]any{"user_ids": []string{""}, "update_data": map[string]any{"full_name": "x"}}},
		{name: "missing data", body: map[string]any{"user_ids": []string{"u1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockUserService(t)
			h := user.NewUserHandler(handlerstest.NewLogger(), mockService)

			w := httptest.NewRecorder()
			h.Update(w, newRequest(t, "/update_user", tt.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := handlerstest.DecodeErrorResponse(t, w.Body)
			assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
		})
	}
}
