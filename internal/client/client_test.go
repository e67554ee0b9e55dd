package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"user-management-api/internal/client"
	"user-management-api/internal/http/api"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, h http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, 5*time.Second)
}

func TestClient_CreateUser(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create_user", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body client.CreateUserInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ravi", body.FullName)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, api.CreateUserResponse{Status: api.StatusSuccess, Message: "ok", UserID: "u1"})
	})

	resp, err := c.CreateUser(context.Background(), client.CreateUserInput{
		FullName: "Ravi", MobNum: "9876543210", PanNum: "ABCDE1234F", ManagerID: "m1",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)
}

func TestClient_DeleteUser_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"mob_num": "9876543210"}, body)

		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, "user not found"))
	})

	err := c.DeleteUser(context.Background(), "", "9876543210")

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, api.ErrCodeNotFound, apiErr.Code)
}

func TestClient_UpdateUsers(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			UserIDs    []string       `json:"user_ids"`
			UpdateData map[string]any `json:"update_data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"A", "B"}, body.UserIDs)
		assert.Equal(t, "m2", body.UpdateData["manager_id"])

		count := int64(2)
		render.JSON(w, r, api.UpdateUserResponse{Status: api.StatusSuccess, Message: "done", UpdatedCount: &count})
	})

	resp, err := c.UpdateUsers(context.Background(), []string{"A", "B"}, map[string]any{"manager_id": "m2"})

	require.NoError(t, err)
	require.NotNil(t, resp.UpdatedCount)
	assert.Equal(t, int64(2), *resp.UpdatedCount)
}

func TestClient_ListCalls(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get_users":
			render.JSON(w, r, api.UsersResponse{Status: api.StatusSuccess, Users: []api.UserSchema{{UserID: "u1"}}})
		case "/get_managers":
			render.JSON(w, r, api.ManagersResponse{Status: api.StatusSuccess, Managers: []api.ManagerSchema{{ManagerID: "m1"}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	users, err := c.GetUsers(context.Background(), client.UserFilter{ManagerID: "m1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", users[0].UserID)

	managers, err := c.GetManagers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m1", managers[0].ManagerID)
}
