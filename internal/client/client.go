package client

import (
	"context"
	"fmt"
	"time"

	"user-management-api/internal/http/api"

	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: c}
}

type CreateUserInput struct {
	FullName  string `json:"full_name"`
	MobNum    string `json:"mob_num"`
	PanNum    string `json:"pan_num"`
	ManagerID string `json:"manager_id"`
}

type UserFilter struct {
	UserID    string `json:"user_id,omitempty"`
	MobNum    string `json:"mob_num,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (*api.CreateUserResponse, error) {
	var out api.CreateUserResponse
	if err := c.post(ctx, "/create_user", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUsers(ctx context.Context, filter UserFilter) ([]api.UserSchema, error) {
	var out api.UsersResponse
	if err := c.post(ctx, "/get_users", filter, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// DeleteUser deletes by userID when set, otherwise by mobNum.
func (c *Client) DeleteUser(ctx context.Context, userID, mobNum string) error {
	body := map[string]string{}
	if userID != "" {
		body["user_id"] = userID
	}
	if mobNum != "" {
		body["mob_num"] = mobNum
	}

	var out api.MessageResponse
	return c.post(ctx, "/delete_user", body, &out)
}

func (c *Client) UpdateUsers(ctx context.Context, userIDs []string, data map[string]any) (*api.UpdateUserResponse, error) {
	body := map[string]any{
		"user_ids":    userIDs,
		"update_data": data,
	}

	var out api.UpdateUserResponse
	if err := c.post(ctx, "/update_user", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetManagers(ctx context.Context) ([]api.ManagerSchema, error) {
	var out api.ManagersResponse
	if err := c.post(ctx, "/get_managers", struct{}{}, &out); err != nil {
		return nil, err
	}
	return out.Managers, nil
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	var errResp api.ErrorResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(result).
		SetError(&errResp).
		Post(path)
	if err != nil {
		return fmt.Errorf("client.post %s: %w", path, err)
	}

	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Code:       errResp.Error.Code,
			Message:    errResp.Error.Message,
		}
	}

	return nil
}
