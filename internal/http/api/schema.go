package api

import "time"

type UserSchema struct {
	UserID    string     `json:"user_id"`
	FullName  string     `json:"full_name"`
	MobNum    string     `json:"mob_num"`
	PanNum    string     `json:"pan_num"`
	ManagerID string     `json:"manager_id"`
	IsActive  bool       `json:"is_active"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type ManagerSchema struct {
	ManagerID string `json:"manager_id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"is_active"`
}
