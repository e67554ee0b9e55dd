package models

import (
	"time"
)

type User struct {
	ID        string     `db:"user_id"`
	FullName  string     `db:"full_name"`
	MobNum    string     `db:"mob_num"`
	PanNum    string     `db:"pan_num"`
	ManagerID string     `db:"manager_id"`
	IsActive  bool       `db:"is_active"`
	CreatedAt *time.Time `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// UserFilter narrows ListActive. Empty fields are ignored.
type UserFilter struct {
	UserID    string
	MobSuffix string
	ManagerID string
}

// UserChanges holds the columns a single-row update may touch.
type UserChanges struct {
	FullName *string
	MobNum   *string
	PanNum   *string
}
