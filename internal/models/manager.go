package models

type Manager struct {
	ID       string `db:"manager_id" json:"manager_id"`
	Name     string `db:"name"       json:"name"`
	IsActive bool   `db:"is_active"  json:"is_active"`
}
