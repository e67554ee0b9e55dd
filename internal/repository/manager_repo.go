package repo

import (
	"context"
	"database/sql"
	"errors"

	"user-management-api/internal/lib"
	"user-management-api/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type ManagerRepository interface {
	GetByID(ctx context.Context, managerID string) (*models.Manager, error)
	List(ctx context.Context) ([]*models.Manager, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, manager *models.Manager) error
}

type ManagerRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewManagerRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ManagerRepo {
	return &ManagerRepo{
		db:     db,
		getter: c,
	}
}

// GetByID locks the manager row for the rest of the surrounding transaction.
func (r *ManagerRepo) GetByID(ctx context.Context, managerID string) (*models.Manager, error) {
	const op = "manager_repo.GetByID"

	query := `
		SELECT manager_id, name, is_active
		FROM managers
		WHERE manager_id = $1
		FOR SHARE;
	`

	var manager models.Manager
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &manager, query, managerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &manager, nil
}

func (r *ManagerRepo) List(ctx context.Context) ([]*models.Manager, error) {
	const op = "manager_repo.List"

	query := `
		SELECT manager_id, name, is_active
		FROM managers
		ORDER BY name;
	`

	managers := []*models.Manager{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &managers, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return managers, nil
}

func (r *ManagerRepo) Count(ctx context.Context) (int, error) {
	const op = "manager_repo.Count"

	var n int
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &n, `SELECT COUNT(*) FROM managers`)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return n, nil
}

func (r *ManagerRepo) Create(ctx context.Context, manager *models.Manager) error {
	const op = "manager_repo.Create"

	query := `
		INSERT INTO managers (manager_id, name, is_active)
		VALUES ($1, $2, $3);
	`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, manager.ID, manager.Name, manager.IsActive)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}
