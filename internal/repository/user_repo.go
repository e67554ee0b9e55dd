package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"user-management-api/internal/lib"
	"user-management-api/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error)
	GetActiveByID(ctx context.Context, userID string) (*models.User, error)
	ListActive(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	Deactivate(ctx context.Context, userID string) error
	Update(ctx context.Context, userID string, changes models.UserChanges) error
	SetManager(ctx context.Context, userIDs []string, managerID string) (int64, error)
	DeleteByID(ctx context.Context, userID string) error
	DeleteByMobile(ctx context.Context, mobNum string) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

const userColumns = `user_id, full_name, mob_num, pan_num, manager_id, is_active, created_at, updated_at`

func (r *UserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (user_id, full_name, mob_num, pan_num, manager_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, now(), now())
		RETURNING user_id;
	`

	var userID string
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, user.ID, user.FullName, user.MobNum, user.PanNum, user.ManagerID).
		Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrDuplicateField
		}
		return "", lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) GetActiveByID(ctx context.Context, userID string) (*models.User, error) {
	const op = "user_repo.GetActiveByID"

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1 AND is_active = TRUE
		FOR UPDATE;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) ListActive(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	const op = "user_repo.ListActive"

	conds := []string{"is_active = TRUE"}
	var args []any

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.MobSuffix != "" {
		args = append(args, filter.MobSuffix)
		conds = append(conds, fmt.Sprintf("mob_num LIKE '%%' || $%d::text", len(args)))
	}
	if filter.ManagerID != "" {
		args = append(args, filter.ManagerID)
		conds = append(conds, fmt.Sprintf("manager_id = $%d", len(args)))
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` +
		strings.Join(conds, " AND ") +
		` ORDER BY created_at, user_id`

	users := []*models.User{}
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) Deactivate(ctx context.Context, userID string) error {
	const op = "user_repo.Deactivate"

	query := `UPDATE users SET is_active = FALSE, updated_at = now() WHERE user_id = $1`

	return r.execOne(ctx, op, query, userID)
}

// Update writes the non-nil columns of changes. manager_id is never touched here.
func (r *UserRepo) Update(ctx context.Context, userID string, changes models.UserChanges) error {
	const op = "user_repo.Update"

	sets := []string{"updated_at = now()"}
	var args []any

	if changes.FullName != nil {
		args = append(args, *changes.FullName)
		sets = append(sets, fmt.Sprintf("full_name = $%d", len(args)))
	}
	if changes.MobNum != nil {
		args = append(args, *changes.MobNum)
		sets = append(sets, fmt.Sprintf("mob_num = $%d", len(args)))
	}
	if changes.PanNum != nil {
		args = append(args, *changes.PanNum)
		sets = append(sets, fmt.Sprintf("pan_num = $%d", len(args)))
	}

	args = append(args, userID)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE user_id = $%d`, strings.Join(sets, ", "), len(args))

	return r.execOne(ctx, op, query, args...)
}

// SetManager reassigns every listed user in a single statement and reports
// how many rows changed. Unknown ids are skipped silently.
func (r *UserRepo) SetManager(ctx context.Context, userIDs []string, managerID string) (int64, error) {
	const op = "user_repo.SetManager"

	query := `
		UPDATE users
		SET manager_id = $1, updated_at = now()
		WHERE user_id = ANY($2);
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, managerID, pq.Array(userIDs))
	if err != nil {
		return 0, lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return rowsAffected, nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, userID string) error {
	const op = "user_repo.DeleteByID"

	return r.execOne(ctx, op, `DELETE FROM users WHERE user_id = $1`, userID)
}

// DeleteByMobile removes every row, active or not, carrying mobNum.
func (r *UserRepo) DeleteByMobile(ctx context.Context, mobNum string) error {
	const op = "user_repo.DeleteByMobile"

	return r.execOne(ctx, op, `DELETE FROM users WHERE mob_num = $1`, mobNum)
}

// execOne runs a write and maps "no rows affected" to ErrNotFound.
func (r *UserRepo) execOne(ctx context.Context, op, query string, args ...any) error {
	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateField
		}
		return lib.Err(op, err)
	}

	// did the statement touch any row
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
