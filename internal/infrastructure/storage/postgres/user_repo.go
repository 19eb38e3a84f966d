package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"pharmapos/internal/core/apperror"
	"pharmapos/internal/domain/auth"
)

const usersTable = "users"

// UserRepo implements auth.Repository.
type UserRepo struct {
	txm     *TxManager
	builder squirrel.StatementBuilderType
}

var _ auth.Repository = (*UserRepo)(nil)

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *TxManager) *UserRepo {
	return &UserRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByUsername retrieves a user, or nil when absent.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	q := r.builder.Select("username", "password", "created_at").
		From(usersTable).
		Where(squirrel.Eq{"username": username}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var user auth.User
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, apperror.NewStorage(err)
	}
	return &user, nil
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.builder.Insert(usersTable).
		Columns("username", "password", "created_at").
		Values(user.Username, user.Password, user.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// Delete removes a user by username.
func (r *UserRepo) Delete(ctx context.Context, username string) error {
	q := r.builder.Delete(usersTable).
		Where(squirrel.Eq{"username": username})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return apperror.NewStorage(err)
	}
	return nil
}

// List returns all operator accounts.
func (r *UserRepo) List(ctx context.Context) ([]auth.User, error) {
	q := r.builder.Select("username", "password", "created_at").
		From(usersTable).
		OrderBy("username")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var users []auth.User
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &users, sql, args...); err != nil {
		return nil, apperror.NewStorage(err)
	}
	return users, nil
}
