package readstore

import (
	"context"

	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(db db.DBTX) *UserReadStore {
	return &UserReadStore{db: db}
}

const findUserByID = `
SELECT id, username, is_active, last_login, created_at FROM users WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var (
		view      queries.UserView
		lastLogin pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findUserByID, id).
		Scan(&view.ID, &view.Username, &view.IsActive, &lastLogin, &view.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, nil
}

const findUserByUsername = `
SELECT id, username, is_active, last_login, created_at, password_hash FROM users WHERE username = $1`

func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	var (
		view         queries.UserView
		lastLogin    pgtype.Timestamptz
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findUserByUsername, username).
		Scan(&view.ID, &view.Username, &view.IsActive, &lastLogin, &view.CreatedAt, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	view.LastLogin = pgconv.TimePtrFromPgtype(lastLogin)
	return &view, passwordHash, nil
}
