package repository

import (
	"context"
	"time"

	"dealswap/internal/domain/user"
	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const createUser = `
INSERT INTO users (id, username, password_hash, is_active)
VALUES ($1, $2, $3, $4)`

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, createUser, u.ID(), u.Username().Value(), u.PasswordHash(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

const updateUserLastLogin = `
UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1`

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	tag, err := r.db.Exec(ctx, updateUserLastLogin, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

const findActiveUserIDByUsername = `
SELECT id FROM users WHERE username = $1 AND is_active`

func (r *UserRepository) FindIDByUsername(ctx context.Context, username user.Username) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, findActiveUserIDByUsername, username.Value()).Scan(&id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return id, nil
}
