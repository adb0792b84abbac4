package queries

import (
	"context"

	"dealswap/internal/infra"
	"dealswap/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// FindByUsername also returns the password hash for credential checks.
	FindByUsername(ctx context.Context, username string) (*UserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrIdentityRequired
	}

	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrUserNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrUnavailable)
	}

	if !user.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrIdentityRequired)
	}

	return user, nil
}
