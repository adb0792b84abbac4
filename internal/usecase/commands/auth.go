package commands

import (
	"context"
	"log/slog"

	"dealswap/internal/domain/user"
	reqdto "dealswap/internal/handler/dto/request"
	"dealswap/internal/infra"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/pkg/jwt"
	"dealswap/internal/pkg/password"
	"dealswap/internal/usecase/queries"
	"dealswap/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid username or password")
	ErrUserInactive       = errs.New("user account is inactive")
	ErrUsernameTaken      = errs.New("username already taken")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AuthCommands interface {
	Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	hasher *password.Hasher,
	clk clock.Clock,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, req reqdto.SignupRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	hash, err := a.hasher.Hash(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(credentials.Username(), hash)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(ErrUsernameTaken, errs.ErrConflict)
		}
		return nil, errs.AsUnavailable(err)
	}

	slog.Info("user signed up", "user_id", u.ID(), "username", u.Username().Value())
	return a.issueSession(u.ID(), u.Username().Value())
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*AuthResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Same answer as a wrong password to prevent user enumeration
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrIdentityRequired)
	}

	view, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	result, err := a.issueSession(view.ID, view.Username)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, view.ID, a.clock.Now())
	})
	if err != nil {
		// login succeeded, only last_login is stale
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return result, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*queries.UserView, error) {
	view, hashedPassword, err := a.readStore.FindByUsername(ctx, credentials.Username().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrInvalidCredentials, errs.ErrIdentityRequired)
		}
		return nil, errs.AsUnavailable(err)
	}

	if !view.IsActive {
		return nil, errs.Mark(ErrUserInactive, errs.ErrForbidden)
	}

	if err := a.hasher.Compare(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(ErrInvalidCredentials, errs.ErrIdentityRequired)
	}

	return view, nil
}

// Every login starts a new session id; per-session trade budgets key off it.
func (a *authCommandsImpl) issueSession(userID uuid.UUID, username string) (*AuthResult, error) {
	sessionID := uuid.New()
	token, err := a.jwtService.GenerateToken(userID, username, sessionID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &AuthResult{
		UserID:    userID,
		Username:  username,
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: a.clock.Now().Add(a.jwtService.TokenDuration()),
	}, nil
}
