package response

import (
	"time"

	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	AccessToken string    `json:"access_token" copier:"Token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
	Username    string    `json:"username"`
	SessionID   uuid.UUID `json:"session_id"`
}

func FromAuthResult(r *commands.AuthResult) AuthResponse {
	return copyTo[AuthResponse](r)
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromUserView(v *queries.UserView) UserResponse {
	return copyTo[UserResponse](v)
}
