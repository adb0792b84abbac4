package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized user data
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type DealView struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// OwnedItemView is one entry of a user's collection. Brand and ImageURL are set for coupons only.
type OwnedItemView struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Brand       *string   `json:"brand,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

type TradeView struct {
	ID                  uuid.UUID  `json:"id"`
	FromUserID          uuid.UUID  `json:"from_user_id"`
	FromUsername        string     `json:"from_username"`
	ToUserID            uuid.UUID  `json:"to_user_id"`
	ToUsername          string     `json:"to_username"`
	ItemFrom            string     `json:"item_from"`
	ItemFromDescription string     `json:"item_from_description"`
	ItemTo              string     `json:"item_to"`
	ItemToDescription   string     `json:"item_to_description"`
	State               string     `json:"state"`
	CancelledBy         *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelReason        *string    `json:"cancel_reason,omitempty"`
	ExpiresAt           time.Time  `json:"expires_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BudgetView struct {
	PeriodKey string `json:"period_key"`
	Cadence   string `json:"cadence"`
	Allowance int    `json:"allowance"`
	Remaining int    `json:"remaining"`
}
