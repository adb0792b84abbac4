package response

import (
	"time"

	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeResponse struct {
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

func FromTradeView(v *queries.TradeView) TradeResponse {
	return copyTo[TradeResponse](v)
}

type TradeListResponse struct {
	Trades     []TradeResponse `json:"trades"`
	NextCursor *string         `json:"next_cursor,omitempty"`
}

func FromTradeViews(views []*queries.TradeView, next *string) TradeListResponse {
	trades := make([]TradeResponse, 0, len(views))
	for _, v := range views {
		trades = append(trades, FromTradeView(v))
	}
	return TradeListResponse{Trades: trades, NextCursor: next}
}

// TradeActionResponse answers propose, confirm and cancel.
type TradeActionResponse struct {
	ID              uuid.UUID  `json:"id"`
	FromUserID      uuid.UUID  `json:"from_user_id"`
	ToUserID        uuid.UUID  `json:"to_user_id"`
	ItemFrom        string     `json:"item_from"`
	ItemTo          string     `json:"item_to"`
	State           string     `json:"state"`
	CancelledBy     *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelReason    *string    `json:"cancel_reason,omitempty"`
	ExpiresAt       time.Time  `json:"expires_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	BudgetRemaining *int       `json:"budget_remaining,omitempty"`
}

func FromTradeResult(r *commands.TradeResult) TradeActionResponse {
	return copyTo[TradeActionResponse](r)
}

type BudgetResponse struct {
	PeriodKey string `json:"period_key"`
	Cadence   string `json:"cadence"`
	Allowance int    `json:"allowance"`
	Remaining int    `json:"remaining"`
}

func FromBudgetView(v *queries.BudgetView) BudgetResponse {
	return copyTo[BudgetResponse](v)
}
