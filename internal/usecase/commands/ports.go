package commands

import (
	"time"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/trade"
	"dealswap/internal/pkg/clock"

	"github.com/google/uuid"
)

// Write-side results keep handlers independent of query views (CQRS separation)
type AuthResult struct {
	UserID    uuid.UUID
	Username  string
	SessionID uuid.UUID
	Token     string
	ExpiresAt time.Time
}

type DailyDealResult struct {
	Day         clock.Day
	DealID      string
	Description string
	Claimed     bool
	IssuedAt    time.Time
	// Issued is true only for the call that created the day's record.
	Issued      bool
	NextIssueIn time.Duration
}

type ClaimResult struct {
	ItemID    string
	Kind      string
	OwnerID   uuid.UUID
	ClaimedAt time.Time
	Replayed  bool
}

type TradeResult struct {
	ID           uuid.UUID
	FromUserID   uuid.UUID
	ToUserID     uuid.UUID
	ItemFrom     string
	ItemTo       string
	State        string
	CancelledBy  *uuid.UUID
	CancelReason *string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
	// BudgetRemaining is set after a charged cancel.
	BudgetRemaining *int
}

func newDailyDealResult(dd *deal.DailyDeal, issued bool, nextIssueIn time.Duration) *DailyDealResult {
	return &DailyDealResult{
		Day:         dd.Day(),
		DealID:      dd.Deal().ID().String(),
		Description: dd.Deal().Description(),
		Claimed:     dd.Claimed(),
		IssuedAt:    dd.IssuedAt(),
		Issued:      issued,
		NextIssueIn: nextIssueIn,
	}
}

func newClaimResult(c *claim.Claim, replayed bool) *ClaimResult {
	return &ClaimResult{
		ItemID:    c.ItemID().String(),
		Kind:      c.Kind().String(),
		OwnerID:   c.OwnerID(),
		ClaimedAt: c.ClaimedAt(),
		Replayed:  replayed,
	}
}

func newTradeResult(t *trade.Trade) *TradeResult {
	res := &TradeResult{
		ID:          t.ID(),
		FromUserID:  t.FromUserID(),
		ToUserID:    t.ToUserID(),
		ItemFrom:    t.ItemFrom().String(),
		ItemTo:      t.ItemTo().String(),
		State:       t.State().String(),
		CancelledBy: t.CancelledBy(),
		ExpiresAt:   t.ExpiresAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if reason := t.CancelReason(); reason != nil {
		s := reason.String()
		res.CancelReason = &s
	}
	return res
}
