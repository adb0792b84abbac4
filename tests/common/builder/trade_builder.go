//go:build unit || e2e

package builder

import (
	"time"

	reqdto "dealswap/internal/handler/dto/request"
	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type TradeBuilder struct {
	ID         uuid.UUID
	FromUserID uuid.UUID
	ToUserID   uuid.UUID
	ToUsername string
	ItemFrom   string
	ItemTo     string
	State      string
	CreatedAt  time.Time
	TTL        time.Duration
}

func NewTradeBuilder() *TradeBuilder {
	return &TradeBuilder{
		ID:         uuid.New(),
		FromUserID: uuid.New(),
		ToUserID:   uuid.New(),
		ToUsername: "bob",
		ItemFrom:   "d-1001",
		ItemTo:     "c-2001",
		State:      "proposed",
		CreatedAt:  time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		TTL:        24 * time.Hour,
	}
}

func (b *TradeBuilder) WithParticipants(from, to uuid.UUID) *TradeBuilder {
	b.FromUserID = from
	b.ToUserID = to
	return b
}

func (b *TradeBuilder) WithState(state string) *TradeBuilder {
	b.State = state
	return b
}

func (b *TradeBuilder) WithCreatedAt(at time.Time) *TradeBuilder {
	b.CreatedAt = at
	return b
}

func (b *TradeBuilder) BuildProposeDTO() reqdto.ProposeTradeRequest {
	return reqdto.ProposeTradeRequest{
		ToUsername: b.ToUsername,
		ItemFrom:   b.ItemFrom,
		ItemTo:     b.ItemTo,
	}
}

func (b *TradeBuilder) BuildResult() *commands.TradeResult {
	return &commands.TradeResult{
		ID:         b.ID,
		FromUserID: b.FromUserID,
		ToUserID:   b.ToUserID,
		ItemFrom:   b.ItemFrom,
		ItemTo:     b.ItemTo,
		State:      b.State,
		ExpiresAt:  b.CreatedAt.Add(b.TTL),
		UpdatedAt:  b.CreatedAt,
	}
}

func (b *TradeBuilder) BuildView() *queries.TradeView {
	return &queries.TradeView{
		ID:                  b.ID,
		FromUserID:          b.FromUserID,
		FromUsername:        "alice",
		ToUserID:            b.ToUserID,
		ToUsername:          b.ToUsername,
		ItemFrom:            b.ItemFrom,
		ItemFromDescription: "Half-price ramen",
		ItemTo:              b.ItemTo,
		ItemToDescription:   "Free coffee refill",
		State:               b.State,
		ExpiresAt:           b.CreatedAt.Add(b.TTL),
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.CreatedAt,
	}
}
