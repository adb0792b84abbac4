package queries

import (
	"context"
	"time"

	"dealswap/internal/domain/trade"
	"dealswap/internal/infra"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTradeNotFound = errs.New("trade not found")

type TradeFilter struct {
	State *trade.State
}

type TradeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TradeView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, state *string, limit int) ([]*TradeView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, state *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]*TradeView, error)
	// BudgetRemaining reports found=false when the period has no budget row yet.
	BudgetRemaining(ctx context.Context, userID uuid.UUID, periodKey string) (remaining int, found bool, err error)
}

type TradeQueries interface {
	GetTradeDetails(ctx context.Context, actorID, tradeID uuid.UUID) (*TradeView, error)
	ListTrades(ctx context.Context, actorID uuid.UUID, filter TradeFilter, cursor *Cursor, limit int) ([]*TradeView, *Cursor, error)
	GetBudget(ctx context.Context, actorID, sessionID uuid.UUID) (*BudgetView, error)
}

type tradeQueriesImpl struct {
	readStore TradeReadStore
	policy    trade.BudgetPolicy
	clock     clock.Clock
}

func NewTradeQueries(readStore TradeReadStore, policy trade.BudgetPolicy, clk clock.Clock) TradeQueries {
	return &tradeQueriesImpl{
		readStore: readStore,
		policy:    policy,
		clock:     clk,
	}
}

// GetTradeDetails hides trades the actor is not part of behind NotFound.
func (q *tradeQueriesImpl) GetTradeDetails(ctx context.Context, actorID, tradeID uuid.UUID) (*TradeView, error) {
	if actorID == uuid.Nil {
		return nil, errs.ErrIdentityRequired
	}

	view, err := q.readStore.FindByID(ctx, tradeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrTradeNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrUnavailable)
	}

	if view.FromUserID != actorID && view.ToUserID != actorID {
		return nil, errs.Mark(ErrTradeNotFound, errs.ErrNotFound)
	}
	return view, nil
}

func (q *tradeQueriesImpl) ListTrades(ctx context.Context, actorID uuid.UUID, filter TradeFilter, cursor *Cursor, limit int) ([]*TradeView, *Cursor, error) {
	if actorID == uuid.Nil {
		return nil, nil, errs.ErrIdentityRequired
	}

	var state *string
	if filter.State != nil {
		s := filter.State.String()
		state = &s
	}

	limit = ValidateLimit(limit)
	var rows []*TradeView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.readStore.FindByUserFirstPage(ctx, actorID, state, limit+1)
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, errs.Mark(derr, errs.ErrValidation)
		}
		rows, err = q.readStore.FindByUserKeyset(ctx, actorID, state, lastCreatedAt, lastID, limit+1)
	}
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrUnavailable)
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	if rows == nil {
		rows = []*TradeView{}
	}
	return rows, next, nil
}

func (q *tradeQueriesImpl) GetBudget(ctx context.Context, actorID, sessionID uuid.UUID) (*BudgetView, error) {
	if actorID == uuid.Nil {
		return nil, errs.ErrIdentityRequired
	}

	key, err := q.policy.PeriodKey(q.clock.Now(), sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdentityRequired)
	}

	remaining, found, err := q.readStore.BudgetRemaining(ctx, actorID, key)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnavailable)
	}
	if !found {
		remaining = q.policy.Allowance()
	}

	return &BudgetView{
		PeriodKey: key,
		Cadence:   string(q.policy.Cadence()),
		Allowance: q.policy.Allowance(),
		Remaining: remaining,
	}, nil
}
