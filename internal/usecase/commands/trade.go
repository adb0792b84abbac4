package commands

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"dealswap/internal/domain/item"
	"dealswap/internal/domain/trade"
	reqdto "dealswap/internal/handler/dto/request"
	"dealswap/internal/infra"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/shared"

	"github.com/google/uuid"
)

const openPairConstraint = "uq_trades_open_pair"

var (
	ErrRecipientNotFound = errs.New("recipient not found")
	ErrTradeNotFound     = errs.New("trade not found")
	ErrTradeResolved     = errs.New("trade already resolved")
	ErrTradeAlreadyOpen  = errs.New("a proposed trade between these users already exists")
	ErrItemNotOwned      = errs.New("not owned by its stated owner")
	ErrNoCancelsLeft     = errs.New("no trade cancels left for this period")
)

type TradeCommands interface {
	ProposeTrade(ctx context.Context, actor shared.Actor, req reqdto.ProposeTradeRequest) (*TradeResult, error)
	// ConfirmTrade swaps both items in one transaction. Only the recipient may confirm.
	ConfirmTrade(ctx context.Context, actor shared.Actor, tradeID uuid.UUID) (*TradeResult, error)
	// CancelTrade charges one unit of the actor's budget; with none left the trade stays proposed.
	CancelTrade(ctx context.Context, actor shared.Actor, tradeID uuid.UUID) (*TradeResult, error)
	// ExpireTrades force-cancels up to limit overdue proposals without charging anyone.
	ExpireTrades(ctx context.Context, limit int) (int, error)
}

type tradeCommandsImpl struct {
	uow       shared.UnitOfWork
	policy    trade.BudgetPolicy
	ttl       time.Duration
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewTradeCommands(
	uow shared.UnitOfWork,
	policy trade.BudgetPolicy,
	ttl time.Duration,
	clk clock.Clock,
	publisher shared.EventPublisher,
) TradeCommands {
	return &tradeCommandsImpl{
		uow:       uow,
		policy:    policy,
		ttl:       ttl,
		clock:     clk,
		publisher: publisher,
	}
}

func (c *tradeCommandsImpl) ProposeTrade(ctx context.Context, actor shared.Actor, req reqdto.ProposeTradeRequest) (*TradeResult, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	toUsername, itemFrom, itemTo, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	now := c.clock.Now()
	var proposed *trade.Trade
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		toUserID, err := tx.Users().FindIDByUsername(ctx, toUsername)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrRecipientNotFound, errs.ErrNotFound)
			}
			return err
		}

		t, err := trade.NewTrade(actor.UserID, toUserID, itemFrom, itemTo, now, c.ttl)
		if err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}

		if err := requireOwner(ctx, tx.Claims(), itemFrom, actor.UserID); err != nil {
			return err
		}
		if err := requireOwner(ctx, tx.Claims(), itemTo, toUserID); err != nil {
			return err
		}

		if err := tx.Trades().Create(ctx, t); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintName(err) == openPairConstraint {
				return errs.Mark(ErrTradeAlreadyOpen, errs.ErrConflict)
			}
			return err
		}
		proposed = t
		return nil
	})
	if err != nil {
		return nil, errs.AsUnavailable(err)
	}

	slog.Info("trade proposed", "trade_id", proposed.ID(), "from", proposed.FromUserID(), "to", proposed.ToUserID())
	shared.PublishAfterCommit(ctx, c.publisher, tradeEvent(shared.EventTradeProposed, proposed))
	return newTradeResult(proposed), nil
}

type transfer struct {
	item     item.ID
	from, to uuid.UUID
}

func (c *tradeCommandsImpl) ConfirmTrade(ctx context.Context, actor shared.Actor, tradeID uuid.UUID) (*TradeResult, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var confirmed *trade.Trade
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		t, err := lockForActor(ctx, tx, tradeID, actor.UserID)
		if err != nil {
			return err
		}
		if err := t.Confirm(actor.UserID, now); err != nil {
			return transitionError(err)
		}

		// Fixed lock order keeps two confirms over the same items from deadlocking.
		transfers := []transfer{
			{item: t.ItemFrom(), from: t.FromUserID(), to: t.ToUserID()},
			{item: t.ItemTo(), from: t.ToUserID(), to: t.FromUserID()},
		}
		sort.Slice(transfers, func(i, j int) bool { return transfers[i].item < transfers[j].item })

		for _, tr := range transfers {
			moved, err := tx.Claims().Transfer(ctx, tr.item, tr.from, tr.to, now)
			if err != nil {
				return err
			}
			if !moved {
				return errs.Mark(errs.Wrap(ErrItemNotOwned, "item "+tr.item.String()), errs.ErrInvalidItem)
			}
		}

		if err := saveTransition(ctx, tx, t); err != nil {
			return err
		}
		confirmed = t
		return nil
	})
	if err != nil {
		return nil, errs.AsUnavailable(err)
	}

	slog.Info("trade confirmed", "trade_id", confirmed.ID(), "by", actor.UserID)
	shared.PublishAfterCommit(ctx, c.publisher, tradeEvent(shared.EventTradeConfirmed, confirmed))
	return newTradeResult(confirmed), nil
}

func (c *tradeCommandsImpl) CancelTrade(ctx context.Context, actor shared.Actor, tradeID uuid.UUID) (*TradeResult, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	periodKey, err := c.policy.PeriodKey(now, actor.SessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdentityRequired)
	}

	var (
		cancelled *trade.Trade
		remaining *int
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		remaining = nil

		t, err := lockForActor(ctx, tx, tradeID, actor.UserID)
		if err != nil {
			return err
		}
		reason, err := t.Cancel(actor.UserID, now)
		if err != nil {
			return transitionError(err)
		}

		if reason.ChargesBudget() {
			left, ok, err := tx.Budgets().Spend(ctx, actor.UserID, periodKey, c.policy.Allowance(), now)
			if err != nil {
				return err
			}
			if !ok {
				return errs.Mark(ErrNoCancelsLeft, errs.ErrBudgetExhausted)
			}
			remaining = &left
		}

		if err := saveTransition(ctx, tx, t); err != nil {
			return err
		}
		cancelled = t
		return nil
	})
	if err != nil {
		return nil, errs.AsUnavailable(err)
	}

	slog.Info("trade cancelled", "trade_id", cancelled.ID(), "by", actor.UserID, "period", periodKey)
	shared.PublishAfterCommit(ctx, c.publisher, tradeEvent(shared.EventTradeCancelled, cancelled))

	res := newTradeResult(cancelled)
	res.BudgetRemaining = remaining
	return res, nil
}

func (c *tradeCommandsImpl) ExpireTrades(ctx context.Context, limit int) (int, error) {
	now := c.clock.Now()
	var expired []*trade.Trade
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		expired = expired[:0]

		overdue, err := tx.Trades().LockExpired(ctx, now, limit)
		if err != nil {
			return err
		}
		for _, t := range overdue {
			if err := t.Expire(now); err != nil {
				slog.Warn("skipping trade that cannot expire", "trade_id", t.ID(), "error", err.Error())
				continue
			}
			saved, err := tx.Trades().SaveTransition(ctx, t)
			if err != nil {
				return err
			}
			if saved {
				expired = append(expired, t)
			}
		}
		return nil
	})
	if err != nil {
		return 0, errs.AsUnavailable(err)
	}

	if len(expired) == 0 {
		return 0, nil
	}

	events := make([]shared.Event, 0, len(expired))
	for _, t := range expired {
		events = append(events, tradeEvent(shared.EventTradeExpired, t))
	}
	slog.Info("expired stale trade proposals", "count", len(expired))
	shared.PublishAfterCommit(ctx, c.publisher, events...)
	return len(expired), nil
}

// lockForActor hides trades the actor is not part of behind NotFound.
func lockForActor(ctx context.Context, tx shared.Tx, tradeID, actorID uuid.UUID) (*trade.Trade, error) {
	t, err := tx.Trades().FindForUpdate(ctx, tradeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrTradeNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	if !t.IsParticipant(actorID) {
		return nil, errs.Mark(ErrTradeNotFound, errs.ErrNotFound)
	}
	return t, nil
}

func saveTransition(ctx context.Context, tx shared.Tx, t *trade.Trade) error {
	saved, err := tx.Trades().SaveTransition(ctx, t)
	if err != nil {
		return err
	}
	if !saved {
		return errs.Mark(ErrTradeResolved, errs.ErrInvalidState)
	}
	return nil
}

func requireOwner(ctx context.Context, claims shared.ClaimRepository, id item.ID, owner uuid.UUID) error {
	c, err := claims.FindByItem(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(errs.Wrap(ErrItemNotOwned, "item "+id.String()), errs.ErrInvalidItem)
		}
		return err
	}
	if !c.IsOwnedBy(owner) {
		return errs.Mark(errs.Wrap(ErrItemNotOwned, "item "+id.String()), errs.ErrInvalidItem)
	}
	return nil
}

func transitionError(err error) error {
	switch {
	case errs.Is(err, trade.ErrNotProposed):
		return errs.Mark(ErrTradeResolved, errs.ErrInvalidState)
	case errs.Is(err, trade.ErrExpired):
		return errs.Mark(err, errs.ErrInvalidState)
	case errs.Is(err, trade.ErrNotRecipient):
		return errs.Mark(err, errs.ErrForbidden)
	case errs.Is(err, trade.ErrNotParticipant):
		return errs.Mark(ErrTradeNotFound, errs.ErrNotFound)
	default:
		return err
	}
}

func tradeEvent(eventType string, t *trade.Trade) shared.Event {
	payload := map[string]any{
		"from_user_id": t.FromUserID().String(),
		"to_user_id":   t.ToUserID().String(),
		"item_from":    t.ItemFrom().String(),
		"item_to":      t.ItemTo().String(),
		"state":        t.State().String(),
	}
	if reason := t.CancelReason(); reason != nil {
		payload["cancel_reason"] = reason.String()
	}
	return shared.Event{
		Type:        eventType,
		AggregateID: t.ID().String(),
		OccurredAt:  t.UpdatedAt(),
		Payload:     payload,
	}
}
