package commands

import (
	"context"
	"log/slog"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/infra"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/shared"
)

var (
	ErrDealPoolEmpty = errs.New("no deals available")
	ErrItemNotFound  = errs.New("item not found")
	ErrItemTaken     = errs.New("item already claimed by another user")
)

type DealCommands interface {
	// IssueDailyDeal returns the caller's deal for today, choosing one on the first call of the day.
	IssueDailyDeal(ctx context.Context, actor shared.Actor) (*DailyDealResult, error)
	// Claim takes ownership of a deal or coupon. Claiming one's own item again succeeds as a replay.
	Claim(ctx context.Context, actor shared.Actor, itemID string) (*ClaimResult, error)
}

type dealCommandsImpl struct {
	uow       shared.UnitOfWork
	calendar  clock.Calendar
	clock     clock.Clock
	publisher shared.EventPublisher
}

func NewDealCommands(uow shared.UnitOfWork, calendar clock.Calendar, clk clock.Clock, publisher shared.EventPublisher) DealCommands {
	return &dealCommandsImpl{
		uow:       uow,
		calendar:  calendar,
		clock:     clk,
		publisher: publisher,
	}
}

func (d *dealCommandsImpl) IssueDailyDeal(ctx context.Context, actor shared.Actor) (*DailyDealResult, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	now := d.clock.Now()
	day := d.calendar.Day(now)

	var (
		issued  *deal.DailyDeal
		created bool
	)
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = false

		existing, err := tx.DailyDeals().Find(ctx, actor.UserID, day)
		if err == nil {
			issued = existing
			return nil
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		picked, err := tx.Items().PickForDailyIssue(ctx, actor.UserID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrDealPoolEmpty, errs.ErrNotFound)
			}
			return err
		}

		// A concurrent first call may win the insert; the re-read returns its choice.
		created, err = tx.DailyDeals().TryInsert(ctx, actor.UserID, day, picked.ID(), now)
		if err != nil {
			return err
		}
		issued, err = tx.DailyDeals().Find(ctx, actor.UserID, day)
		return err
	})
	if err != nil {
		return nil, errs.AsUnavailable(err)
	}

	if created {
		slog.Info("daily deal issued", "user_id", actor.UserID, "day", day.String(), "deal_id", issued.Deal().ID())
		shared.PublishAfterCommit(ctx, d.publisher, shared.Event{
			Type:        shared.EventDealIssued,
			AggregateID: issued.Deal().ID().String(),
			OccurredAt:  now,
			Payload: map[string]any{
				"user_id": actor.UserID.String(),
				"day":     day.String(),
			},
		})
	}

	return newDailyDealResult(issued, created, d.calendar.UntilNextBoundary(now)), nil
}

func (d *dealCommandsImpl) Claim(ctx context.Context, actor shared.Actor, itemID string) (*ClaimResult, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	id, err := item.NewID(itemID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	now := d.clock.Now()
	var (
		owner   *claim.Claim
		outcome claim.Outcome
	)
	err = d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		kind, err := tx.Items().KindOf(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(ErrItemNotFound, errs.ErrNotFound)
			}
			return err
		}

		attempt := claim.NewClaim(id, kind, actor.UserID, now)
		inserted, err := tx.Claims().TryInsert(ctx, attempt)
		if err != nil {
			return err
		}
		if inserted {
			owner, outcome = attempt, claim.OutcomeClaimed
			return nil
		}

		existing, err := tx.Claims().FindByItem(ctx, id)
		if err != nil {
			return err
		}
		owner, outcome = existing, claim.Resolve(existing, actor.UserID)
		return nil
	})
	if err != nil {
		return nil, errs.AsUnavailable(err)
	}

	switch outcome {
	case claim.OutcomeTakenByOther:
		return nil, errs.Mark(ErrItemTaken, errs.ErrAlreadyClaimed)
	case claim.OutcomeReplayed:
		return newClaimResult(owner, true), nil
	}

	slog.Info("item claimed", "user_id", actor.UserID, "item_id", id, "kind", owner.Kind())
	shared.PublishAfterCommit(ctx, d.publisher, shared.Event{
		Type:        shared.EventItemClaimed,
		AggregateID: id.String(),
		OccurredAt:  now,
		Payload: map[string]any{
			"user_id": actor.UserID.String(),
			"kind":    owner.Kind().String(),
		},
	})
	return newClaimResult(owner, false), nil
}
