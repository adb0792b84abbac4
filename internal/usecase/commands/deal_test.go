//go:build unit

package commands

import (
	"context"
	"testing"
	"time"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/infra"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var tokyo = time.FixedZone("JST", 9*60*60)

type dealFixture struct {
	uow   *fakeUoW
	pub   *recordingPublisher
	clk   *clock.MockClock
	cmds  DealCommands
	actor shared.Actor
	day   clock.Day
}

func newDealFixture() *dealFixture {
	f := &dealFixture{
		uow:   newFakeUoW(),
		pub:   &recordingPublisher{},
		clk:   clock.NewMockClock(time.Date(2026, 10, 17, 23, 30, 0, 0, tokyo)),
		actor: shared.Actor{UserID: uuid.New(), Username: "alice", SessionID: uuid.New()},
	}
	cal := clock.NewCalendar(tokyo)
	f.day = cal.Day(f.clk.Now())
	f.cmds = NewDealCommands(f.uow, cal, f.clk, f.pub)
	return f
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func TestIssueDailyDeal(t *testing.T) {
	ctx := context.Background()
	coffee := deal.ReconstructDeal("d1", "Free coffee", time.Time{})

	t.Run("first call of the day picks and memoises a deal", func(t *testing.T) {
		f := newDealFixture()
		issued := deal.NewDailyDeal(f.day, coffee, false, f.clk.Now())
		dd := f.uow.tx.dailyDeals
		dd.On("Find", mock.Anything, f.actor.UserID, f.day).Return(nil, notFound("daily deal not issued")).Once()
		f.uow.tx.items.On("PickForDailyIssue", mock.Anything, f.actor.UserID).Return(coffee, nil)
		dd.On("TryInsert", mock.Anything, f.actor.UserID, f.day, item.ID("d1"), f.clk.Now()).Return(true, nil)
		dd.On("Find", mock.Anything, f.actor.UserID, f.day).Return(issued, nil).Once()

		res, err := f.cmds.IssueDailyDeal(ctx, f.actor)

		require.NoError(t, err)
		assert.True(t, res.Issued)
		assert.Equal(t, "d1", res.DealID)
		assert.Equal(t, "2026-10-17", res.Day.String())
		assert.Equal(t, 30*time.Minute, res.NextIssueIn)
		assert.Equal(t, []string{shared.EventDealIssued}, f.pub.types())
		dd.AssertExpectations(t)
	})

	t.Run("repeat call returns the memoised deal without picking", func(t *testing.T) {
		f := newDealFixture()
		issued := deal.NewDailyDeal(f.day, coffee, true, f.clk.Now().Add(-time.Hour))
		f.uow.tx.dailyDeals.On("Find", mock.Anything, f.actor.UserID, f.day).Return(issued, nil)

		res, err := f.cmds.IssueDailyDeal(ctx, f.actor)

		require.NoError(t, err)
		assert.False(t, res.Issued)
		assert.True(t, res.Claimed)
		assert.Empty(t, f.pub.types())
		f.uow.tx.items.AssertNotCalled(t, "PickForDailyIssue", mock.Anything, mock.Anything)
	})

	t.Run("losing a concurrent first issuance returns the winner's deal", func(t *testing.T) {
		f := newDealFixture()
		pizza := deal.ReconstructDeal("d2", "Half-price pizza", time.Time{})
		winner := deal.NewDailyDeal(f.day, coffee, false, f.clk.Now())
		dd := f.uow.tx.dailyDeals
		dd.On("Find", mock.Anything, f.actor.UserID, f.day).Return(nil, notFound("daily deal not issued")).Once()
		f.uow.tx.items.On("PickForDailyIssue", mock.Anything, f.actor.UserID).Return(pizza, nil)
		dd.On("TryInsert", mock.Anything, f.actor.UserID, f.day, item.ID("d2"), mock.Anything).Return(false, nil)
		dd.On("Find", mock.Anything, f.actor.UserID, f.day).Return(winner, nil).Once()

		res, err := f.cmds.IssueDailyDeal(ctx, f.actor)

		require.NoError(t, err)
		assert.Equal(t, "d1", res.DealID)
		assert.False(t, res.Issued)
		assert.Empty(t, f.pub.types())
	})

	t.Run("empty pool is NotFound", func(t *testing.T) {
		f := newDealFixture()
		f.uow.tx.dailyDeals.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, notFound("daily deal not issued"))
		f.uow.tx.items.On("PickForDailyIssue", mock.Anything, mock.Anything).Return(nil, notFound("deal pool is empty"))

		_, err := f.cmds.IssueDailyDeal(ctx, f.actor)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.False(t, errs.Is(err, errs.ErrUnavailable))
	})

	t.Run("database failure is Unavailable", func(t *testing.T) {
		f := newDealFixture()
		f.uow.tx.dailyDeals.On("Find", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, infra.WrapRepoErr("failed to find daily deal", assert.AnError))

		_, err := f.cmds.IssueDailyDeal(ctx, f.actor)

		assert.True(t, errs.Is(err, errs.ErrUnavailable))
	})

	t.Run("missing identity", func(t *testing.T) {
		f := newDealFixture()
		_, err := f.cmds.IssueDailyDeal(ctx, shared.Actor{})
		assert.True(t, errs.Is(err, errs.ErrIdentityRequired))
	})
}

func TestClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("first claim wins and publishes", func(t *testing.T) {
		f := newDealFixture()
		f.uow.tx.items.On("KindOf", mock.Anything, item.ID("couponX")).Return(item.KindCoupon, nil)
		f.uow.tx.claims.On("TryInsert", mock.Anything, mock.MatchedBy(func(c *claim.Claim) bool {
			return c.ItemID() == "couponX" && c.OwnerID() == f.actor.UserID && c.Kind() == item.KindCoupon
		})).Return(true, nil)

		res, err := f.cmds.Claim(ctx, f.actor, "couponX")

		require.NoError(t, err)
		assert.False(t, res.Replayed)
		assert.Equal(t, "coupon", res.Kind)
		assert.Equal(t, []string{shared.EventItemClaimed}, f.pub.types())
		f.uow.tx.claims.AssertNotCalled(t, "FindByItem", mock.Anything, mock.Anything)
	})

	t.Run("claiming an own item again is a replay", func(t *testing.T) {
		f := newDealFixture()
		mine := claim.NewClaim("d1", item.KindDeal, f.actor.UserID, f.clk.Now().Add(-time.Hour))
		f.uow.tx.items.On("KindOf", mock.Anything, item.ID("d1")).Return(item.KindDeal, nil)
		f.uow.tx.claims.On("TryInsert", mock.Anything, mock.Anything).Return(false, nil)
		f.uow.tx.claims.On("FindByItem", mock.Anything, item.ID("d1")).Return(mine, nil)

		res, err := f.cmds.Claim(ctx, f.actor, "d1")

		require.NoError(t, err)
		assert.True(t, res.Replayed)
		assert.Equal(t, mine.ClaimedAt(), res.ClaimedAt)
		assert.Empty(t, f.pub.types())
	})

	t.Run("item owned by someone else", func(t *testing.T) {
		f := newDealFixture()
		theirs := claim.NewClaim("couponX", item.KindCoupon, uuid.New(), f.clk.Now())
		f.uow.tx.items.On("KindOf", mock.Anything, mock.Anything).Return(item.KindCoupon, nil)
		f.uow.tx.claims.On("TryInsert", mock.Anything, mock.Anything).Return(false, nil)
		f.uow.tx.claims.On("FindByItem", mock.Anything, mock.Anything).Return(theirs, nil)

		_, err := f.cmds.Claim(ctx, f.actor, "couponX")

		assert.True(t, errs.Is(err, errs.ErrAlreadyClaimed))
		assert.Empty(t, f.pub.types())
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newDealFixture()
		f.uow.tx.items.On("KindOf", mock.Anything, mock.Anything).Return(item.Kind(""), notFound("item not found"))

		_, err := f.cmds.Claim(ctx, f.actor, "nope")

		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newDealFixture()
		_, err := f.cmds.Claim(ctx, f.actor, "has spaces")
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})

	t.Run("publisher failure does not fail the claim", func(t *testing.T) {
		f := newDealFixture()
		f.pub.err = assert.AnError
		f.uow.tx.items.On("KindOf", mock.Anything, mock.Anything).Return(item.KindDeal, nil)
		f.uow.tx.claims.On("TryInsert", mock.Anything, mock.Anything).Return(true, nil)

		_, err := f.cmds.Claim(ctx, f.actor, "d1")

		assert.NoError(t, err)
	})
}
