package shared

import (
	"context"
	"time"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/coupon"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/domain/trade"
	"dealswap/internal/domain/user"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/clock"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx hands out repositories bound to one transaction. Each is created on first use.
type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Claims() ClaimRepository
	DailyDeals() DailyDealRepository
	Trades() TradeRepository
	Budgets() BudgetRepository
	DB() db.DBTX
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	FindIDByUsername(ctx context.Context, username user.Username) (uuid.UUID, error)
}

type ItemRepository interface {
	KindOf(ctx context.Context, id item.ID) (item.Kind, error)
	// PickForDailyIssue returns a random deal, preferring deals nobody but userID owns.
	PickForDailyIssue(ctx context.Context, userID uuid.UUID) (*deal.Deal, error)
	UpsertDeal(ctx context.Context, d *deal.Deal) error
	UpsertCoupon(ctx context.Context, c *coupon.Coupon) error
}

type ClaimRepository interface {
	// TryInsert reports false when the item already has an owner.
	TryInsert(ctx context.Context, c *claim.Claim) (bool, error)
	FindByItem(ctx context.Context, id item.ID) (*claim.Claim, error)
	// Transfer moves id from one owner to another only if from still owns it.
	Transfer(ctx context.Context, id item.ID, from, to uuid.UUID, at time.Time) (bool, error)
}

type DailyDealRepository interface {
	Find(ctx context.Context, userID uuid.UUID, day clock.Day) (*deal.DailyDeal, error)
	// TryInsert reports false when the user already has a deal for day.
	TryInsert(ctx context.Context, userID uuid.UUID, day clock.Day, dealID item.ID, issuedAt time.Time) (bool, error)
}

type TradeRepository interface {
	Create(ctx context.Context, t *trade.Trade) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*trade.Trade, error)
	// SaveTransition persists the trade's new state only if the stored row is still proposed.
	SaveTransition(ctx context.Context, t *trade.Trade) (bool, error)
	LockExpired(ctx context.Context, now time.Time, limit int) ([]*trade.Trade, error)
}

type BudgetRepository interface {
	// Spend takes one unit from the period's budget, creating it at allowance first.
	// ok is false when nothing was left to take.
	Spend(ctx context.Context, userID uuid.UUID, periodKey string, allowance int, at time.Time) (remaining int, ok bool, err error)
}
