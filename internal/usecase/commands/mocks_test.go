//go:build unit

package commands

import (
	"context"
	"sync"
	"time"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/coupon"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/domain/trade"
	"dealswap/internal/domain/user"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/usecase/queries"
	"dealswap/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeUoW runs fn once against mocked repositories; commit and rollback are not modelled.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		users:      new(mockUserRepo),
		items:      new(mockItemRepo),
		claims:     new(mockClaimRepo),
		dailyDeals: new(mockDailyDealRepo),
		trades:     new(mockTradeRepo),
		budgets:    new(mockBudgetRepo),
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

type fakeTx struct {
	users      *mockUserRepo
	items      *mockItemRepo
	claims     *mockClaimRepo
	dailyDeals *mockDailyDealRepo
	trades     *mockTradeRepo
	budgets    *mockBudgetRepo
}

func (t *fakeTx) Users() shared.UserRepository           { return t.users }
func (t *fakeTx) Items() shared.ItemRepository           { return t.items }
func (t *fakeTx) Claims() shared.ClaimRepository         { return t.claims }
func (t *fakeTx) DailyDeals() shared.DailyDealRepository { return t.dailyDeals }
func (t *fakeTx) Trades() shared.TradeRepository         { return t.trades }
func (t *fakeTx) Budgets() shared.BudgetRepository       { return t.budgets }
func (t *fakeTx) DB() db.DBTX                            { return nil }

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *mockUserRepo) FindIDByUsername(ctx context.Context, username user.Username) (uuid.UUID, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) KindOf(ctx context.Context, id item.ID) (item.Kind, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(item.Kind), args.Error(1)
}

func (m *mockItemRepo) PickForDailyIssue(ctx context.Context, userID uuid.UUID) (*deal.Deal, error) {
	args := m.Called(ctx, userID)
	d, _ := args.Get(0).(*deal.Deal)
	return d, args.Error(1)
}

func (m *mockItemRepo) UpsertDeal(ctx context.Context, d *deal.Deal) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockItemRepo) UpsertCoupon(ctx context.Context, c *coupon.Coupon) error {
	return m.Called(ctx, c).Error(0)
}

type mockClaimRepo struct{ mock.Mock }

func (m *mockClaimRepo) TryInsert(ctx context.Context, c *claim.Claim) (bool, error) {
	args := m.Called(ctx, c)
	return args.Bool(0), args.Error(1)
}

func (m *mockClaimRepo) FindByItem(ctx context.Context, id item.ID) (*claim.Claim, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*claim.Claim)
	return c, args.Error(1)
}

func (m *mockClaimRepo) Transfer(ctx context.Context, id item.ID, from, to uuid.UUID, at time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, at)
	return args.Bool(0), args.Error(1)
}

type mockDailyDealRepo struct{ mock.Mock }

func (m *mockDailyDealRepo) Find(ctx context.Context, userID uuid.UUID, day clock.Day) (*deal.DailyDeal, error) {
	args := m.Called(ctx, userID, day)
	dd, _ := args.Get(0).(*deal.DailyDeal)
	return dd, args.Error(1)
}

func (m *mockDailyDealRepo) TryInsert(ctx context.Context, userID uuid.UUID, day clock.Day, dealID item.ID, issuedAt time.Time) (bool, error) {
	args := m.Called(ctx, userID, day, dealID, issuedAt)
	return args.Bool(0), args.Error(1)
}

type mockTradeRepo struct{ mock.Mock }

func (m *mockTradeRepo) Create(ctx context.Context, t *trade.Trade) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockTradeRepo) FindForUpdate(ctx context.Context, id uuid.UUID) (*trade.Trade, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*trade.Trade)
	return t, args.Error(1)
}

func (m *mockTradeRepo) SaveTransition(ctx context.Context, t *trade.Trade) (bool, error) {
	args := m.Called(ctx, t)
	return args.Bool(0), args.Error(1)
}

func (m *mockTradeRepo) LockExpired(ctx context.Context, now time.Time, limit int) ([]*trade.Trade, error) {
	args := m.Called(ctx, now, limit)
	ts, _ := args.Get(0).([]*trade.Trade)
	return ts, args.Error(1)
}

type mockBudgetRepo struct{ mock.Mock }

func (m *mockBudgetRepo) Spend(ctx context.Context, userID uuid.UUID, periodKey string, allowance int, at time.Time) (int, bool, error) {
	args := m.Called(ctx, userID, periodKey, allowance, at)
	return args.Int(0), args.Bool(1), args.Error(2)
}

type mockUserReadStore struct{ mock.Mock }

func (m *mockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.UserView)
	return v, args.Error(1)
}

func (m *mockUserReadStore) FindByUsername(ctx context.Context, username string) (*queries.UserView, string, error) {
	args := m.Called(ctx, username)
	v, _ := args.Get(0).(*queries.UserView)
	return v, args.String(1), args.Error(2)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
