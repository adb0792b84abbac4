//go:build unit

package queries_test

import (
	"context"
	"time"

	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockDealReadStore struct{ mock.Mock }

func (m *mockDealReadStore) Candidates(ctx context.Context, userID uuid.UUID, excludeClaimed bool, limit int) ([]queries.DealView, error) {
	args := m.Called(ctx, userID, excludeClaimed, limit)
	deals, _ := args.Get(0).([]queries.DealView)
	return deals, args.Error(1)
}

func (m *mockDealReadStore) OwnedItems(ctx context.Context, userID uuid.UUID) ([]queries.OwnedItemView, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]queries.OwnedItemView)
	return items, args.Error(1)
}

type mockTradeReadStore struct{ mock.Mock }

func (m *mockTradeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TradeView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.TradeView)
	return v, args.Error(1)
}

func (m *mockTradeReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, state *string, limit int) ([]*queries.TradeView, error) {
	args := m.Called(ctx, userID, state, limit)
	v, _ := args.Get(0).([]*queries.TradeView)
	return v, args.Error(1)
}

func (m *mockTradeReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, state *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]*queries.TradeView, error) {
	args := m.Called(ctx, userID, state, lastCreatedAt, lastID, limit)
	v, _ := args.Get(0).([]*queries.TradeView)
	return v, args.Error(1)
}

func (m *mockTradeReadStore) BudgetRemaining(ctx context.Context, userID uuid.UUID, periodKey string) (int, bool, error) {
	args := m.Called(ctx, userID, periodKey)
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
