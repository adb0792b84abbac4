package queries

import (
	"context"

	"dealswap/internal/pkg/errs"
	"dealswap/internal/pkg/patch"

	"github.com/google/uuid"
)

// MaxCandidateBatch caps a single candidate fetch regardless of what the caller asks for.
const MaxCandidateBatch = 50

type CandidateFilter struct {
	// ExcludeClaimed drops every owned deal; when false only the caller's own deals are dropped.
	ExcludeClaimed bool
	Limit          int
}

type DealReadStore interface {
	Candidates(ctx context.Context, userID uuid.UUID, excludeClaimed bool, limit int) ([]DealView, error)
	OwnedItems(ctx context.Context, userID uuid.UUID) ([]OwnedItemView, error)
}

type DealQueries interface {
	// FetchCandidateBatch returns random distinct deals. An exhausted pool yields an empty slice, not an error.
	FetchCandidateBatch(ctx context.Context, userID uuid.UUID, filter CandidateFilter) ([]DealView, error)
	ListOwnedItems(ctx context.Context, userID uuid.UUID) ([]OwnedItemView, error)
}

type dealQueriesImpl struct {
	readStore        DealReadStore
	defaultBatchSize int
}

func NewDealQueries(readStore DealReadStore, defaultBatchSize int) DealQueries {
	return &dealQueriesImpl{
		readStore:        readStore,
		defaultBatchSize: patch.Clamp(defaultBatchSize, 10, MaxCandidateBatch),
	}
}

func (q *dealQueriesImpl) FetchCandidateBatch(ctx context.Context, userID uuid.UUID, filter CandidateFilter) ([]DealView, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrIdentityRequired
	}

	limit := patch.Clamp(filter.Limit, q.defaultBatchSize, MaxCandidateBatch)
	deals, err := q.readStore.Candidates(ctx, userID, filter.ExcludeClaimed, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnavailable)
	}
	if deals == nil {
		deals = []DealView{}
	}
	return deals, nil
}

func (q *dealQueriesImpl) ListOwnedItems(ctx context.Context, userID uuid.UUID) ([]OwnedItemView, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrIdentityRequired
	}

	items, err := q.readStore.OwnedItems(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnavailable)
	}
	if items == nil {
		items = []OwnedItemView{}
	}
	return items, nil
}
