package dailydeal

import (
	"context"
	"time"

	"dealswap/internal/client/dealcache"
	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/pkg/clock"

	"go.uber.org/zap"
)

// DealAPI is the slice of the engine SDK this package needs.
type DealAPI interface {
	IssueDailyDeal(ctx context.Context) (*resdto.DailyDealResponse, error)
	Claim(ctx context.Context, itemID string) (*resdto.ClaimResponse, error)
}

type Cache interface {
	Load(ctx context.Context, username string) (*dealcache.Record, error)
	Store(ctx context.Context, username string, rec dealcache.Record) error
	MarkSaved(ctx context.Context, username, dealID string) (bool, error)
}

// Service keeps one user's deal of the day in sync between the local cache
// and the engine.
type Service struct {
	api      DealAPI
	cache    Cache
	cal      clock.Calendar
	clk      clock.Clock
	username string
	logger   *zap.Logger
}

func NewService(api DealAPI, cache Cache, cal clock.Calendar, clk clock.Clock, username string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, cache: cache, cal: cal, clk: clk, username: username, logger: logger}
}

// Today serves the cached deal while it is fresh and asks the engine otherwise.
// Cache failures degrade to a refresh; engine failures are returned as is.
func (s *Service) Today(ctx context.Context) (*dealcache.Record, error) {
	now := s.clk.Now()

	cached, err := s.cache.Load(ctx, s.username)
	if err != nil {
		s.logger.Warn("deal cache unreadable, refreshing", zap.Error(err))
		cached = nil
	}
	if cached != nil && s.cal.IsFresh(&cached.FetchedAt, now) {
		return cached, nil
	}

	res, err := s.api.IssueDailyDeal(ctx)
	if err != nil {
		return nil, err
	}

	day, err := clock.ParseDay(res.Day)
	if err != nil {
		day = s.cal.Day(now)
	}
	rec := dealcache.Record{
		Day:       day,
		Deal:      dealcache.Deal{ID: res.Deal.ID, Description: res.Deal.Description},
		Claimed:   res.Claimed,
		Saved:     res.Claimed,
		FetchedAt: now,
	}
	if cached != nil && cached.Day == rec.Day && cached.Deal.ID == rec.Deal.ID {
		rec.Saved = rec.Saved || cached.Saved
	}

	if err := s.cache.Store(ctx, s.username, rec); err != nil {
		s.logger.Warn("failed to persist daily deal", zap.String("deal_id", rec.Deal.ID), zap.Error(err))
	}
	return &rec, nil
}

// Save claims today's deal. A claim the engine reports as replayed (already
// ours) is treated as success.
func (s *Service) Save(ctx context.Context) (*dealcache.Record, error) {
	rec, err := s.Today(ctx)
	if err != nil {
		return nil, err
	}
	if rec.Saved {
		return rec, nil
	}

	res, err := s.api.Claim(ctx, rec.Deal.ID)
	if err != nil {
		return nil, err
	}
	if res.Replayed {
		s.logger.Debug("daily deal was already ours", zap.String("deal_id", rec.Deal.ID))
	}

	rec.Saved = true
	rec.Claimed = true
	if _, err := s.cache.MarkSaved(ctx, s.username, rec.Deal.ID); err != nil {
		s.logger.Warn("failed to flag deal as saved", zap.String("deal_id", rec.Deal.ID), zap.Error(err))
	}
	return rec, nil
}

// NextRefresh is for display and backoff only.
func (s *Service) NextRefresh(now time.Time) time.Duration {
	return s.cal.UntilNextBoundary(now)
}
