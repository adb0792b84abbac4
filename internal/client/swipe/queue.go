package swipe

import (
	"context"
	"sync"

	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/pkg/errs"

	"go.uber.org/zap"
)

// LowWaterMark is the queue length below which a refill is fetched.
const LowWaterMark = 2

var (
	ErrNotTop = errs.New("deal is not at the top of the queue")
	ErrClosed = errs.New("swipe queue closed")
)

type DealAPI interface {
	FetchCandidateBatch(ctx context.Context, excludeClaimed bool, limit int) ([]resdto.DealResponse, error)
	Claim(ctx context.Context, itemID string) (*resdto.ClaimResponse, error)
}

type Deal struct {
	ID          string
	Description string
}

type State int

const (
	Ready State = iota
	NoDeals
)

func (s State) String() string {
	if s == NoDeals {
		return "no_deals"
	}
	return "ready"
}

// Outcome reports how an accepted deal's claim ended. Err is nil on success.
type Outcome struct {
	DealID string
	Err    error
}

// Queue is one session's ordered buffer of candidate deals. Deals are shown
// from the front and never reordered; refills append to the back.
type Queue struct {
	api    DealAPI
	batch  int
	logger *zap.Logger

	mu       sync.Mutex
	items    []Deal
	pending  map[string]struct{}
	claimed  map[string]struct{}
	warnings []Outcome
	closed   bool

	outcomes chan Outcome
	closing  chan struct{}
	wg       sync.WaitGroup
}

// New creates an empty queue. batch <= 0 lets the engine pick its default.
func New(api DealAPI, batch int, logger *zap.Logger) *Queue {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Queue{
		api:      api,
		batch:    batch,
		logger:   logger,
		pending:  make(map[string]struct{}),
		claimed:  make(map[string]struct{}),
		outcomes: make(chan Outcome, 16),
		closing:  make(chan struct{}),
	}
}

func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrClosed
	}
	return q.fill(ctx)
}

func (q *Queue) Top() (Deal, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Deal{}, false
	}
	return q.items[0], true
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return NoDeals
	}
	return Ready
}

// Decide applies a swipe on dealID, which must be the current top. An
// accepted deal is claimed in the background and reported on Outcomes.
// A failed refill is returned but the swipe itself has already landed.
func (q *Queue) Decide(ctx context.Context, dealID string, accepted bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if len(q.items) == 0 || q.items[0].ID != dealID {
		return errs.Wrap(ErrNotTop, dealID)
	}
	q.items = q.items[1:]

	if accepted {
		q.pending[dealID] = struct{}{}
		q.wg.Add(1)
		go q.claim(dealID)
	}

	if len(q.items) < LowWaterMark {
		return q.fill(ctx)
	}
	return nil
}

// Outcomes is closed by Close.
func (q *Queue) Outcomes() <-chan Outcome {
	return q.outcomes
}

func (q *Queue) Claimed() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	ids := make([]string, 0, len(q.claimed))
	for id := range q.claimed {
		ids = append(ids, id)
	}
	return ids
}

func (q *Queue) Warnings() []Outcome {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Outcome(nil), q.warnings...)
}

// Close stops new decisions and waits for claims already sent; the SDK
// timeout bounds the wait. Outcomes nobody reads are still recorded in
// Claimed and Warnings.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	close(q.closing)
	q.wg.Wait()
	close(q.outcomes)
}

// claim runs detached from Close: a sent claim is never abandoned.
func (q *Queue) claim(dealID string) {
	defer q.wg.Done()

	_, err := q.api.Claim(context.Background(), dealID)

	q.mu.Lock()
	delete(q.pending, dealID)
	out := Outcome{DealID: dealID, Err: err}
	if err == nil {
		q.claimed[dealID] = struct{}{}
	} else {
		q.warnings = append(q.warnings, out)
		q.logger.Warn("claim failed", zap.String("deal_id", dealID), zap.Error(err))
	}
	q.mu.Unlock()

	select {
	case q.outcomes <- out:
		return
	default:
	}
	select {
	case q.outcomes <- out:
	case <-q.closing:
	}
}

// fill must be called with mu held.
func (q *Queue) fill(ctx context.Context) error {
	deals, err := q.api.FetchCandidateBatch(ctx, true, q.batch)
	if err != nil {
		return errs.Wrap(err, "fetch candidate batch")
	}

	seen := make(map[string]struct{}, len(q.items))
	for _, d := range q.items {
		seen[d.ID] = struct{}{}
	}

	added := 0
	for _, d := range deals {
		if _, ok := seen[d.ID]; ok {
			continue
		}
		if _, ok := q.pending[d.ID]; ok {
			continue
		}
		if _, ok := q.claimed[d.ID]; ok {
			continue
		}
		seen[d.ID] = struct{}{}
		q.items = append(q.items, Deal{ID: d.ID, Description: d.Description})
		added++
	}

	q.logger.Debug("swipe queue refilled", zap.Int("fetched", len(deals)), zap.Int("added", added), zap.Int("len", len(q.items)))
	return nil
}
