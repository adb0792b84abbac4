package dealcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/errs"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type Deal struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Record is the single cached slot for one user. Freshness is decided by the
// caller from FetchedAt; the cache itself never expires anything.
type Record struct {
	Day       clock.Day
	Deal      Deal
	Claimed   bool
	Saved     bool
	FetchedAt time.Time
}

type payload struct {
	Day     string `json:"day"`
	Deal    Deal   `json:"deal"`
	Claimed bool   `json:"claimed"`
}

type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

const schema = `CREATE TABLE IF NOT EXISTS daily_deal_slot (
    username   TEXT PRIMARY KEY,
    deal_id    TEXT NOT NULL,
    payload    BLOB NOT NULL,
    saved      INTEGER NOT NULL DEFAULT 0,
    updated_at INTEGER NOT NULL
);`

func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errs.Wrap(err, "open deal cache")
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errs.Wrap(err, "init deal cache schema")
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns nil, nil on a miss. An unreadable slot is also a miss.
func (s *Store) Load(ctx context.Context, username string) (*Record, error) {
	const query = `SELECT payload, saved, updated_at FROM daily_deal_slot WHERE username = ?`

	var (
		raw       []byte
		saved     int
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, username).Scan(&raw, &saved, &updatedAt)
	if errs.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "load deal cache")
	}

	rec, err := decode(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable deal cache slot", zap.String("username", username), zap.Error(err))
		return nil, nil
	}
	rec.Saved = saved != 0
	rec.FetchedAt = time.UnixMilli(updatedAt)
	return rec, nil
}

// Store replaces the slot in one statement so a reader sees the old record or
// the new one, never a mix.
func (s *Store) Store(ctx context.Context, username string, rec Record) error {
	raw, err := json.Marshal(payload{Day: rec.Day.String(), Deal: rec.Deal, Claimed: rec.Claimed})
	if err != nil {
		return errs.Wrap(err, "encode deal cache record")
	}
	fetchedAt := rec.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errs.Wrap(err, "begin deal cache tx")
	}
	defer func() { _ = tx.Rollback() }()

	const stmt = `INSERT INTO daily_deal_slot(username, deal_id, payload, saved, updated_at) VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(username) DO UPDATE SET
            deal_id = excluded.deal_id,
            payload = excluded.payload,
            saved = excluded.saved,
            updated_at = excluded.updated_at`
	if _, err := tx.ExecContext(ctx, stmt, username, rec.Deal.ID, raw, boolToInt(rec.Saved), fetchedAt.UnixMilli()); err != nil {
		return errs.Wrap(err, "store deal cache record")
	}
	if err := tx.Commit(); err != nil {
		return errs.Wrap(err, "commit deal cache record")
	}
	return nil
}

// MarkSaved flags the slot only while it still holds dealID. It reports
// whether a row was updated.
func (s *Store) MarkSaved(ctx context.Context, username, dealID string) (bool, error) {
	const stmt = `UPDATE daily_deal_slot SET saved = 1 WHERE username = ? AND deal_id = ?`
	res, err := s.db.ExecContext(ctx, stmt, username, dealID)
	if err != nil {
		return false, errs.Wrap(err, "mark deal saved")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, errs.Wrap(err, "mark deal saved")
	}
	return n > 0, nil
}

func decode(raw []byte) (*Record, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.Deal.ID == "" {
		return nil, errs.New("cached record has no deal")
	}
	day, err := clock.ParseDay(p.Day)
	if err != nil {
		return nil, err
	}
	return &Record{Day: day, Deal: p.Deal, Claimed: p.Claimed}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
