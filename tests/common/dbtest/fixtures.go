//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultPassword = "password123"
	// bcrypt of DefaultPassword
	defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, password_hash, is_active) VALUES ($1, $2, $3, true) ON CONFLICT (username) DO NOTHING",
		userID, username, defaultPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID))
	}

	return userID
}

func CreateDeal(t *testing.T, db DBLike, id, description string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO deals (id, description) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING", id, description)
	require.NoError(t, err)
}

func CreateCoupon(t *testing.T, db DBLike, id, brand, description string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, brand, description) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING", id, brand, description)
	require.NoError(t, err)
}

// GiveItem records userID as the owner of a deal or coupon.
func GiveItem(t *testing.T, db DBLike, userID uuid.UUID, itemID, kind string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO claims (item_id, item_kind, user_id) VALUES ($1, $2, $3)", itemID, kind, userID)
	require.NoError(t, err)
}

func OwnerOf(t *testing.T, db DBLike, itemID string) uuid.UUID {
	t.Helper()
	var owner uuid.UUID
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT user_id FROM claims WHERE item_id = $1", itemID).Scan(&owner))
	return owner
}

func SetBudget(t *testing.T, db DBLike, userID uuid.UUID, periodKey string, remaining int) {
	t.Helper()
	_, err := db.Exec(context.Background(), `
		INSERT INTO trade_budgets (user_id, period_key, remaining) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, period_key) DO UPDATE SET remaining = EXCLUDED.remaining`,
		userID, periodKey, remaining)
	require.NoError(t, err)
}

// ExpireTrade moves a trade's deadline into the past.
func ExpireTrade(t *testing.T, db DBLike, tradeID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"UPDATE trades SET expires_at = now() - interval '1 minute' WHERE id = $1", tradeID)
	require.NoError(t, err)
}

// SeedReferenceData loads the small deal and coupon pool most scenarios start from.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO deals (id, description) VALUES
		    ('d-1001', '50% off at Nike'),
		    ('d-1002', 'Buy one get one free at Adidas'),
		    ('d-1003', 'Free shipping at Zara')
		ON CONFLICT (id) DO NOTHING;
		INSERT INTO coupons (id, brand, description) VALUES
		    ('c-2001', 'Uniqlo', '$5 off HEATTECH'),
		    ('c-2002', 'Sephora', 'Free mini with $35 purchase')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
