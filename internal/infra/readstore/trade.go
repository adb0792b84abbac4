package readstore

import (
	"context"
	"time"

	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TradeReadStore struct {
	db db.DBTX
}

func NewTradeReadStore(db db.DBTX) *TradeReadStore {
	return &TradeReadStore{db: db}
}

const tradeViewSelect = `
SELECT t.id, t.from_user_id, fu.username, t.to_user_id, tu.username,
       t.item_from, COALESCE(df.description, cf.description, ''),
       t.item_to, COALESCE(dt.description, ct.description, ''),
       t.state, t.cancelled_by, t.cancel_reason, t.expires_at, t.created_at, t.updated_at
FROM trades t
JOIN users fu ON fu.id = t.from_user_id
JOIN users tu ON tu.id = t.to_user_id
LEFT JOIN deals df ON df.id = t.item_from
LEFT JOIN coupons cf ON cf.id = t.item_from
LEFT JOIN deals dt ON dt.id = t.item_to
LEFT JOIN coupons ct ON ct.id = t.item_to`

const findTradeViewByID = tradeViewSelect + `
WHERE t.id = $1`

func (r *TradeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TradeView, error) {
	view, err := scanTradeView(r.db.QueryRow(ctx, findTradeViewByID, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find trade", err)
	}
	return view, nil
}

const findTradesByUserFirstPage = tradeViewSelect + `
WHERE (t.from_user_id = $1 OR t.to_user_id = $1)
  AND ($2::text IS NULL OR t.state = $2)
ORDER BY t.created_at DESC, t.id DESC
LIMIT $3`

func (r *TradeReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, state *string, limit int) ([]*queries.TradeView, error) {
	rows, err := r.db.Query(ctx, findTradesByUserFirstPage, userID, pgconv.StringPtrToPgtype(state), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trades", err)
	}
	return collectTradeViews(rows)
}

const findTradesByUserKeyset = tradeViewSelect + `
WHERE (t.from_user_id = $1 OR t.to_user_id = $1)
  AND ($2::text IS NULL OR t.state = $2)
  AND (t.created_at, t.id) < ($3, $4)
ORDER BY t.created_at DESC, t.id DESC
LIMIT $5`

func (r *TradeReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, state *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int) ([]*queries.TradeView, error) {
	rows, err := r.db.Query(ctx, findTradesByUserKeyset, userID, pgconv.StringPtrToPgtype(state), lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trades", err)
	}
	return collectTradeViews(rows)
}

const findBudgetRemaining = `
SELECT remaining FROM trade_budgets WHERE user_id = $1 AND period_key = $2`

func (r *TradeReadStore) BudgetRemaining(ctx context.Context, userID uuid.UUID, periodKey string) (int, bool, error) {
	var remaining int
	err := r.db.QueryRow(ctx, findBudgetRemaining, userID, periodKey).Scan(&remaining)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to read trade budget", err)
	}
	return remaining, true, nil
}

func collectTradeViews(rows pgx.Rows) ([]*queries.TradeView, error) {
	defer rows.Close()

	var views []*queries.TradeView
	for rows.Next() {
		v, err := scanTradeView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan trade", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate trades", err)
	}
	return views, nil
}

func scanTradeView(row pgx.Row) (*queries.TradeView, error) {
	var (
		v            queries.TradeView
		cancelledBy  pgtype.UUID
		cancelReason pgtype.Text
	)
	if err := row.Scan(
		&v.ID, &v.FromUserID, &v.FromUsername, &v.ToUserID, &v.ToUsername,
		&v.ItemFrom, &v.ItemFromDescription,
		&v.ItemTo, &v.ItemToDescription,
		&v.State, &cancelledBy, &cancelReason, &v.ExpiresAt, &v.CreatedAt, &v.UpdatedAt,
	); err != nil {
		return nil, err
	}
	v.CancelledBy = pgconv.UUIDPtrFromPgtype(cancelledBy)
	v.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	return &v, nil
}
