package repository

import (
	"context"
	"time"

	"dealswap/internal/domain/item"
	"dealswap/internal/domain/trade"
	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type TradeRepository struct {
	db db.DBTX
}

func NewTradeRepository(db db.DBTX) *TradeRepository {
	return &TradeRepository{db: db}
}

const tradeColumns = `id, from_user_id, to_user_id, item_from, item_to, state,
       cancelled_by, cancel_reason, expires_at, created_at, updated_at`

const createTrade = `
INSERT INTO trades (id, from_user_id, to_user_id, item_from, item_to, state, expires_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *TradeRepository) Create(ctx context.Context, t *trade.Trade) error {
	_, err := r.db.Exec(ctx, createTrade,
		t.ID(), t.FromUserID(), t.ToUserID(),
		t.ItemFrom().String(), t.ItemTo().String(),
		t.State().String(), t.ExpiresAt(), t.CreatedAt(), t.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create trade", err)
	}
	return nil
}

const findTradeForUpdate = `SELECT ` + tradeColumns + ` FROM trades WHERE id = $1 FOR UPDATE`

func (r *TradeRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*trade.Trade, error) {
	t, err := scanTrade(r.db.QueryRow(ctx, findTradeForUpdate, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trade not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock trade", err)
	}
	return t, nil
}

const saveTradeTransition = `
UPDATE trades
SET state = $2, cancelled_by = $3, cancel_reason = $4, updated_at = $5
WHERE id = $1 AND state = 'proposed'`

func (r *TradeRepository) SaveTransition(ctx context.Context, t *trade.Trade) (bool, error) {
	var reason *string
	if cr := t.CancelReason(); cr != nil {
		s := cr.String()
		reason = &s
	}
	tag, err := r.db.Exec(ctx, saveTradeTransition,
		t.ID(), t.State().String(),
		pgconv.UUIDPtrToPgtype(t.CancelledBy()), pgconv.StringPtrToPgtype(reason),
		t.UpdatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to save trade transition", err)
	}
	return tag.RowsAffected() == 1, nil
}

// SKIP LOCKED leaves rows that a confirm or cancel is working on to that transaction.
const lockExpiredTrades = `SELECT ` + tradeColumns + `
FROM trades
WHERE state = 'proposed' AND expires_at <= $1
ORDER BY expires_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

func (r *TradeRepository) LockExpired(ctx context.Context, now time.Time, limit int) ([]*trade.Trade, error) {
	rows, err := r.db.Query(ctx, lockExpiredTrades, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock expired trades", err)
	}
	defer rows.Close()

	var trades []*trade.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan expired trade", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expired trades", err)
	}
	return trades, nil
}

func scanTrade(row pgx.Row) (*trade.Trade, error) {
	var (
		id, fromUserID, toUserID    uuid.UUID
		itemFrom, itemTo, state     string
		cancelledBy                 pgtype.UUID
		cancelReason                pgtype.Text
		expiresAt, createdAt, updAt time.Time
	)
	if err := row.Scan(
		&id, &fromUserID, &toUserID, &itemFrom, &itemTo, &state,
		&cancelledBy, &cancelReason, &expiresAt, &createdAt, &updAt,
	); err != nil {
		return nil, err
	}

	var reason *trade.CancelReason
	if s := pgconv.StringPtrFromPgtype(cancelReason); s != nil {
		r := trade.CancelReason(*s)
		reason = &r
	}

	return trade.ReconstructTrade(
		id, fromUserID, toUserID,
		item.ID(itemFrom), item.ID(itemTo),
		trade.State(state),
		pgconv.UUIDPtrFromPgtype(cancelledBy), reason,
		expiresAt, createdAt, updAt,
	), nil
}
