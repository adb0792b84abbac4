package repository

import (
	"context"
	"time"

	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/clock"
	"dealswap/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type DailyDealRepository struct {
	db db.DBTX
}

func NewDailyDealRepository(db db.DBTX) *DailyDealRepository {
	return &DailyDealRepository{db: db}
}

const findDailyDeal = `
SELECT d.id, d.description, d.created_at, dd.issued_at,
       COALESCE(c.user_id = dd.user_id, FALSE) AS claimed
FROM daily_deals dd
JOIN deals d ON d.id = dd.deal_id
LEFT JOIN claims c ON c.item_id = dd.deal_id
WHERE dd.user_id = $1 AND dd.day = $2`

func (r *DailyDealRepository) Find(ctx context.Context, userID uuid.UUID, day clock.Day) (*deal.DailyDeal, error) {
	var (
		id          string
		description string
		createdAt   time.Time
		issuedAt    time.Time
		claimed     bool
	)
	err := r.db.QueryRow(ctx, findDailyDeal, userID, pgconv.DateToPgtype(day.Start(time.UTC))).
		Scan(&id, &description, &createdAt, &issuedAt, &claimed)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("daily deal not issued", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find daily deal", err)
	}
	return deal.NewDailyDeal(day, deal.ReconstructDeal(item.ID(id), description, createdAt), claimed, issuedAt), nil
}

const tryInsertDailyDeal = `
INSERT INTO daily_deals (user_id, day, deal_id, issued_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, day) DO NOTHING`

func (r *DailyDealRepository) TryInsert(ctx context.Context, userID uuid.UUID, day clock.Day, dealID item.ID, issuedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertDailyDeal, userID, pgconv.DateToPgtype(day.Start(time.UTC)), dealID.String(), issuedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record daily deal", err)
	}
	return tag.RowsAffected() == 1, nil
}
