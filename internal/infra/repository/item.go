package repository

import (
	"context"
	"time"

	"dealswap/internal/domain/coupon"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(db db.DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const findItemKind = `
SELECT 'deal' FROM deals WHERE id = $1
UNION ALL
SELECT 'coupon' FROM coupons WHERE id = $1
LIMIT 1`

func (r *ItemRepository) KindOf(ctx context.Context, id item.ID) (item.Kind, error) {
	var kind string
	err := r.db.QueryRow(ctx, findItemKind, id.String()).Scan(&kind)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to look up item", err)
	}
	return item.Kind(kind), nil
}

// Deals owned by someone else sort last; random order within each group.
const pickDailyDeal = `
SELECT d.id, d.description, d.created_at
FROM deals d
LEFT JOIN claims c ON c.item_id = d.id
ORDER BY (c.user_id IS NOT NULL AND c.user_id <> $1), random()
LIMIT 1`

func (r *ItemRepository) PickForDailyIssue(ctx context.Context, userID uuid.UUID) (*deal.Deal, error) {
	var (
		id          string
		description string
		createdAt   time.Time
	)
	err := r.db.QueryRow(ctx, pickDailyDeal, userID).Scan(&id, &description, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("deal pool is empty", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to pick daily deal", err)
	}
	return deal.ReconstructDeal(item.ID(id), description, createdAt), nil
}

const upsertDeal = `
INSERT INTO deals (id, description) VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET description = EXCLUDED.description`

func (r *ItemRepository) UpsertDeal(ctx context.Context, d *deal.Deal) error {
	if _, err := r.db.Exec(ctx, upsertDeal, d.ID().String(), d.Description()); err != nil {
		return infra.WrapRepoErr("failed to upsert deal", err)
	}
	return nil
}

const upsertCoupon = `
INSERT INTO coupons (id, brand, description, image_url) VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET brand = EXCLUDED.brand, description = EXCLUDED.description, image_url = EXCLUDED.image_url`

func (r *ItemRepository) UpsertCoupon(ctx context.Context, c *coupon.Coupon) error {
	if _, err := r.db.Exec(ctx, upsertCoupon, c.ID().String(), c.Brand(), c.Description(), c.ImageURL()); err != nil {
		return infra.WrapRepoErr("failed to upsert coupon", err)
	}
	return nil
}
