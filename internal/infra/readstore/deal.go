package readstore

import (
	"context"

	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DealReadStore struct {
	db db.DBTX
}

func NewDealReadStore(db db.DBTX) *DealReadStore {
	return &DealReadStore{db: db}
}

// $2 = exclude every claimed deal; otherwise only the caller's own are skipped.
const findCandidateDeals = `
SELECT d.id, d.description
FROM deals d
LEFT JOIN claims c ON c.item_id = d.id
WHERE c.item_id IS NULL OR (NOT $2 AND c.user_id <> $1)
ORDER BY random()
LIMIT $3`

func (r *DealReadStore) Candidates(ctx context.Context, userID uuid.UUID, excludeClaimed bool, limit int) ([]queries.DealView, error) {
	rows, err := r.db.Query(ctx, findCandidateDeals, userID, excludeClaimed, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch candidate deals", err)
	}
	defer rows.Close()

	deals := make([]queries.DealView, 0, limit)
	for rows.Next() {
		var d queries.DealView
		if err := rows.Scan(&d.ID, &d.Description); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate deal", err)
		}
		deals = append(deals, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate candidate deals", err)
	}
	return deals, nil
}

const findOwnedItems = `
SELECT c.item_id, c.item_kind,
       COALESCE(d.description, cp.description, '') AS description,
       cp.brand, cp.image_url, c.claimed_at
FROM claims c
LEFT JOIN deals d ON c.item_kind = 'deal' AND d.id = c.item_id
LEFT JOIN coupons cp ON c.item_kind = 'coupon' AND cp.id = c.item_id
WHERE c.user_id = $1
ORDER BY c.claimed_at DESC, c.item_id`

func (r *DealReadStore) OwnedItems(ctx context.Context, userID uuid.UUID) ([]queries.OwnedItemView, error) {
	rows, err := r.db.Query(ctx, findOwnedItems, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owned items", err)
	}
	defer rows.Close()

	var items []queries.OwnedItemView
	for rows.Next() {
		var (
			v        queries.OwnedItemView
			brand    pgtype.Text
			imageURL pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.Kind, &v.Description, &brand, &imageURL, &v.ClaimedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan owned item", err)
		}
		v.Brand = pgconv.StringPtrFromPgtype(brand)
		v.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate owned items", err)
	}
	return items, nil
}
