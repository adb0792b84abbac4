package repository

import (
	"context"
	"time"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/item"
	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ClaimRepository struct {
	db db.DBTX
}

func NewClaimRepository(db db.DBTX) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// Concurrent inserts for the same item serialize on the primary key; the
// loser waits for the winner to commit and then inserts nothing.
const tryInsertClaim = `
INSERT INTO claims (item_id, item_kind, user_id, claimed_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
ON CONFLICT (item_id) DO NOTHING`

func (r *ClaimRepository) TryInsert(ctx context.Context, c *claim.Claim) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertClaim, c.ItemID().String(), c.Kind().String(), c.OwnerID(), c.ClaimedAt())
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert claim", err)
	}
	return tag.RowsAffected() == 1, nil
}

const findClaimByItem = `
SELECT item_id, item_kind, user_id, claimed_at FROM claims WHERE item_id = $1`

func (r *ClaimRepository) FindByItem(ctx context.Context, id item.ID) (*claim.Claim, error) {
	var (
		itemID    string
		kind      string
		ownerID   uuid.UUID
		claimedAt time.Time
	)
	err := r.db.QueryRow(ctx, findClaimByItem, id.String()).Scan(&itemID, &kind, &ownerID, &claimedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim", err)
	}
	return claim.NewClaim(item.ID(itemID), item.Kind(kind), ownerID, claimedAt), nil
}

const transferClaim = `
UPDATE claims SET user_id = $3, updated_at = $4
WHERE item_id = $1 AND user_id = $2`

func (r *ClaimRepository) Transfer(ctx context.Context, id item.ID, from, to uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, transferClaim, id.String(), from, to, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transfer claim", err)
	}
	return tag.RowsAffected() == 1, nil
}
