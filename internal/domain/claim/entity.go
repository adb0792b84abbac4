package claim

import (
	"time"

	"dealswap/internal/domain/item"

	"github.com/google/uuid"
)

// Claim records which user owns an item. There is at most one claim per item.
type Claim struct {
	itemID    item.ID
	kind      item.Kind
	ownerID   uuid.UUID
	claimedAt time.Time
}

func NewClaim(itemID item.ID, kind item.Kind, ownerID uuid.UUID, claimedAt time.Time) *Claim {
	return &Claim{itemID: itemID, kind: kind, ownerID: ownerID, claimedAt: claimedAt}
}

func (c *Claim) ItemID() item.ID      { return c.itemID }
func (c *Claim) Kind() item.Kind      { return c.kind }
func (c *Claim) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Claim) ClaimedAt() time.Time { return c.claimedAt }

func (c *Claim) IsOwnedBy(userID uuid.UUID) bool {
	return c.ownerID == userID
}

// Outcome classifies a second claim attempt against an existing ownership record.
type Outcome int

const (
	OutcomeClaimed Outcome = iota
	OutcomeReplayed
	OutcomeTakenByOther
)

// Resolve decides what a claim attempt by userID means given the current owner.
// existing == nil means the attempt created the record.
func Resolve(existing *Claim, userID uuid.UUID) Outcome {
	switch {
	case existing == nil:
		return OutcomeClaimed
	case existing.IsOwnedBy(userID):
		return OutcomeReplayed
	default:
		return OutcomeTakenByOther
	}
}
