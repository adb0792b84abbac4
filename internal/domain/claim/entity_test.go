//go:build unit

package claim_test

import (
	"testing"
	"time"

	"dealswap/internal/domain/claim"
	"dealswap/internal/domain/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	existing := claim.NewClaim("d1", item.KindDeal, owner, time.Now())

	assert.Equal(t, claim.OutcomeClaimed, claim.Resolve(nil, owner))
	assert.Equal(t, claim.OutcomeReplayed, claim.Resolve(existing, owner))
	assert.Equal(t, claim.OutcomeTakenByOther, claim.Resolve(existing, other))
}
