package repository

import (
	"context"
	"time"

	"dealswap/internal/infra"
	"dealswap/internal/infra/db"
	"dealswap/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BudgetRepository struct {
	db db.DBTX
}

func NewBudgetRepository(db db.DBTX) *BudgetRepository {
	return &BudgetRepository{db: db}
}

const ensureBudget = `
INSERT INTO trade_budgets (user_id, period_key, remaining, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, period_key) DO NOTHING`

// The WHERE clause keeps remaining from ever going below zero, even under concurrent spends.
const spendBudget = `
UPDATE trade_budgets SET remaining = remaining - 1, updated_at = $3
WHERE user_id = $1 AND period_key = $2 AND remaining > 0
RETURNING remaining`

func (r *BudgetRepository) Spend(ctx context.Context, userID uuid.UUID, periodKey string, allowance int, at time.Time) (int, bool, error) {
	if _, err := r.db.Exec(ctx, ensureBudget, userID, periodKey, allowance, at); err != nil {
		return 0, false, infra.WrapRepoErr("failed to open trade budget", err)
	}

	var remaining int
	err := r.db.QueryRow(ctx, spendBudget, userID, periodKey, at).Scan(&remaining)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to spend trade budget", err)
	}
	return remaining, true, nil
}
