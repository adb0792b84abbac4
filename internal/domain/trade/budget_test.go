//go:build unit

package trade_test

import (
	"testing"
	"time"

	"dealswap/internal/domain/trade"
	"dealswap/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetPolicy_PeriodKey(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	cal := clock.NewCalendar(tokyo)
	sid := uuid.MustParse("11111111-2222-3333-4444-555555555555")

	// 16:30 UTC on the 1st is already the 2nd in Tokyo.
	now := time.Date(2026, 7, 1, 16, 30, 0, 0, time.UTC)

	daily, err := trade.NewBudgetPolicy(3, trade.ResetDaily, cal)
	require.NoError(t, err)
	key, err := daily.PeriodKey(now, sid)
	require.NoError(t, err)
	assert.Equal(t, "day:2026-07-02", key)

	session, err := trade.NewBudgetPolicy(3, trade.ResetSession, cal)
	require.NoError(t, err)
	key, err = session.PeriodKey(now, sid)
	require.NoError(t, err)
	assert.Equal(t, "session:"+sid.String(), key)

	_, err = session.PeriodKey(now, uuid.Nil)
	assert.ErrorIs(t, err, trade.ErrSessionRequired)
}

func TestNewBudgetPolicy_Validation(t *testing.T) {
	cal := clock.NewCalendar(time.UTC)

	_, err := trade.NewBudgetPolicy(-1, trade.ResetDaily, cal)
	assert.ErrorIs(t, err, trade.ErrInvalidAllowance)

	_, err = trade.NewBudgetPolicy(3, "weekly", cal)
	assert.ErrorIs(t, err, trade.ErrInvalidCadence)

	_, err = trade.NewResetCadence("session")
	assert.NoError(t, err)
}
