//go:build unit

package trade_test

import (
	"testing"
	"time"

	"dealswap/internal/domain/item"
	"dealswap/internal/domain/trade"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	bob   = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	carol = uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	t0    = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
)

func newProposed(t *testing.T) *trade.Trade {
	t.Helper()
	tr, err := trade.NewTrade(alice, bob, "d1", "d2", t0, time.Hour)
	require.NoError(t, err)
	return tr
}

func TestNewTrade(t *testing.T) {
	cases := []struct {
		name     string
		from, to uuid.UUID
		a, b     item.ID
		ttl      time.Duration
		errIs    error
	}{
		{name: "valid", from: alice, to: bob, a: "d1", b: "d2", ttl: time.Hour},
		{name: "self trade", from: alice, to: alice, a: "d1", b: "d2", ttl: time.Hour, errIs: trade.ErrSelfTrade},
		{name: "same item", from: alice, to: bob, a: "d1", b: "d1", ttl: time.Hour, errIs: trade.ErrSameItem},
		{name: "zero ttl", from: alice, to: bob, a: "d1", b: "d2", ttl: 0, errIs: trade.ErrInvalidTTL},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, err := trade.NewTrade(tc.from, tc.to, tc.a, tc.b, t0, tc.ttl)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, trade.StateProposed, tr.State())
			assert.Equal(t, t0.Add(time.Hour), tr.ExpiresAt())
			assert.NotEqual(t, uuid.Nil, tr.ID())
		})
	}
}

func TestTrade_Confirm(t *testing.T) {
	t.Run("recipient confirms", func(t *testing.T) {
		tr := newProposed(t)
		require.NoError(t, tr.Confirm(bob, t0.Add(time.Minute)))
		assert.Equal(t, trade.StateConfirmed, tr.State())
		assert.Nil(t, tr.CancelReason())
	})

	t.Run("proposer cannot confirm", func(t *testing.T) {
		tr := newProposed(t)
		assert.ErrorIs(t, tr.Confirm(alice, t0), trade.ErrNotRecipient)
		assert.Equal(t, trade.StateProposed, tr.State())
	})

	t.Run("outsider cannot confirm", func(t *testing.T) {
		tr := newProposed(t)
		assert.ErrorIs(t, tr.Confirm(carol, t0), trade.ErrNotParticipant)
	})

	t.Run("expired proposal", func(t *testing.T) {
		tr := newProposed(t)
		assert.ErrorIs(t, tr.Confirm(bob, t0.Add(time.Hour)), trade.ErrExpired)
		assert.Equal(t, trade.StateProposed, tr.State())
	})
}

func TestTrade_Cancel(t *testing.T) {
	t.Run("proposer withdraws", func(t *testing.T) {
		tr := newProposed(t)
		reason, err := tr.Cancel(alice, t0)
		require.NoError(t, err)
		assert.Equal(t, trade.ReasonWithdrawn, reason)
		assert.Equal(t, trade.StateCancelled, tr.State())
		require.NotNil(t, tr.CancelledBy())
		assert.Equal(t, alice, *tr.CancelledBy())
	})

	t.Run("recipient declines", func(t *testing.T) {
		tr := newProposed(t)
		reason, err := tr.Cancel(bob, t0)
		require.NoError(t, err)
		assert.Equal(t, trade.ReasonDeclined, reason)
	})

	t.Run("outsider", func(t *testing.T) {
		tr := newProposed(t)
		_, err := tr.Cancel(carol, t0)
		assert.ErrorIs(t, err, trade.ErrNotParticipant)
	})
}

// Every history is a prefix of proposed, {confirmed | cancelled}.
func TestTrade_TerminalStatesHaveNoExits(t *testing.T) {
	confirmed := newProposed(t)
	require.NoError(t, confirmed.Confirm(bob, t0))

	cancelled := newProposed(t)
	_, err := cancelled.Cancel(alice, t0)
	require.NoError(t, err)

	for name, tr := range map[string]*trade.Trade{"confirmed": confirmed, "cancelled": cancelled} {
		t.Run(name, func(t *testing.T) {
			before := tr.State()
			assert.True(t, before.IsTerminal())

			assert.ErrorIs(t, tr.Confirm(bob, t0), trade.ErrNotProposed)
			_, err := tr.Cancel(alice, t0)
			assert.ErrorIs(t, err, trade.ErrNotProposed)
			assert.ErrorIs(t, tr.Expire(t0.Add(2*time.Hour)), trade.ErrNotProposed)

			assert.Equal(t, before, tr.State())
		})
	}
}

func TestTrade_Expire(t *testing.T) {
	tr := newProposed(t)
	assert.ErrorIs(t, tr.Expire(t0.Add(30*time.Minute)), trade.ErrNotExpired)

	require.NoError(t, tr.Expire(t0.Add(time.Hour)))
	assert.Equal(t, trade.StateCancelled, tr.State())
	require.NotNil(t, tr.CancelReason())
	assert.Equal(t, trade.ReasonExpired, *tr.CancelReason())
	assert.False(t, tr.CancelReason().ChargesBudget())
	assert.Nil(t, tr.CancelledBy())
}
