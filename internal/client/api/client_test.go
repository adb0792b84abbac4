//go:build unit

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"dealswap/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := New(Config{
		BaseURL:      srv.URL,
		Timeout:      2 * time.Second,
		RetryCount:   3,
		RetryWait:    time.Millisecond,
		RetryMaxWait: 5 * time.Millisecond,
	}, nil)
	return c, srv
}

func writeEnvelope(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestClient_RetriesUnavailableUpToBound(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(w, http.StatusServiceUnavailable, "unavailable", "Service temporarily unavailable")
	})
	c.SetToken("token")

	_, err := c.IssueDailyDeal(context.Background())

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnavailable))
	assert.Equal(t, int32(4), calls.Load())
}

func TestClient_RetryRecoversAfterTransientFailure(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			writeEnvelope(w, http.StatusServiceUnavailable, "unavailable", "Service temporarily unavailable")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"day":     "2026-10-17",
			"deal":    map[string]string{"id": "d-1001", "description": "2 for 1 lattes"},
			"claimed": false,
		})
	})
	c.SetToken("token")

	res, err := c.IssueDailyDeal(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "d-1001", res.Deal.ID)
	assert.Equal(t, "2026-10-17", res.Day)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_DoesNotRetryConflicts(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeEnvelope(w, http.StatusConflict, "already_claimed", "item already claimed")
	})
	c.SetToken("token")

	_, err := c.Claim(context.Background(), "c-2001")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrAlreadyClaimed))
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "Someone else already claimed this item", UserMessage(err))

	var apiErr *APIError
	require.True(t, errs.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "already_claimed", apiErr.Code)
}

func TestClient_LostProposalIsNotReplayed(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeEnvelope(w, http.StatusGatewayTimeout, "unavailable", "upstream timed out")
			return
		}
		writeEnvelope(w, http.StatusConflict, "conflict", "a proposed trade between these users already exists")
	})
	c.SetToken("token")

	_, err := c.ProposeTrade(context.Background(), "bob", "d-1001", "c-2001")

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnavailable))
	assert.False(t, errs.Is(err, errs.ErrConflict))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_NonIdempotentCallsSendOnce(t *testing.T) {
	tradeID := uuid.New()
	tests := []struct {
		name string
		call func(c *Client) error
	}{
		{"cancel", func(c *Client) error { _, err := c.CancelTrade(context.Background(), tradeID); return err }},
		{"signup", func(c *Client) error { _, err := c.Signup(context.Background(), "alice", "password123"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				writeEnvelope(w, http.StatusServiceUnavailable, "unavailable", "Service temporarily unavailable")
			})
			c.SetToken("token")

			err := tt.call(c)

			assert.True(t, errs.Is(err, errs.ErrUnavailable))
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestClient_ConfirmIsRetried(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeEnvelope(w, http.StatusGatewayTimeout, "unavailable", "upstream timed out")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"state": "confirmed"})
	})
	c.SetToken("token")

	res, err := c.ConfirmTrade(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "confirmed", res.State)
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_MissingTokenFailsFast(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := c.TradeBudget(context.Background())

	assert.True(t, errs.Is(err, errs.ErrIdentityRequired))
	assert.Zero(t, calls.Load())
}

func TestClient_LoginStoresToken(t *testing.T) {
	var gotAuth atomic.Value
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "alice", body["username"])
			writeJSON(w, http.StatusOK, map[string]any{
				"access_token": "jwt-alice",
				"user_id":      uuid.New(),
				"username":     "alice",
			})
		case "/api/items/c-2001/claim":
			gotAuth.Store(r.Header.Get("Authorization"))
			writeJSON(w, http.StatusCreated, map[string]any{"item_id": "c-2001", "kind": "coupon"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	_, err := c.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "jwt-alice", c.Token())

	res, err := c.Claim(context.Background(), "c-2001")
	require.NoError(t, err)
	assert.Equal(t, "coupon", res.Kind)
	assert.Equal(t, "Bearer jwt-alice", gotAuth.Load())
}

func TestClient_FetchCandidateBatchQuery(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/deals/candidates", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("exclude_claimed"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, map[string]any{"deals": []map[string]string{}})
	})
	c.SetToken("token")

	deals, err := c.FetchCandidateBatch(context.Background(), false, 5)

	require.NoError(t, err)
	assert.Empty(t, deals)
}

func TestClient_ListTradesPassesCursor(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "proposed", r.URL.Query().Get("state"))
		assert.Equal(t, "abc", r.URL.Query().Get("cursor"))
		writeJSON(w, http.StatusOK, map[string]any{"trades": []any{}, "next_cursor": nil})
	})
	c.SetToken("token")

	page, err := c.ListTrades(context.Background(), "proposed", "abc", 0)

	require.NoError(t, err)
	assert.Empty(t, page.Trades)
	assert.Nil(t, page.NextCursor)
}

func TestClient_NonEnvelopeErrorFallsBackToStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("nope"))
	})
	c.SetToken("token")

	_, err := c.ConfirmTrade(context.Background(), uuid.New())

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrForbidden))
	assert.Equal(t, "You are not allowed to do that", UserMessage(err))
}

func TestClient_TransportErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(Config{BaseURL: url, RetryCount: 1, RetryWait: time.Millisecond, RetryMaxWait: time.Millisecond}, nil)
	c.SetToken("token")

	_, err := c.ListOwnedItems(context.Background())

	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrUnavailable))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"bare conflict", newAPIError(http.StatusConflict, nil), "Conflict"},
		{"resolved trade", errs.Wrap(errs.ErrInvalidState, "confirm"), "This trade was already resolved"},
		{"budget", errs.ErrBudgetExhausted, "You have no trade cancels left for now"},
		{"rate limited", newAPIError(http.StatusTooManyRequests, nil), "Slow down and try again in a moment"},
		{"plain", errs.New("boom"), "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
