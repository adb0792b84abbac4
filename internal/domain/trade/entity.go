package trade

import (
	"errors"
	"time"

	"dealswap/internal/domain/item"

	"github.com/google/uuid"
)

var (
	ErrSelfTrade      = errors.New("cannot trade with yourself")
	ErrSameItem       = errors.New("both sides of a trade must be different items")
	ErrNotProposed    = errors.New("trade is no longer proposed")
	ErrNotRecipient   = errors.New("only the recipient can confirm a trade")
	ErrNotParticipant = errors.New("user is not part of this trade")
	ErrExpired        = errors.New("trade proposal has expired")
	ErrNotExpired     = errors.New("trade proposal has not expired yet")
	ErrInvalidTTL     = errors.New("trade ttl must be positive")
)

// Trade is a two-party swap proposal. The only transitions are
// proposed -> confirmed and proposed -> cancelled.
type Trade struct {
	id           uuid.UUID
	fromUserID   uuid.UUID
	toUserID     uuid.UUID
	itemFrom     item.ID
	itemTo       item.ID
	state        State
	cancelledBy  *uuid.UUID
	cancelReason *CancelReason
	expiresAt    time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewTrade(fromUserID, toUserID uuid.UUID, itemFrom, itemTo item.ID, now time.Time, ttl time.Duration) (*Trade, error) {
	if fromUserID == toUserID {
		return nil, ErrSelfTrade
	}
	if itemFrom == itemTo {
		return nil, ErrSameItem
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	return &Trade{
		id:         uuid.New(),
		fromUserID: fromUserID,
		toUserID:   toUserID,
		itemFrom:   itemFrom,
		itemTo:     itemTo,
		state:      StateProposed,
		expiresAt:  now.Add(ttl),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructTrade(
	id, fromUserID, toUserID uuid.UUID,
	itemFrom, itemTo item.ID,
	state State,
	cancelledBy *uuid.UUID,
	cancelReason *CancelReason,
	expiresAt, createdAt, updatedAt time.Time,
) *Trade {
	return &Trade{
		id:           id,
		fromUserID:   fromUserID,
		toUserID:     toUserID,
		itemFrom:     itemFrom,
		itemTo:       itemTo,
		state:        state,
		cancelledBy:  cancelledBy,
		cancelReason: cancelReason,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (t *Trade) IsParticipant(userID uuid.UUID) bool {
	return userID == t.fromUserID || userID == t.toUserID
}

func (t *Trade) HasExpired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

// Confirm moves a live proposal to confirmed. Only the recipient may confirm.
func (t *Trade) Confirm(actor uuid.UUID, now time.Time) error {
	if t.state != StateProposed {
		return ErrNotProposed
	}
	if !t.IsParticipant(actor) {
		return ErrNotParticipant
	}
	if actor != t.toUserID {
		return ErrNotRecipient
	}
	if t.HasExpired(now) {
		return ErrExpired
	}
	t.state = StateConfirmed
	t.updatedAt = now
	return nil
}

// Cancel moves a live proposal to cancelled on behalf of either participant
// and returns the recorded reason.
func (t *Trade) Cancel(actor uuid.UUID, now time.Time) (CancelReason, error) {
	if t.state != StateProposed {
		return "", ErrNotProposed
	}
	if !t.IsParticipant(actor) {
		return "", ErrNotParticipant
	}
	if t.HasExpired(now) {
		return "", ErrExpired
	}

	reason := ReasonDeclined
	if actor == t.fromUserID {
		reason = ReasonWithdrawn
	}
	t.markCancelled(&actor, reason, now)
	return reason, nil
}

// Expire cancels a proposal whose deadline has passed. No participant is charged.
func (t *Trade) Expire(now time.Time) error {
	if t.state != StateProposed {
		return ErrNotProposed
	}
	if !t.HasExpired(now) {
		return ErrNotExpired
	}
	t.markCancelled(nil, ReasonExpired, now)
	return nil
}

func (t *Trade) markCancelled(actor *uuid.UUID, reason CancelReason, now time.Time) {
	t.state = StateCancelled
	t.cancelledBy = actor
	t.cancelReason = &reason
	t.updatedAt = now
}

func (t *Trade) ID() uuid.UUID               { return t.id }
func (t *Trade) FromUserID() uuid.UUID       { return t.fromUserID }
func (t *Trade) ToUserID() uuid.UUID         { return t.toUserID }
func (t *Trade) ItemFrom() item.ID           { return t.itemFrom }
func (t *Trade) ItemTo() item.ID             { return t.itemTo }
func (t *Trade) State() State                { return t.state }
func (t *Trade) CancelledBy() *uuid.UUID     { return t.cancelledBy }
func (t *Trade) CancelReason() *CancelReason { return t.cancelReason }
func (t *Trade) ExpiresAt() time.Time        { return t.expiresAt }
func (t *Trade) CreatedAt() time.Time        { return t.createdAt }
func (t *Trade) UpdatedAt() time.Time        { return t.updatedAt }
