package deal

import (
	"errors"
	"strings"
	"time"

	"dealswap/internal/domain/item"
	"dealswap/internal/pkg/clock"
)

const MaxDescriptionLength = 280

var (
	ErrEmptyDescription   = errors.New("deal description cannot be empty")
	ErrDescriptionTooLong = errors.New("deal description too long")
)

// Deal is immutable once created.
type Deal struct {
	id          item.ID
	description string
	createdAt   time.Time
}

func NewDeal(id item.ID, description string) (*Deal, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	if _, err := item.NewID(id.String()); err != nil {
		return nil, err
	}
	return &Deal{id: id, description: description}, nil
}

func ReconstructDeal(id item.ID, description string, createdAt time.Time) *Deal {
	return &Deal{id: id, description: description, createdAt: createdAt}
}

func (d *Deal) ID() item.ID          { return d.id }
func (d *Deal) Description() string  { return d.description }
func (d *Deal) CreatedAt() time.Time { return d.createdAt }

// DailyDeal is the deal assigned to one user for one calendar day.
// A new day supersedes the record instead of mutating it.
type DailyDeal struct {
	day      clock.Day
	deal     *Deal
	claimed  bool
	issuedAt time.Time
}

func NewDailyDeal(day clock.Day, d *Deal, claimed bool, issuedAt time.Time) *DailyDeal {
	return &DailyDeal{day: day, deal: d, claimed: claimed, issuedAt: issuedAt}
}

func (dd *DailyDeal) Day() clock.Day      { return dd.day }
func (dd *DailyDeal) Deal() *Deal         { return dd.deal }
func (dd *DailyDeal) Claimed() bool       { return dd.claimed }
func (dd *DailyDeal) IssuedAt() time.Time { return dd.issuedAt }

// IsCurrent reports whether the record still belongs to the calendar day of now.
func (dd *DailyDeal) IsCurrent(cal clock.Calendar, now time.Time) bool {
	return dd.day == cal.Day(now)
}
