package item

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidID   = errors.New("invalid item id")
	ErrInvalidKind = errors.New("invalid item kind")
)

// Deals and coupons share one id namespace, so an ID alone identifies an item.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_\-]{0,63}$`)

type ID string

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if !idRegex.MatchString(s) {
		return "", ErrInvalidID
	}
	return ID(s), nil
}

func (id ID) String() string {
	return string(id)
}

type Kind string

const (
	KindDeal   Kind = "deal"
	KindCoupon Kind = "coupon"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindDeal, KindCoupon:
		return true
	default:
		return false
	}
}

func NewKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", ErrInvalidKind
	}
	return k, nil
}
