package coupon

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"dealswap/internal/domain/item"
)

var (
	ErrEmptyBrand       = errors.New("coupon brand cannot be empty")
	ErrEmptyDescription = errors.New("coupon description cannot be empty")
	ErrInvalidImageURL  = errors.New("coupon image url must be an absolute http(s) url")
)

// Coupon is the branded sibling of a deal; both live in the same item pool.
type Coupon struct {
	id          item.ID
	brand       string
	description string
	imageURL    string
	createdAt   time.Time
}

func NewCoupon(id item.ID, brand, description, imageURL string) (*Coupon, error) {
	if _, err := item.NewID(id.String()); err != nil {
		return nil, err
	}
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return nil, ErrEmptyBrand
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if imageURL != "" {
		u, err := url.Parse(imageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, ErrInvalidImageURL
		}
	}

	return &Coupon{
		id:          id,
		brand:       brand,
		description: description,
		imageURL:    imageURL,
	}, nil
}

func ReconstructCoupon(id item.ID, brand, description, imageURL string, createdAt time.Time) *Coupon {
	return &Coupon{
		id:          id,
		brand:       brand,
		description: description,
		imageURL:    imageURL,
		createdAt:   createdAt,
	}
}

func (c *Coupon) ID() item.ID          { return c.id }
func (c *Coupon) Brand() string        { return c.brand }
func (c *Coupon) Description() string  { return c.description }
func (c *Coupon) ImageURL() string     { return c.imageURL }
func (c *Coupon) CreatedAt() time.Time { return c.createdAt }
