package catalog

import (
	"context"
	"fmt"
	"os"

	"dealswap/internal/domain/coupon"
	"dealswap/internal/domain/deal"
	"dealswap/internal/domain/item"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/shared"

	"gopkg.in/yaml.v3"
)

type File struct {
	Deals   []DealEntry   `yaml:"deals"`
	Coupons []CouponEntry `yaml:"coupons"`
}

type DealEntry struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
}

type CouponEntry struct {
	ID          string `yaml:"id"`
	Brand       string `yaml:"brand"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
}

// Catalog is a validated File, ready to upsert.
type Catalog struct {
	Deals   []*deal.Deal
	Coupons []*coupon.Coupon
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(err, "read catalog")
	}
	return Parse(raw)
}

// Parse rejects the whole file if any entry is invalid or an id repeats,
// since deals and coupons share one id space.
func Parse(raw []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errs.Wrap(err, "decode catalog")
	}

	seen := make(map[string]struct{}, len(f.Deals)+len(f.Coupons))
	claimID := func(kind, raw string) (item.ID, error) {
		id, err := item.NewID(raw)
		if err != nil {
			return "", fmt.Errorf("%s %q: %w", kind, raw, err)
		}
		if _, dup := seen[id.String()]; dup {
			return "", fmt.Errorf("%s %q: duplicate item id", kind, raw)
		}
		seen[id.String()] = struct{}{}
		return id, nil
	}

	c := &Catalog{}
	for _, e := range f.Deals {
		id, err := claimID("deal", e.ID)
		if err != nil {
			return nil, err
		}
		d, err := deal.NewDeal(id, e.Description)
		if err != nil {
			return nil, fmt.Errorf("deal %q: %w", e.ID, err)
		}
		c.Deals = append(c.Deals, d)
	}
	for _, e := range f.Coupons {
		id, err := claimID("coupon", e.ID)
		if err != nil {
			return nil, err
		}
		cp, err := coupon.NewCoupon(id, e.Brand, e.Description, e.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("coupon %q: %w", e.ID, err)
		}
		c.Coupons = append(c.Coupons, cp)
	}
	return c, nil
}

// Apply upserts the catalog in a single transaction. Re-running it is safe.
func Apply(ctx context.Context, uow shared.UnitOfWork, c *Catalog) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		items := tx.Items()
		for _, d := range c.Deals {
			if err := items.UpsertDeal(ctx, d); err != nil {
				return err
			}
		}
		for _, cp := range c.Coupons {
			if err := items.UpsertCoupon(ctx, cp); err != nil {
				return err
			}
		}
		return nil
	})
}
