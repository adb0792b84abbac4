package shared

import (
	"dealswap/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of an engine operation.
type Actor struct {
	UserID    uuid.UUID
	Username  string
	SessionID uuid.UUID
}

func (a Actor) Validate() error {
	if a.UserID == uuid.Nil {
		return errs.ErrIdentityRequired
	}
	return nil
}
