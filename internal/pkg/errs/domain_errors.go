package errs

// Engine error taxonomy shared by usecases, handlers and the client SDK.
var (
	// transient, retry with backoff
	ErrUnavailable = New("service unavailable")

	// unknown id or empty pool, not retryable
	ErrNotFound = New("not found")

	// semantic conflicts, surfaced with a specific message
	ErrAlreadyClaimed  = New("item already claimed")
	ErrInvalidState    = New("trade already resolved")
	ErrBudgetExhausted = New("trade cancel budget exhausted")
	ErrConflict        = New("conflict")

	// caller errors
	ErrInvalidItem      = New("invalid item")
	ErrValidation       = New("validation failed")
	ErrIdentityRequired = New("identity required")
	ErrForbidden        = New("action not allowed")
)

var taxonomy = []error{
	ErrUnavailable, ErrNotFound, ErrAlreadyClaimed, ErrInvalidState, ErrBudgetExhausted,
	ErrConflict, ErrInvalidItem, ErrValidation, ErrIdentityRequired, ErrForbidden,
}

// Classified reports whether err already carries one of the engine sentinels.
func Classified(err error) bool {
	for _, sentinel := range taxonomy {
		if Is(err, sentinel) {
			return true
		}
	}
	return false
}

// AsUnavailable leaves classified errors alone and marks everything else transient.
func AsUnavailable(err error) error {
	if err == nil || Classified(err) {
		return err
	}
	return Mark(err, ErrUnavailable)
}
