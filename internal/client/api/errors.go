package api

import (
	"fmt"
	"net/http"

	"dealswap/internal/pkg/errs"
)

// ErrRateLimited has no engine counterpart; the server sheds load per user.
var ErrRateLimited = errs.New("rate limited")

var codeSentinels = map[string]error{
	"validation":        errs.ErrValidation,
	"identity_required": errs.ErrIdentityRequired,
	"forbidden":         errs.ErrForbidden,
	"not_found":         errs.ErrNotFound,
	"already_claimed":   errs.ErrAlreadyClaimed,
	"invalid_state":     errs.ErrInvalidState,
	"budget_exhausted":  errs.ErrBudgetExhausted,
	"conflict":          errs.ErrConflict,
	"invalid_item":      errs.ErrInvalidItem,
	"rate_limited":      ErrRateLimited,
	"unavailable":       errs.ErrUnavailable,
}

// APIError is a decoded error envelope. It unwraps to the matching engine
// sentinel so callers can use errors.Is the same way the server does.
type APIError struct {
	Status  int
	Code    string
	Message string
	kind    error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, env *errorEnvelope) *APIError {
	apiErr := &APIError{Status: status}
	if env != nil {
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
	}
	if apiErr.Code == "" {
		apiErr.Code = codeForStatus(status)
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	apiErr.kind = codeSentinels[apiErr.Code]
	return apiErr
}

// codeForStatus covers bodies that are not our envelope, e.g. a proxy's 502.
func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "validation"
	case http.StatusUnauthorized:
		return "identity_required"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusConflict:
		return "conflict"
	case http.StatusUnprocessableEntity:
		return "invalid_item"
	case http.StatusTooManyRequests:
		return "rate_limited"
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return "unavailable"
	default:
		return "internal"
	}
}

// UserMessage turns an SDK error into text a person can act on.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, errs.ErrAlreadyClaimed):
		return "Someone else already claimed this item"
	case errs.Is(err, errs.ErrInvalidState):
		return "This trade was already resolved"
	case errs.Is(err, errs.ErrBudgetExhausted):
		return "You have no trade cancels left for now"
	case errs.Is(err, errs.ErrInvalidItem):
		return "One of the items changed owner; refresh and try again"
	case errs.Is(err, errs.ErrIdentityRequired):
		return "Please log in again"
	case errs.Is(err, errs.ErrForbidden):
		return "You are not allowed to do that"
	case errs.Is(err, errs.ErrNotFound):
		return "That no longer exists"
	case errs.Is(err, ErrRateLimited):
		return "Slow down and try again in a moment"
	case errs.Is(err, errs.ErrUnavailable):
		return "The service is busy; please try again shortly"
	}

	var apiErr *APIError
	if errs.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong"
}
