package api

import (
	"net/http"

	"dealswap/internal/handler/httperr"
	"dealswap/internal/handler/middleware"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	sentinel error
	status   int
	code     string
}

// Order matters: the first sentinel found in the chain wins.
var errorMappings = []errorMapping{
	{errs.ErrValidation, http.StatusBadRequest, httperr.CodeValidation},
	{errs.ErrIdentityRequired, http.StatusUnauthorized, httperr.CodeIdentityRequired},
	{errs.ErrForbidden, http.StatusForbidden, httperr.CodeForbidden},
	{errs.ErrNotFound, http.StatusNotFound, httperr.CodeNotFound},
	{errs.ErrAlreadyClaimed, http.StatusConflict, httperr.CodeAlreadyClaimed},
	{errs.ErrInvalidState, http.StatusConflict, httperr.CodeInvalidState},
	{errs.ErrBudgetExhausted, http.StatusConflict, httperr.CodeBudgetExhausted},
	{errs.ErrConflict, http.StatusConflict, httperr.CodeConflict},
	{errs.ErrInvalidItem, http.StatusUnprocessableEntity, httperr.CodeInvalidItem},
	{errs.ErrUnavailable, http.StatusServiceUnavailable, httperr.CodeUnavailable},
}

// writeEngineError translates an engine error into the HTTP error envelope.
func writeEngineError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, httperr.CodeInternal
	for _, m := range errorMappings {
		if errs.Is(err, m.sentinel) {
			status, code = m.status, m.code
			break
		}
	}

	msg := err.Error()
	switch code {
	case httperr.CodeUnavailable:
		msg = "Service temporarily unavailable"
		c.Header("Retry-After", "1")
	case httperr.CodeInternal:
		msg = "Internal server error"
	}

	middleware.SetEngineCode(c, code)
	httperr.AbortWithCode(c, status, code, err, msg, nil)
}

// actorFrom aborts with identity_required when the auth middleware did not run.
func actorFrom(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		writeEngineError(c, errs.ErrIdentityRequired)
		return shared.Actor{}, false
	}
	return actor, true
}

func bindError(c *gin.Context, err error) {
	writeEngineError(c, errs.Mark(err, errs.ErrValidation))
}
