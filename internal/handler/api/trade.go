package api

import (
	"net/http"

	reqdto "dealswap/internal/handler/dto/request"
	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/pkg/errs"
	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidTradeID = errs.New("invalid trade id")

type TradeHandler struct {
	cmds commands.TradeCommands
	q    queries.TradeQueries
}

func NewTradeHandler(cmds commands.TradeCommands, q queries.TradeQueries) *TradeHandler {
	return &TradeHandler{cmds: cmds, q: q}
}

// @Summary Propose trade
// @Description Offer one of your items for one of the recipient's items
// @Tags trades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProposeTradeRequest true "Trade proposal"
// @Success 201 {object} resdto.TradeActionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /trades [post]
func (h *TradeHandler) Propose(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req reqdto.ProposeTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.cmds.ProposeTrade(c.Request.Context(), actor, req)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTradeResult(result))
}

// @Summary List trades
// @Description Trades the caller takes part in, newest first
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Param state query string false "proposed, confirmed or cancelled"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} resdto.TradeListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /trades [get]
func (h *TradeHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var query reqdto.ListTradesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		bindError(c, err)
		return
	}

	var cursor *queries.Cursor
	if query.Cursor != "" {
		cursor = &queries.Cursor{After: query.Cursor}
	}

	views, next, err := h.q.ListTrades(c.Request.Context(), actor.UserID, filter, cursor, query.Limit)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	var nextCursor *string
	if next != nil {
		nextCursor = &next.After
	}
	c.JSON(http.StatusOK, resdto.FromTradeViews(views, nextCursor))
}

// @Summary Trade cancel budget
// @Description Remaining cancels for the caller's current budget period
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.BudgetResponse
// @Failure 401 {object} httperr.Response
// @Router /trades/budget [get]
func (h *TradeHandler) Budget(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	view, err := h.q.GetBudget(c.Request.Context(), actor.UserID, actor.SessionID)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBudgetView(view))
}

// @Summary Get trade
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} resdto.TradeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /trades/{id} [get]
func (h *TradeHandler) Get(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := tradeID(c)
	if !ok {
		return
	}

	view, err := h.q.GetTradeDetails(c.Request.Context(), actor.UserID, id)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeView(view))
}

// @Summary Confirm trade
// @Description The recipient accepts; both items change owner atomically
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} resdto.TradeActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /trades/{id}/confirm [post]
func (h *TradeHandler) Confirm(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := tradeID(c)
	if !ok {
		return
	}

	result, err := h.cmds.ConfirmTrade(c.Request.Context(), actor, id)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeResult(result))
}

// @Summary Cancel trade
// @Description Either participant withdraws or declines, spending one unit of budget
// @Tags trades
// @Security BearerAuth
// @Produce json
// @Param id path string true "Trade ID"
// @Success 200 {object} resdto.TradeActionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /trades/{id}/cancel [post]
func (h *TradeHandler) Cancel(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	id, ok := tradeID(c)
	if !ok {
		return
	}

	result, err := h.cmds.CancelTrade(c.Request.Context(), actor, id)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTradeResult(result))
}

func tradeID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeEngineError(c, errs.Mark(errInvalidTradeID, errs.ErrValidation))
		return uuid.Nil, false
	}
	return id, true
}
