package api

import (
	"net/http"

	reqdto "dealswap/internal/handler/dto/request"
	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DealHandler struct {
	cmds commands.DealCommands
	q    queries.DealQueries
}

func NewDealHandler(cmds commands.DealCommands, q queries.DealQueries) *DealHandler {
	return &DealHandler{cmds: cmds, q: q}
}

// @Summary Issue daily deal
// @Description Returns today's deal for the caller, issuing it on the first call of the day
// @Tags deals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.DailyDealResponse
// @Success 201 {object} resdto.DailyDealResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /deals/daily [post]
func (h *DealHandler) IssueDailyDeal(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.cmds.IssueDailyDeal(c.Request.Context(), actor)
	if err != nil {
		writeEngineError(c, err)
		return
	}

	status := http.StatusOK
	if result.Issued {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromDailyDealResult(result))
}

// @Summary Fetch candidate deals
// @Description Random batch of distinct deals for the swipe queue
// @Tags deals
// @Security BearerAuth
// @Produce json
// @Param exclude_claimed query bool false "Drop deals owned by anyone (default true)"
// @Param limit query int false "Batch size, capped at 50"
// @Success 200 {object} resdto.CandidatesResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /deals/candidates [get]
func (h *DealHandler) Candidates(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var query reqdto.CandidatesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		bindError(c, err)
		return
	}

	deals, err := h.q.FetchCandidateBatch(c.Request.Context(), actor.UserID, query.ToFilter())
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDealViews(deals))
}

// @Summary Claim item
// @Description Claim a deal or coupon. Replaying a claim the caller already holds succeeds.
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID (d-... or c-...)"
// @Success 200 {object} resdto.ClaimResponse
// @Success 201 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /items/{id}/claim [post]
func (h *DealHandler) Claim(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.cmds.Claim(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		writeEngineError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromClaimResult(result))
}

// @Summary List owned items
// @Tags items
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.OwnedItemsResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /items/mine [get]
func (h *DealHandler) Mine(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	items, err := h.q.ListOwnedItems(c.Request.Context(), actor.UserID)
	if err != nil {
		writeEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOwnedItemViews(items))
}
