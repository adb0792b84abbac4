package request

import (
	"dealswap/internal/domain/item"
	"dealswap/internal/domain/trade"
	"dealswap/internal/domain/user"
	"dealswap/internal/usecase/queries"
)

type ProposeTradeRequest struct {
	ToUsername string `json:"to_username" binding:"required"`
	ItemFrom   string `json:"item_from" binding:"required"`
	ItemTo     string `json:"item_to" binding:"required"`
}

func (r *ProposeTradeRequest) ToDomain() (user.Username, item.ID, item.ID, error) {
	to, err := user.NewUsername(r.ToUsername)
	if err != nil {
		return user.Username{}, "", "", err
	}
	itemFrom, err := item.NewID(r.ItemFrom)
	if err != nil {
		return user.Username{}, "", "", err
	}
	itemTo, err := item.NewID(r.ItemTo)
	if err != nil {
		return user.Username{}, "", "", err
	}
	return to, itemFrom, itemTo, nil
}

type ListTradesQuery struct {
	State  string `form:"state" binding:"omitempty,oneof=proposed confirmed cancelled"`
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

func (q ListTradesQuery) ToFilter() (queries.TradeFilter, error) {
	if q.State == "" {
		return queries.TradeFilter{}, nil
	}
	state, err := trade.NewState(q.State)
	if err != nil {
		return queries.TradeFilter{}, err
	}
	return queries.TradeFilter{State: &state}, nil
}
