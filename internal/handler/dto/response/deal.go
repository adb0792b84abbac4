package response

import (
	"time"

	"dealswap/internal/usecase/commands"
	"dealswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type DealResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type DailyDealResponse struct {
	Day      string       `json:"day"`
	Deal     DealResponse `json:"deal"`
	Claimed  bool         `json:"claimed"`
	IssuedAt time.Time    `json:"issued_at"`
	// NextIssueInSeconds is for display and backoff only.
	NextIssueInSeconds int64 `json:"next_issue_in_seconds"`
}

func FromDailyDealResult(r *commands.DailyDealResult) DailyDealResponse {
	return DailyDealResponse{
		Day:                r.Day.String(),
		Deal:               DealResponse{ID: r.DealID, Description: r.Description},
		Claimed:            r.Claimed,
		IssuedAt:           r.IssuedAt,
		NextIssueInSeconds: int64(r.NextIssueIn.Seconds()),
	}
}

type CandidatesResponse struct {
	Deals []DealResponse `json:"deals"`
}

func FromDealViews(views []queries.DealView) CandidatesResponse {
	deals := copyTo[[]DealResponse](views)
	if deals == nil {
		deals = []DealResponse{}
	}
	return CandidatesResponse{Deals: deals}
}

type ClaimResponse struct {
	ItemID    string    `json:"item_id"`
	Kind      string    `json:"kind"`
	OwnerID   uuid.UUID `json:"owner_id"`
	ClaimedAt time.Time `json:"claimed_at"`
	Replayed  bool      `json:"replayed"`
}

func FromClaimResult(r *commands.ClaimResult) ClaimResponse {
	return copyTo[ClaimResponse](r)
}

type OwnedItemResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Brand       *string   `json:"brand,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	ClaimedAt   time.Time `json:"claimed_at"`
}

type OwnedItemsResponse struct {
	Items []OwnedItemResponse `json:"items"`
}

func FromOwnedItemViews(views []queries.OwnedItemView) OwnedItemsResponse {
	items := copyTo[[]OwnedItemResponse](views)
	if items == nil {
		items = []OwnedItemResponse{}
	}
	return OwnedItemsResponse{Items: items}
}
