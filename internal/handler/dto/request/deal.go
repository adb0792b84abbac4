package request

import (
	"dealswap/internal/usecase/queries"
)

type CandidatesQuery struct {
	ExcludeClaimed *bool `form:"exclude_claimed"`
	Limit          int   `form:"limit" binding:"omitempty,min=1"`
}

// ToFilter defaults ExcludeClaimed to true.
func (q CandidatesQuery) ToFilter() queries.CandidateFilter {
	exclude := true
	if q.ExcludeClaimed != nil {
		exclude = *q.ExcludeClaimed
	}
	return queries.CandidateFilter{ExcludeClaimed: exclude, Limit: q.Limit}
}
