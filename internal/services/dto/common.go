package dto

// PageQuery is embedded in every list query.
type PageQuery struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// Normalize clamps page/limit to the documented defaults and bounds.
func (q *PageQuery) Normalize() {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
}

// Pagination is the list-response metadata block.
type Pagination struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPagination computes pages = ceil(total/limit).
func NewPagination(total int64, page, limit int) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total: total,
		Pages: pages,
		Page:  page,
		Limit: limit,
	}
}
