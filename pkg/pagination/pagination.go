package pagination

// MaxPageSize caps the page size a caller may request.
const MaxPageSize = 100

// Params holds 1-based pagination parameters.
type Params struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// DefaultParams returns page 1 with the given page size.
func DefaultParams(pageSize int) Params {
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = 25
	}
	return Params{Page: 1, PageSize: pageSize}
}

// Meta mirrors the CMS pagination block: meta.pagination in list responses.
type Meta struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// NewMeta builds pagination metadata for total items split by params.
func NewMeta(total int, params Params) Meta {
	pageCount := 0
	if params.PageSize > 0 {
		pageCount = total / params.PageSize
		if total%params.PageSize > 0 {
			pageCount++
		}
	}

	return Meta{
		Page:      params.Page,
		PageSize:  params.PageSize,
		PageCount: pageCount,
		Total:     total,
	}
}

// HasNext reports whether a page follows the current one.
func (m Meta) HasNext() bool { return m.Page < m.PageCount }

// HasPrev reports whether a page precedes the current one.
func (m Meta) HasPrev() bool { return m.Page > 1 }

// Pages returns the page numbers 1..PageCount.
func (m Meta) Pages() []int {
	pages := make([]int, 0, m.PageCount)
	for i := 1; i <= m.PageCount; i++ {
		pages = append(pages, i)
	}
	return pages
}
