package content

// Pagination describes the page returned by List.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

// Page is one page of resolved entities.
type Page struct {
	Data       []map[string]any `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// PageRequest normalizes the requested page and page size. Values below one
// fall back to page 1 and defaultSize, and maxSize caps the size when
// positive.
func PageRequest(page, pageSize, defaultSize, maxSize int) (int, int) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = defaultSize
	}

	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}

	return page, pageSize
}

// NewPagination computes the page count for total items.
func NewPagination(total int64, page, pageSize int) Pagination {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}

	return Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
