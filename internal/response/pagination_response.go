package response

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
	From       int `json:"from"`
	To         int `json:"to"`
}

// Paginate slices n items into page/pageSize bounds and describes the
// result. It returns the half-open [from, to) index range to cut.
func Paginate(n, page, pageSize int) (from, to int, p *Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	from = (page - 1) * pageSize
	if from > n {
		from = n
	}
	to = from + pageSize
	if to > n {
		to = n
	}
	totalPages := (n + pageSize - 1) / pageSize
	p = &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: n,
		From:       from,
		To:         to,
	}
	return from, to, p
}
