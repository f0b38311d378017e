package common

// Pagination is the page-based pagination block returned by listing
// endpoints.
type Pagination struct {
	CurrentPage int `json:"currentPage" example:"1"`
	LastPage    int `json:"lastPage" example:"1"`
	Total       int `json:"total" example:"1"`
	PerPage     int `json:"perPage" example:"10"`
}

// NewPagination computes lastPage from the filtered total, never less
// than 1 so an empty result still renders a sane block.
func NewPagination(page, perPage, total int) Pagination {
	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	return Pagination{
		CurrentPage: page,
		LastPage:    lastPage,
		Total:       total,
		PerPage:     perPage,
	}
}
