package models

// FilterOptions is the pagination window for list endpoints. It is parsed
// from query parameters and never persisted.
type FilterOptions struct {
	Page  int
	Limit int
}

// Window returns the limit/offset pair for a query, falling back to page 1
// and the given default limit when a value is missing or nonsensical.
func (f FilterOptions) Window(defaultLimit int) (limit, offset int) {
	limit = f.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
