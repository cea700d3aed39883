package postgres

// PagedData is one page of records and where that page sits among all matching records.
type PagedData struct {
	Items      any   `json:"items"`
	Page       int64 `json:"page"`
	PerPage    int64 `json:"perPage"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// newPagedData starts a PagedData for items, raising page and perPage to at least 1.
func newPagedData(items any, page, perPage int64) PagedData {
	return PagedData{Items: items, Page: max(1, page), PerPage: max(1, perPage)}
}

// offset is how many records precede pd.Page.
func (pd PagedData) offset() int { return int((pd.Page - 1) * pd.PerPage) }

// setTotal records the count of matching records and how many pages of pd.PerPage they fill.
func (pd *PagedData) setTotal(total int64) {
	pd.TotalItems = total
	pd.TotalPages = (total + pd.PerPage - 1) / pd.PerPage
}
