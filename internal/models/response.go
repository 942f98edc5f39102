package models

// WebResponse is the uniform success envelope. Paging is only present on
// paginated results.
type WebResponse struct {
	Data   any     `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

// ErrorResponse is the uniform error envelope. Errors is either a single
// message string or a field-to-message map for validation failures.
type ErrorResponse struct {
	Errors any `json:"errors"`
}

type Paging struct {
	Page      int `json:"page"`
	TotalItem int `json:"total_item"`
	TotalPage int `json:"total_page"`
}

func NewDataResponse(data any) WebResponse {
	return WebResponse{Data: data}
}

// NewPaginatedResponse wraps a page of results. TotalPage is computed from the
// total match count, not from the page's own length.
func NewPaginatedResponse(data any, page, size, totalItem int) WebResponse {
	return WebResponse{
		Data: data,
		Paging: &Paging{
			Page:      page,
			TotalItem: totalItem,
			TotalPage: (totalItem + size - 1) / size,
		},
	}
}
