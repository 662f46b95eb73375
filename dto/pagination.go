package dto

// ListQuery carries the common pagination and search params of admin list
// endpoints. Bound from query string with gin's form binding.
type ListQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
}

const maxPageSize = 100

func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
