package requests

import (
	"net/http"
	"referral-service/internal/pkg/constvars"
	"strconv"
)

type Pagination struct {
	Page     int
	PageSize int
}

func ParsePagination(r *http.Request) Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPage))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(r.URL.Query().Get(constvars.URLQueryParamPageSize))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return Pagination{Page: page, PageSize: pageSize}
}
