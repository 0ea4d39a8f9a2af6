package handler

import (
	"net/http"

	"github.com/laticiniossantana/notabase/internal/report"
)

// parseFilters reads the shared filter/sort query parameters used by the
// listing, report and export endpoints.
func parseFilters(r *http.Request) (report.Filters, report.Sort) {
	q := r.URL.Query()
	f := report.Filters{
		Search:    q.Get("search"),
		FileType:  q.Get("fileType"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Period:    q.Get("period"),
		Payer:     q.Get("payer"),
		UserEmail: q.Get("user"),
	}
	sort := report.Sort(q.Get("sort"))
	switch sort {
	case report.SortOldest, report.SortSource, report.SortPayer:
	default:
		sort = report.SortNewest
	}
	return f, sort
}
