// Package report derives views over the document collection: ownership
// scoping, filtering, ordering, and the payer-grouped payment summary.
// Everything here is pure; persistence stays in the repositories.
package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/laticiniossantana/notabase/internal/models"
)

// MissingPayerLabel groups documents whose payer was left blank.
const MissingPayerLabel = "Não informado"

type Scope struct {
	Email string
	Admin bool
}

// Filters are AND-combined; each one is independently optional.
type Filters struct {
	Search    string // substring over source, payer, file name, description
	FileType  string // "pdf", "image" or empty
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	Period    string // "week", "month", "year" or empty
	Payer     string // exact match
	UserEmail string // admin-only explicit owner filter
}

type Sort string

const (
	SortNewest Sort = "newest" // createdAt descending (default)
	SortOldest Sort = "oldest"
	SortSource Sort = "source"
	SortPayer  Sort = "payer"
)

// Derive applies scope, then filters, then ordering. now anchors the
// relative period buckets.
func Derive(docs []models.Document, scope Scope, f Filters, s Sort, now time.Time) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if !scope.Admin && d.UserID != scope.Email {
			continue
		}
		if matches(d, f, now) {
			out = append(out, d)
		}
	}
	sortDocs(out, s)
	return out
}

func matches(d models.Document, f Filters, now time.Time) bool {
	if f.UserEmail != "" && d.UserID != f.UserEmail {
		return false
	}
	if f.Search != "" && !matchesSearch(d, f.Search) {
		return false
	}
	switch f.FileType {
	case "pdf":
		if d.FileType != "application/pdf" {
			return false
		}
	case "image":
		if !strings.HasPrefix(d.FileType, "image/") {
			return false
		}
	}
	if f.Payer != "" && d.PaidBy != f.Payer {
		return false
	}
	if f.StartDate != "" || f.EndDate != "" {
		if !inDateRange(d.PaymentDate, f.StartDate, f.EndDate) {
			return false
		}
	}
	if f.Period != "" && !inPeriod(d.PaymentDate, f.Period, now) {
		return false
	}
	return true
}

// matchesSearch is an OR across the four text fields, case-insensitive.
func matchesSearch(d models.Document, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{d.SourceName, d.PaidBy, d.FileName, d.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func inDateRange(paymentDate, start, end string) bool {
	day, ok := parseDay(paymentDate)
	if !ok {
		return false
	}
	if start != "" {
		if from, ok := parseDay(start); ok && day.Before(from) {
			return false
		}
	}
	if end != "" {
		if to, ok := parseDay(end); ok && day.After(to) {
			return false
		}
	}
	return true
}

// inPeriod buckets a payment date against the current date: "week" runs from
// the most recent Sunday through the following Saturday, inclusive;
// "month"/"year" compare the calendar month/year.
func inPeriod(paymentDate, period string, now time.Time) bool {
	day, ok := parseDay(paymentDate)
	if !ok {
		return false
	}
	switch period {
	case "week":
		// Parsed payment dates are UTC midnights; anchor the week the same way.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		weekStart := today.AddDate(0, 0, -int(now.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return !day.Before(weekStart) && !day.After(weekEnd)
	case "month":
		return day.Year() == now.Year() && day.Month() == now.Month()
	case "year":
		return day.Year() == now.Year()
	}
	return true
}

func sortDocs(docs []models.Document, s Sort) {
	switch s {
	case SortOldest:
		sort.SliceStable(docs, func(i, j int) bool {
			return createdAt(docs[i]).Before(createdAt(docs[j]))
		})
	case SortSource:
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].SourceName < docs[j].SourceName
		})
	case SortPayer:
		sort.SliceStable(docs, func(i, j int) bool {
			return docs[i].PaidBy < docs[j].PaidBy
		})
	default: // SortNewest
		sort.SliceStable(docs, func(i, j int) bool {
			return createdAt(docs[j]).Before(createdAt(docs[i]))
		})
	}
}

// Group is one payer's share of the filtered set.
type Group struct {
	PaidBy        string                    `json:"pagoPor"`
	TotalPaid     float64                   `json:"totalPago"`
	DocumentCount int                       `json:"documentCount"`
	Sources       []string                  `json:"fontes"`
	Documents     []models.DocumentResponse `json:"documentos"`
}

// Summarize groups documents by payer, ordered by total paid descending.
// The second return is the grand total across all groups.
func Summarize(docs []models.Document) ([]Group, float64) {
	byPayer := map[string]*Group{}
	order := []string{}

	for _, d := range docs {
		payer := d.PaidBy
		if payer == "" {
			payer = MissingPayerLabel
		}
		g, ok := byPayer[payer]
		if !ok {
			g = &Group{PaidBy: payer, Sources: []string{}, Documents: []models.DocumentResponse{}}
			byPayer[payer] = g
			order = append(order, payer)
		}
		g.TotalPaid += Amount(d.AmountPaid)
		g.DocumentCount++
		g.Documents = append(g.Documents, d.ToResponse())
		if !containsString(g.Sources, d.SourceName) {
			g.Sources = append(g.Sources, d.SourceName)
		}
	}

	groups := make([]Group, 0, len(order))
	for _, payer := range order {
		groups = append(groups, *byPayer[payer])
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalPaid > groups[j].TotalPaid
	})

	total := 0.0
	for _, g := range groups {
		total += g.TotalPaid
	}
	return groups, total
}

// DashboardStats summarizes a user's own documents. "This month" counts by
// creation timestamp, not payment date; the admin report counts the other
// way, and the two are intentionally different.
type DashboardStats struct {
	Total      int `json:"total"`
	ThisMonth  int `json:"thisMonth"`
	PDFCount   int `json:"pdfCount"`
	ImageCount int `json:"imageCount"`
}

func Stats(docs []models.Document, now time.Time) DashboardStats {
	s := DashboardStats{Total: len(docs)}
	for _, d := range docs {
		created := createdAt(d)
		if created.Year() == now.Year() && created.Month() == now.Month() {
			s.ThisMonth++
		}
		if d.FileType == "application/pdf" {
			s.PDFCount++
		}
		if strings.HasPrefix(d.FileType, "image/") {
			s.ImageCount++
		}
	}
	return s
}

// AdminMonthCount counts documents whose payment date falls in the current
// calendar month.
func AdminMonthCount(docs []models.Document, now time.Time) int {
	n := 0
	for _, d := range docs {
		if day, ok := parseDay(d.PaymentDate); ok &&
			day.Year() == now.Year() && day.Month() == now.Month() {
			n++
		}
	}
	return n
}

// Amount parses a stored amount string; anything unparseable counts as zero.
func Amount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func createdAt(d models.Document) time.Time {
	t, err := time.Parse(time.RFC3339, d.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
