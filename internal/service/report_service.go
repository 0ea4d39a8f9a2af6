package service

import (
	"time"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/report"
	"github.com/laticiniossantana/notabase/internal/repository"
)

type ReportService struct {
	docs  *repository.DocumentRepo
	users *repository.UserRepo
}

func NewReportService(docs *repository.DocumentRepo, users *repository.UserRepo) *ReportService {
	return &ReportService{docs: docs, users: users}
}

func scopeFor(claims *auth.Claims) report.Scope {
	return report.Scope{Email: claims.Email, Admin: claims.IsAdmin()}
}

// Query derives the scoped, filtered, ordered record list for a session.
// The explicit owner filter is admin-only and accepts either a user id from
// the user table or an email; non-admins have it stripped.
func (s *ReportService) Query(claims *auth.Claims, f report.Filters, sort report.Sort) ([]models.Document, error) {
	if !claims.IsAdmin() {
		f.UserEmail = ""
	} else if f.UserEmail != "" {
		f.UserEmail = s.resolveOwner(f.UserEmail)
	}
	docs, err := s.docs.List()
	if err != nil {
		return nil, err
	}
	return report.Derive(docs, scopeFor(claims), f, sort, time.Now()), nil
}

// Summary groups the derived set by payer with totals.
func (s *ReportService) Summary(claims *auth.Claims, f report.Filters) ([]report.Group, float64, error) {
	docs, err := s.Query(claims, f, report.SortNewest)
	if err != nil {
		return nil, 0, err
	}
	groups, total := report.Summarize(docs)
	return groups, total, nil
}

// Dashboard summarizes the session's own documents. "This month" here counts
// by creation timestamp.
func (s *ReportService) Dashboard(claims *auth.Claims) (report.DashboardStats, error) {
	docs, err := s.Query(claims, report.Filters{}, report.SortNewest)
	if err != nil {
		return report.DashboardStats{}, err
	}
	return report.Stats(docs, time.Now()), nil
}

// AdminStats summarizes the filtered system-wide set. "This month" here
// counts by payment date, unlike Dashboard; the two screens always differed
// this way and the difference is kept.
type AdminStats struct {
	DocumentCount int     `json:"documentCount"`
	UserCount     int     `json:"userCount"`
	TotalValue    float64 `json:"totalValue"`
	ThisMonth     int     `json:"thisMonth"`
}

func (s *ReportService) AdminStats(claims *auth.Claims, f report.Filters) (AdminStats, error) {
	docs, err := s.Query(claims, f, report.SortNewest)
	if err != nil {
		return AdminStats{}, err
	}
	users, err := s.users.List()
	if err != nil {
		return AdminStats{}, err
	}
	total := 0.0
	for _, d := range docs {
		total += report.Amount(d.AmountPaid)
	}
	return AdminStats{
		DocumentCount: len(docs),
		UserCount:     len(users),
		TotalValue:    total,
		ThisMonth:     report.AdminMonthCount(docs, time.Now()),
	}, nil
}

// resolveOwner maps a user-table id to the email that records are keyed by.
// Unknown values are assumed to already be emails.
func (s *ReportService) resolveOwner(idOrEmail string) string {
	users, err := s.users.List()
	if err != nil {
		return idOrEmail
	}
	for _, u := range users {
		if u.ID == idOrEmail {
			return u.Email
		}
	}
	return idOrEmail
}
