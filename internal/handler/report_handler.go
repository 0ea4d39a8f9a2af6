package handler

import (
	"net/http"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Reports returns the payer-grouped summary over the derived record set.
func (h *ReportHandler) Reports(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	filters, _ := parseFilters(r)

	groups, total, err := h.svc.Summary(claims, filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"groups":     groups,
		"totalGeral": total,
	})
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	stats, err := h.svc.Dashboard(claims)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *ReportHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	filters, _ := parseFilters(r)

	stats, err := h.svc.AdminStats(claims, filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
