package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/export"
	"github.com/laticiniossantana/notabase/internal/service"
)

// ExportHandler serializes the currently derived (scoped, filtered, sorted)
// record list, never the raw store.
type ExportHandler struct {
	svc *service.ReportService
}

func NewExportHandler(svc *service.ReportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	filters, sort := parseFilters(r)

	docs, err := h.svc.Query(claims, filters, sort)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	body := export.CSV(docs)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.CSVFileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Write(body)
}

// HTML serves the printable report inline for the browser's print /
// export-to-PDF facility; no file is saved server-side.
func (h *ExportHandler) HTML(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	filters, sort := parseFilters(r)

	docs, err := h.svc.Query(claims, filters, sort)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	body, err := export.HTML(docs, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(body)
}

func (h *ExportHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	filters, sort := parseFilters(r)

	docs, err := h.svc.Query(claims, filters, sort)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	body, err := export.XLSX(docs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.XLSXFileName))
	w.Write(body)
}
