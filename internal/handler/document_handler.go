package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/laticiniossantana/notabase/internal/auth"
	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/service"
)

type DocumentHandler struct {
	docs    *service.DocumentService
	reports *service.ReportService
}

func NewDocumentHandler(docs *service.DocumentService, reports *service.ReportService) *DocumentHandler {
	return &DocumentHandler{docs: docs, reports: reports}
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetUser(r.Context())
	filters, sort := parseFilters(r)

	docs, err := h.reports.Query(claims, filters, sort)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]models.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.ToResponse())
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"documents": out,
		"total":     len(out),
	})
}

func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse cap slightly above the 10MB document limit so the size check in
	// the service is what rejects oversized files, with its own message.
	r.ParseMultipartForm(12 << 20)

	in := service.UploadInput{
		SourceName:  r.FormValue("nomeFonte"),
		Description: r.FormValue("descricao"),
		PaidBy:      r.FormValue("pagoPor"),
		PaymentDate: r.FormValue("dataPagamento"),
		AmountPaid:  r.FormValue("valorPago"),
	}

	file, header, err := r.FormFile("file")
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusInternalServerError, "failed to read file")
			return
		}
		in.FileName = header.Filename
		in.FileType = header.Header.Get("Content-Type")
		in.Data = data
	case errors.Is(err, http.ErrMissingFile):
		// Allowed when the file field is hidden; the service decides.
	default:
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	claims := auth.GetUser(r.Context())
	doc, err := h.docs.Create(in, claims.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc.ToResponse())
}

func (h *DocumentHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docId")
	claims := auth.GetUser(r.Context())

	data, doc, err := h.docs.Download(id, claims)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", doc.FileType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, doc.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "docId")
	claims := auth.GetUser(r.Context())

	if err := h.docs.Delete(id, claims); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
