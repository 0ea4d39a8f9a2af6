package handler

import (
	"net/http"

	"github.com/laticiniossantana/notabase/internal/models"
	"github.com/laticiniossantana/notabase/internal/service"
)

type FormConfigHandler struct {
	svc *service.FieldConfigService
}

func NewFormConfigHandler(svc *service.FieldConfigService) *FormConfigHandler {
	return &FormConfigHandler{svc: svc}
}

// Get returns the effective configuration, falling back to defaults when
// nothing has been saved yet.
func (h *FormConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	fields, err := h.svc.Effective()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

func (h *FormConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fields []models.Field `json:"fields"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	fields, err := h.svc.Save(req.Fields)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

func (h *FormConfigHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FieldID  string `json:"fieldId"`
		Property string `json:"property"`
		Value    bool   `json:"value"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	fields, err := h.svc.Toggle(req.FieldID, req.Property, req.Value)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

func (h *FormConfigHandler) Delete(w http.ResponseWriter, r *http.Request) {
	fields, err := h.svc.Reset()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}
