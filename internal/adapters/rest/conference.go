package rest

import (
	"net/http"
	"strings"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/export"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/domain"
)

// GetSummary handles GET /summary
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// GetRankings handles GET /rankings
func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	rk, err := h.svc.Rankings()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rk)
}

// GetRankTable handles GET /rankings/{metric}?order=asc|desc. Without an
// order the metric's own better-first direction is used.
func (h *Handler) GetRankTable(w http.ResponseWriter, r *http.Request) {
	m, err := domain.ParseMetric(r.PathValue("metric"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	ascending := !m.HigherIsBetter()
	switch strings.ToLower(r.URL.Query().Get("order")) {
	case "":
	case "asc":
		ascending = true
	case "desc":
		ascending = false
	default:
		writeErrorWithCode(w, http.StatusBadRequest, "order must be asc or desc", errCodeInvalidArgument)
		return
	}

	t, err := h.svc.RankTable(m, ascending)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// GetDictionary handles GET /dictionary
func (h *Handler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Dictionary())
}

// ExportWorkbook handles GET /export.xlsx
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	report, err := export.FromDashboard(h.svc, nil)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="fight_songs.xlsx"`)
	if err := export.Write(w, report); err != nil {
		writeServiceError(w, err)
	}
}
