package rest

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/adapters/render"
	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/charts"
)

const pngSuffix = ".png"

// RadarChart handles GET /charts/radar?school=A[&school=B]
func (h *Handler) RadarChart(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.SchoolRadar(r.URL.Query()["school"]...)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// HeatmapChart handles GET /charts/heatmap
func (h *Handler) HeatmapChart(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Heatmap()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// ScatterChart handles GET /charts/scatter[.png]?school=...
func (h *Handler) ScatterChart(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Scatter(r.URL.Query()["school"]...)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeChart(w, c, strings.HasSuffix(r.URL.Path, pngSuffix))
}

// RankChart handles GET /charts/rank/{view}[.png]?school=A[&school=B]
func (h *Handler) RankChart(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	asPNG := strings.HasSuffix(view, pngSuffix)
	view = strings.TrimSuffix(view, pngSuffix)

	schools := r.URL.Query()["school"]
	if len(schools) > 2 {
		writeErrorWithCode(w, http.StatusBadRequest, "at most two schools can be highlighted", errCodeInvalidArgument)
		return
	}
	c, err := h.svc.RankChart(view, schools...)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.writeChart(w, c, asPNG)
}

func (h *Handler) writeChart(w http.ResponseWriter, c charts.Chart, asPNG bool) {
	if !asPNG {
		writeJSON(w, http.StatusOK, c)
		return
	}
	// Render fully before writing so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := render.PNG(&buf, c, 0); err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
