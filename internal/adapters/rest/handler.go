package rest

import (
	"net/http"

	"github.com/cbertrand451/Big-Ten-Fight-Songs/internal/core/services"
)

// Handler manages the HTTP interface for the dashboard.
type Handler struct {
	svc    *services.Dashboard // Dependency on the Core Service
	router *http.ServeMux      // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(svc *services.Dashboard) *Handler {
	h := &Handler{
		svc:    svc,
		router: http.NewServeMux(),
	}

	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	h.router.HandleFunc("GET /health", h.HealthCheck)

	// Conference
	h.router.HandleFunc("GET /summary", h.GetSummary)
	h.router.HandleFunc("GET /rankings", h.GetRankings)
	h.router.HandleFunc("GET /rankings/{metric}", h.GetRankTable)
	h.router.HandleFunc("GET /dictionary", h.GetDictionary)
	h.router.HandleFunc("GET /export.xlsx", h.ExportWorkbook)

	// Schools
	h.router.HandleFunc("GET /schools", h.ListSchools)
	h.router.HandleFunc("GET /schools/{school}", h.GetSchool)
	h.router.HandleFunc("GET /schools/{school}/profile", h.GetProfile)
	h.router.HandleFunc("GET /schools/{school}/track", h.GetTrack)
	h.router.HandleFunc("GET /compare", h.Compare)

	// Charts
	h.router.HandleFunc("GET /charts/radar", h.RadarChart)
	h.router.HandleFunc("GET /charts/heatmap", h.HeatmapChart)
	h.router.HandleFunc("GET /charts/scatter", h.ScatterChart)
	h.router.HandleFunc("GET /charts/scatter.png", h.ScatterChart)
	h.router.HandleFunc("GET /charts/rank/{view}", h.RankChart)
}

// HealthCheck reports liveness and the loaded snapshot, if any.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if snap, err := h.svc.Snapshot(); err == nil {
		resp["snapshot"] = snap
	} else {
		resp["status"] = "empty"
	}
	writeJSON(w, http.StatusOK, resp)
}
