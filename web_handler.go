package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pivolan/worklife_dashboard/dataset"
	"github.com/pivolan/worklife_dashboard/domain/models"
	"github.com/pivolan/worklife_dashboard/plot"
	"github.com/pivolan/worklife_dashboard/view"
)

//go:embed templates/index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

const pageTitle = "Hours Worked Per Week vs Various Health and Lifestyle Factors"

type dashboardHandler struct {
	ds     *dataset.Dataset
	logger *zap.Logger
}

func newRouter(ds *dataset.Dataset, logger *zap.Logger) http.Handler {
	h := &dashboardHandler{ds: ds, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Get("/charts", h.charts)
	r.Get("/export/{index}.png", h.exportPNG)
	r.Get("/summary", h.summary)
	r.Get("/healthz", h.health)
	return r
}

type option struct {
	Value    string
	Selected bool
}

type filterControl struct {
	Key     string
	Label   string
	Options []option
}

type exportLink struct {
	Title string
	URL   string
}

type indexPage struct {
	Title      string
	AgeMin     int
	AgeMax     int
	AgeLo      int
	AgeHi      int
	Filters    []filterControl
	ChartsURL  string
	SummaryURL string
	Exports    []exportLink
}

func (h *dashboardHandler) index(w http.ResponseWriter, r *http.Request) {
	sel := parseSelection(r.URL.Query(), h.ds, h.logger)
	query := encodeSelection(sel)
	lo, hi := h.ds.AgeDomain()

	page := indexPage{
		Title:      pageTitle,
		AgeMin:     lo,
		AgeMax:     hi,
		AgeLo:      sel.Age.Min,
		AgeHi:      sel.Age.Max,
		ChartsURL:  "/charts?" + query,
		SummaryURL: "/summary?" + query,
	}
	for _, p := range filterParams {
		selected := map[string]bool{}
		for _, v := range sel.Categories[p.Column] {
			selected[v] = true
		}
		control := filterControl{Key: p.Key, Label: p.Label}
		for _, v := range h.ds.Distinct(p.Column) {
			control.Options = append(control.Options, option{Value: v, Selected: selected[v]})
		}
		page.Filters = append(page.Filters, control)
	}
	for i, spec := range models.Charts {
		page.Exports = append(page.Exports, exportLink{
			Title: spec.Title,
			URL:   fmt.Sprintf("/export/%d.png?%s", i, query),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		h.logger.Error("render index", zap.Error(err))
	}
}

func (h *dashboardHandler) charts(w http.ResponseWriter, r *http.Request) {
	sel := parseSelection(r.URL.Query(), h.ds, h.logger)
	series := view.Render(h.ds, sel)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := plot.RenderDashboard(w, series); err != nil {
		h.logger.Error("render charts", zap.Error(err))
		http.Error(w, "Error rendering charts", http.StatusInternalServerError)
	}
}

func (h *dashboardHandler) exportPNG(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 || index >= len(models.Charts) {
		http.NotFound(w, r)
		return
	}
	spec := models.Charts[index]

	rows := view.Filter(h.ds, parseSelection(r.URL.Query(), h.ds, h.logger))
	png, err := plot.DrawCategoryMeans(spec, view.Summarize(rows, spec.Column))
	if err != nil {
		h.logger.Error("render png", zap.Int("chart", index), zap.Error(err))
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	if _, err := w.Write(png); err != nil {
		h.logger.Error("write png", zap.Int("chart", index), zap.Error(err))
	}
}

func (h *dashboardHandler) summary(w http.ResponseWriter, r *http.Request) {
	rows := view.Filter(h.ds, parseSelection(r.URL.Query(), h.ds, h.logger))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, view.SummaryTable(rows))
}

type healthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

func (h *dashboardHandler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(healthResponse{Status: "ok", Records: h.ds.Len()}); err != nil {
		h.logger.Error("encode health", zap.Error(err))
	}
}
