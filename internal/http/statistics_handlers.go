package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"platform-stats/internal/reporters"
)

type platformSummaryHandler struct {
	reportingService reporters.ReportingService
}

func NewPlatformSummaryHandler(reportingService reporters.ReportingService) AppHttpHandler {
	return &platformSummaryHandler{
		reportingService: reportingService,
	}
}

// Handle processes GET /statistics/platform requests.
func (h *platformSummaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	summary, err := h.reportingService.GetPlatformSummary(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, summary)
}

type dimensionalReportHandler struct {
	reportingService reporters.ReportingService
}

func NewDimensionalReportHandler(reportingService reporters.ReportingService) AppHttpHandler {
	return &dimensionalReportHandler{
		reportingService: reportingService,
	}
}

// Handle processes GET /statistics/{category} requests. An optional
// ?entities=a,b query restricts the report to the listed entity ids.
func (h *dimensionalReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	category, err := reporters.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return err
	}

	var entityIDs []string
	if raw := strings.TrimSpace(r.URL.Query().Get("entities")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				entityIDs = append(entityIDs, id)
			}
		}
	}

	report, err := h.reportingService.GetDimensionalReport(r.Context(), category, entityIDs)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, report)
}

type entityReportHandler struct {
	reportingService reporters.ReportingService
}

func NewEntityReportHandler(reportingService reporters.ReportingService) AppHttpHandler {
	return &entityReportHandler{
		reportingService: reportingService,
	}
}

// Handle processes GET /statistics/{category}/{entity} requests.
func (h *entityReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	category, err := reporters.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return err
	}

	row, err := h.reportingService.GetEntityReport(r.Context(), category, chi.URLParam(r, "entity"))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, row)
}

type rankingHandler struct {
	reportingService reporters.ReportingService
}

func NewRankingHandler(reportingService reporters.ReportingService) AppHttpHandler {
	return &rankingHandler{
		reportingService: reportingService,
	}
}

const defaultRankingTopN = 10

// Handle processes GET /rankings/{category}/{metric} requests.
func (h *rankingHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	category, err := reporters.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return err
	}

	order, err := reporters.ParseOrder(r.URL.Query().Get("order"))
	if err != nil {
		return err
	}

	topN := defaultRankingTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 1 {
			return errInvalidQueryParam("top_n", parseErr)
		}
		topN = parsed
	}

	entries, err := h.reportingService.GetRanking(r.Context(), category, chi.URLParam(r, "metric"), topN, order)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{
		"category": category,
		"metric":   chi.URLParam(r, "metric"),
		"entries":  entries,
	})
}
