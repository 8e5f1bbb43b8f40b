package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

const recentSamplesLimit = 5

var settingsSections = []string{"general", "notifications", "security", "users"}

// LabHandler serves the content behind the guarded routes. Every method
// assumes the Guard middleware already admitted the request.
type LabHandler struct {
	catalog ports.LabCatalog
}

func NewLabHandler(catalog ports.LabCatalog) *LabHandler {
	return &LabHandler{catalog: catalog}
}

// Dashboard shows the overview. When the caller was bounced here by the
// guard, the denial is echoed as a notice.
//
// @Summary      Dashboard overview
// @Tags         lab
// @Produce      json
// @Param        accessDenied   query     bool    false  "Set by a denied redirect"
// @Param        requiredLevel  query     string  false  "Tier the denied route required"
// @Success      200            {object}  dashboardResponse
// @Failure      303            {object}  domain.Decision
// @Router       /dashboard [get]
func (h *LabHandler) Dashboard(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	samples := h.catalog.Samples()
	recent := samples
	if len(recent) > recentSamplesLimit {
		recent = recent[:recentSamplesLimit]
	}

	resp := dashboardResponse{
		User:          user,
		TotalSamples:  len(samples),
		ByStatus:      countByStatus(samples),
		RecentSamples: recent,
		Trend:         h.catalog.Trend(),
	}
	if c.QueryParam("accessDenied") == "true" {
		resp.Notice = &accessNotice{
			AccessDenied:  true,
			RequiredLevel: domain.AccessLevel(c.QueryParam("requiredLevel")),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Samples lists samples, optionally filtered by status.
//
// @Summary      List samples
// @Tags         lab
// @Produce      json
// @Param        status  query     string  false  "completed, in-progress, pending or failed"
// @Success      200     {object}  samplesResponse
// @Failure      303     {object}  domain.Decision
// @Router       /samples [get]
func (h *LabHandler) Samples(c echo.Context) error {
	samples := h.catalog.Samples()
	if status := c.QueryParam("status"); status != "" {
		filtered := samples[:0]
		for _, s := range samples {
			if string(s.Status) == status {
				filtered = append(filtered, s)
			}
		}
		samples = filtered
	}
	return c.JSON(http.StatusOK, samplesResponse{Data: samples, Total: len(samples)})
}

// SampleDetails returns one sample.
//
// @Summary      Get a sample
// @Tags         lab
// @Produce      json
// @Param        id   path      string  true  "Sample ID (e.g. S-23051)"
// @Success      200  {object}  domain.Sample
// @Failure      303  {object}  domain.Decision
// @Failure      404  {object}  errorResponse
// @Router       /samples/{id} [get]
func (h *LabHandler) SampleDetails(c echo.Context) error {
	s, ok := h.catalog.Sample(c.Param("id"))
	if !ok {
		return domain.ErrSampleNotFound
	}
	return c.JSON(http.StatusOK, s)
}

// Database shows the full sample table with breakdowns.
//
// @Summary      Sample database
// @Tags         lab
// @Produce      json
// @Success      200  {object}  databaseResponse
// @Failure      303  {object}  domain.Decision
// @Router       /database [get]
func (h *LabHandler) Database(c echo.Context) error {
	samples := h.catalog.Samples()
	byType := make(map[string]int)
	for _, s := range samples {
		byType[s.Type]++
	}
	return c.JSON(http.StatusOK, databaseResponse{
		Data:     samples,
		ByStatus: countByStatus(samples),
		ByType:   byType,
	})
}

// Laboratory lists samples still awaiting results.
//
// @Summary      Samples awaiting results
// @Tags         lab
// @Produce      json
// @Success      200  {object}  laboratoryResponse
// @Failure      303  {object}  domain.Decision
// @Router       /laboratory [get]
func (h *LabHandler) Laboratory(c echo.Context) error {
	awaiting := make([]domain.Sample, 0)
	for _, s := range h.catalog.Samples() {
		if s.Status == domain.SamplePending || s.Status == domain.SampleInProgress {
			awaiting = append(awaiting, s)
		}
	}
	return c.JSON(http.StatusOK, laboratoryResponse{AwaitingResults: awaiting})
}

// Reports returns the aggregated report series.
//
// @Summary      Reports
// @Tags         lab
// @Produce      json
// @Success      200  {object}  reportsResponse
// @Failure      303  {object}  domain.Decision
// @Router       /reports [get]
func (h *LabHandler) Reports(c echo.Context) error {
	return c.JSON(http.StatusOK, reportsResponse{
		Monthly:      h.catalog.Monthly(),
		Distribution: h.catalog.ResultsDistribution(),
		Trend:        h.catalog.Trend(),
	})
}

// Settings lists the configurable sections.
//
// @Summary      Settings
// @Tags         lab
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Failure      303  {object}  domain.Decision
// @Router       /settings [get]
func (h *LabHandler) Settings(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settingsResponse{User: user, Sections: settingsSections})
}

// Profile returns the signed-in identity.
//
// @Summary      User profile
// @Tags         lab
// @Produce      json
// @Success      200  {object}  domain.Identity
// @Failure      303  {object}  domain.Decision
// @Router       /profile [get]
func (h *LabHandler) Profile(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func countByStatus(samples []domain.Sample) statusCounts {
	out := make(statusCounts)
	for _, s := range samples {
		out[s.Status]++
	}
	return out
}
