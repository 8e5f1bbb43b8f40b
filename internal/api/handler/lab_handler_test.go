package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/datalab/sample-tracker/internal/api/middleware"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/infrastructure/db/memory"
)

func newLabContext(target string, user *domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newTestContext(http.MethodGet, target, "")
	if user != nil {
		c.Set(middleware.ContextIdentity, user)
	}
	return c, rec
}

func TestLabHandler_Dashboard_EchoesDenial(t *testing.T) {
	handler := NewLabHandler(memory.NewLabCatalog())
	jamie := domain.Registry()[2]

	c, rec := newLabContext("/dashboard?accessDenied=true&requiredLevel=worker", &jamie)
	if err := handler.Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp dashboardResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Notice == nil || !resp.Notice.AccessDenied || resp.Notice.RequiredLevel != domain.LevelWorker {
		t.Errorf("expected access denied notice for worker, got %+v", resp.Notice)
	}
	if resp.User == nil || resp.User.ID != "25mb001" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
	if len(resp.RecentSamples) > recentSamplesLimit {
		t.Errorf("expected at most %d recent samples, got %d", recentSamplesLimit, len(resp.RecentSamples))
	}
}

func TestLabHandler_Dashboard_RequiresIdentity(t *testing.T) {
	handler := NewLabHandler(memory.NewLabCatalog())

	c, _ := newLabContext("/dashboard", nil)
	var he *echo.HTTPError
	if err := handler.Dashboard(c); !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLabHandler_Samples_FilterByStatus(t *testing.T) {
	handler := NewLabHandler(memory.NewLabCatalog())

	c, rec := newLabContext("/samples?status=pending", nil)
	if err := handler.Samples(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp samplesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total == 0 || resp.Total != len(resp.Data) {
		t.Fatalf("unexpected totals: %d / %d", resp.Total, len(resp.Data))
	}
	for _, s := range resp.Data {
		if s.Status != domain.SamplePending {
			t.Errorf("sample %s has status %s", s.ID, s.Status)
		}
	}
}

func TestLabHandler_SampleDetails(t *testing.T) {
	handler := NewLabHandler(memory.NewLabCatalog())

	c, rec := newLabContext("/samples/S-23051", nil)
	c.SetParamNames("id")
	c.SetParamValues("S-23051")
	if err := handler.SampleDetails(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newLabContext("/samples/S-00000", nil)
	c.SetParamNames("id")
	c.SetParamValues("S-00000")
	if err := handler.SampleDetails(c); !errors.Is(err, domain.ErrSampleNotFound) {
		t.Fatalf("expected ErrSampleNotFound, got %v", err)
	}
}

func TestLabHandler_Laboratory_OnlyAwaitingResults(t *testing.T) {
	handler := NewLabHandler(memory.NewLabCatalog())

	c, rec := newLabContext("/laboratory", nil)
	if err := handler.Laboratory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp laboratoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, s := range resp.AwaitingResults {
		if s.Status != domain.SamplePending && s.Status != domain.SampleInProgress {
			t.Errorf("sample %s should not await results (status %s)", s.ID, s.Status)
		}
	}
}
