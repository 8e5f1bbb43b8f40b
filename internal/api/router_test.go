package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datalab/sample-tracker/internal/api/middleware"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/service"
	"github.com/datalab/sample-tracker/internal/infrastructure/db/memory"
)

// browser replays the origin cookie across requests, like the tabs of one
// browser do.
type browser struct {
	t      *testing.T
	e      *echo.Echo
	cookie *http.Cookie
}

func newTestRouter(t *testing.T) (*echo.Echo, *memory.SessionRepository) {
	t.Helper()

	log := zerolog.Nop()
	sessions := memory.NewSessionRepository()
	identities := service.NewIdentityService(memory.NewStaticIdentityRepository(), log)
	guard := service.NewGuard(sessions, log)

	e := NewRouter(Dependencies{
		Identities: identities,
		Sessions:   service.NewSessionService(identities, sessions, 0, log),
		Guard:      guard,
		Watcher:    service.NewWatcher(guard, sessions, log),
		Catalog:    memory.NewLabCatalog(),
		Origins:    middleware.NewOriginIssuer("test-secret", time.Hour),
		Log:        log,
		Registry:   prometheus.NewRegistry(),
	})
	return e, sessions
}

func (b *browser) do(method, target, body string) *httptest.ResponseRecorder {
	b.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}

	rec := httptest.NewRecorder()
	b.e.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.OriginCookie {
			b.cookie = c
		}
	}
	return rec
}

func TestRouter_SignInNavigateSignOut(t *testing.T) {
	e, _ := newTestRouter(t)
	b := &browser{t: t, e: e}

	// Anonymous visit is bounced to login with the original path.
	rec := b.do(http.MethodGet, "/database", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?from=%2Fdatabase", rec.Header().Get(echo.HeaderLocation))
	require.NotNil(t, b.cookie, "origin cookie must be issued on first contact")

	// A worker signs in and reaches the worker page.
	rec = b.do(http.MethodPost, "/auth/login", `{"userId":"25wk001","password":"labpass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = b.do(http.MethodGet, "/database", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// But not the handler page.
	rec = b.do(http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard?accessDenied=true&requiredLevel=handler", rec.Header().Get(echo.HeaderLocation))

	var d domain.Decision
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, domain.StateUnauthorized, d.State)

	// Sign out; the next navigation lands on login again.
	rec = b.do(http.MethodPost, "/auth/logout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = b.do(http.MethodGet, "/database", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?from=%2Fdatabase", rec.Header().Get(echo.HeaderLocation))
}

func TestRouter_TabsShareOneSession(t *testing.T) {
	e, _ := newTestRouter(t)
	tab1 := &browser{t: t, e: e}

	rec := tab1.do(http.MethodPost, "/auth/login", `{"userId":"25hd001","password":"labpass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	tab2 := &browser{t: t, e: e, cookie: tab1.cookie}
	rec = tab2.do(http.MethodGet, "/settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Signing out in one tab signs out the other.
	tab1.do(http.MethodPost, "/auth/logout", "")
	rec = tab2.do(http.MethodGet, "/settings", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)

	// A different browser never sees the session.
	other := &browser{t: t, e: e}
	tab1.do(http.MethodPost, "/auth/login", `{"userId":"25hd001","password":"labpass"}`)
	rec = other.do(http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRouter_CorruptSessionFailsClosed(t *testing.T) {
	e, sessions := newTestRouter(t)
	b := &browser{t: t, e: e}

	rec := b.do(http.MethodPost, "/auth/login", `{"userId":"25mb001","password":"labpass"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = b.do(http.MethodGet, "/auth/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var me domain.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))

	// Another client overwrites the slot with garbage.
	origin := originOf(t, b)
	sessions.SetRaw(origin, []byte(`{"id":"25mb001","accessLevel":"root"}`))

	rec = b.do(http.MethodGet, "/dashboard", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?from=%2Fdashboard", rec.Header().Get(echo.HeaderLocation))

	rec = b.do(http.MethodGet, "/auth/session", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_LoginErrors(t *testing.T) {
	e, _ := newTestRouter(t)
	b := &browser{t: t, e: e}

	rec := b.do(http.MethodPost, "/auth/login", `{"userId":"25xx001","password":"labpass"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "ID format should be YYxxNNN")

	rec = b.do(http.MethodPost, "/auth/login", `{"userId":"99hd999","password":"labpass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid ID or password")
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	e, _ := newTestRouter(t)
	b := &browser{t: t, e: e}

	assert.Equal(t, http.StatusOK, b.do(http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, b.do(http.MethodGet, "/health/ready", "").Code)
	assert.Equal(t, http.StatusOK, b.do(http.MethodGet, "/metrics", "").Code)
	assert.Nil(t, b.cookie, "operational endpoints must not mint origins")

	rec := b.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, domain.LandingRoute, rec.Header().Get(echo.HeaderLocation))
}

func originOf(t *testing.T, b *browser) string {
	t.Helper()
	require.NotNil(t, b.cookie)
	origin, err := middleware.NewOriginIssuer("test-secret", time.Hour).Parse(b.cookie.Value)
	require.NoError(t, err)
	return origin
}

func TestRouter_FormsAreGuarded(t *testing.T) {
	e, _ := newTestRouter(t)

	anon := &browser{t: t, e: e}
	rec := anon.do(http.MethodPost, "/samples", `{}`)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?from=%2Fsamples", rec.Header().Get(echo.HeaderLocation))

	member := &browser{t: t, e: e}
	rec = member.do(http.MethodPost, "/auth/login", `{"userId":"25mb001","password":"labpass"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = member.do(http.MethodPost, "/samples", `{"name":"Saliva","type":"saliva","batchNumber":"B-7","dateCollected":"2025-04-02"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = member.do(http.MethodPost, "/settings/profile", `{"name":"Sam","email":"sam@datalab.example","role":"member"}`)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard?accessDenied=true&requiredLevel=handler", rec.Header().Get(echo.HeaderLocation))

	// Validation failures surface through the shared error handler.
	rec = member.do(http.MethodPost, "/samples", `{"type":"saliva","batchNumber":"B-7","dateCollected":"2025-04-02"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sample name must be at least 2 characters.")
}
