package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/datalab/sample-tracker/internal/api/handler"
	"github.com/datalab/sample-tracker/internal/core/domain"
)

// protectedRoute declares a guarded route and the tier it requires.
type protectedRoute struct {
	method string
	path   string
	level  domain.AccessLevel
	serve  func(*handler.LabHandler, echo.Context) error
}

var protectedRoutes = []protectedRoute{
	{http.MethodGet, "/dashboard", domain.LevelMember, (*handler.LabHandler).Dashboard},
	{http.MethodGet, "/samples", domain.LevelMember, (*handler.LabHandler).Samples},
	{http.MethodPost, "/samples", domain.LevelMember, (*handler.LabHandler).CreateSample},
	{http.MethodGet, "/samples/:id", domain.LevelMember, (*handler.LabHandler).SampleDetails},
	{http.MethodGet, "/reports", domain.LevelMember, (*handler.LabHandler).Reports},
	{http.MethodGet, "/profile", domain.LevelMember, (*handler.LabHandler).Profile},
	{http.MethodGet, "/database", domain.LevelWorker, (*handler.LabHandler).Database},
	{http.MethodGet, "/laboratory", domain.LevelWorker, (*handler.LabHandler).Laboratory},
	{http.MethodPost, "/laboratory/results", domain.LevelWorker, (*handler.LabHandler).RecordLabResult},
	{http.MethodGet, "/settings", domain.LevelHandler, (*handler.LabHandler).Settings},
	{http.MethodPost, "/settings/profile", domain.LevelHandler, (*handler.LabHandler).UpdateProfile},
	{http.MethodPost, "/settings/notifications", domain.LevelHandler, (*handler.LabHandler).UpdateNotifications},
}

// requiredLevel resolves a concrete page path (e.g. /samples/S-23051) to the
// tier its route requires. Only pages a client can display are considered.
func requiredLevel(path string) (domain.AccessLevel, bool) {
	for _, r := range protectedRoutes {
		if r.method == http.MethodGet && matchPath(r.path, path) {
			return r.level, true
		}
	}
	return "", false
}

// matchPath compares segment by segment; ":name" segments match any
// non-empty value.
func matchPath(pattern, path string) bool {
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
