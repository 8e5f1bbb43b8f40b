package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/datalab/sample-tracker/internal/api/metrics"
	"github.com/datalab/sample-tracker/internal/core/domain"
	"github.com/datalab/sample-tracker/internal/core/ports"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// RouteLevels resolves the tier a protected path requires.
type RouteLevels func(path string) (domain.AccessLevel, bool)

// SessionHandler streams guard decisions to long-lived clients.
type SessionHandler struct {
	watcher  ports.SessionWatcher
	levels   RouteLevels
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

func NewSessionHandler(watcher ports.SessionWatcher, levels RouteLevels, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		watcher: watcher,
		levels:  levels,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log: log,
	}
}

// Watch upgrades to a WebSocket and pushes a Decision for route every time
// the caller's session slot changes, including changes made from other tabs.
//
// @Summary      Watch the guard decision for a route
// @Tags         session
// @Param        route  query  string  true  "Protected path being displayed (e.g. /database)"
// @Success      101
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /session/watch [get]
func (h *SessionHandler) Watch(c echo.Context) error {
	origin, err := ctxOrigin(c)
	if err != nil {
		return err
	}

	route := c.QueryParam("route")
	if route == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "route is required")
	}
	required, ok := h.levels(route)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown route")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		return nil
	}
	defer conn.Close()

	metrics.SessionWatchersActive.Inc()
	defer metrics.SessionWatchersActive.Dec()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	go h.readPump(conn, cancel)
	go h.pingLoop(ctx, conn)

	err = h.watcher.Watch(ctx, origin, required, route, func(d domain.Decision) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(d)
	})
	if err != nil && ctx.Err() == nil {
		h.log.Warn().Err(err).Str("origin", origin).Str("route", route).Msg("session watch ended")
	}
	return nil
}

// readPump discards client frames and cancels the watch once the peer goes away.
func (h *SessionHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func (h *SessionHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
