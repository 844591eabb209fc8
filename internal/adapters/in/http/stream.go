package http

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// StreamJourneys handles GET /api/v1/journeys/stream. Each journey change is sent
// as one server-sent event until the client disconnects.
func (s *Server) StreamJourneys(ctx echo.Context) error {
	changes, cancel := s.journeys.Subscribe()
	defer cancel()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			data, err := json.Marshal(toJourney(change))
			if err != nil {
				s.logger.Error("encode journey change", "journey_id", change.ID.String(), "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %s\nevent: journey\ndata: %s\n\n", change.ID, data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
