package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

// EventHandler exposes the delivery ledger to integration owners.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /v1/integrations/:id/events, most recent first, capped
// at 50 rows.
//
// @Summary      List recent delivery events for an integration
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "Integration ID"
// @Param        limit  query     int     false  "Maximum number of rows (default and cap: 50)"
// @Success      200  {array}   domain.DeliveryEvent
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/integrations/{id}/events [get]
func (h *EventHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.service.ListRecent(c.Request().Context(), userID, c.Param("id"), limit)
	if err != nil {
		if errors.Is(err, domain.ErrIntegrationNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "integration not found"})
		}
		return err
	}

	if events == nil {
		events = []domain.DeliveryEvent{}
	}
	return c.JSON(http.StatusOK, events)
}
