package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

// IntegrationHandler handles the authenticated integration registry API.
type IntegrationHandler struct {
	service ports.IntegrationService
}

func NewIntegrationHandler(service ports.IntegrationService) *IntegrationHandler {
	return &IntegrationHandler{service: service}
}

// Create registers a new checkout integration for the authenticated user.
//
// @Summary      Create an integration
// @Tags         integrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntegrationRequest  true  "Integration details"
// @Success      201   {object}  createIntegrationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/integrations [post]
func (h *IntegrationHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createIntegrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	integration, err := h.service.Create(c.Request().Context(), ports.CreateIntegrationInput{
		UserID:        userID,
		Name:          req.Name,
		Platform:      req.Platform,
		Currency:      req.Currency,
		UpstreamToken: req.UpstreamToken,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingToken) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing token"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, createIntegrationResponse{
		integrationResponse: toIntegrationResponse(integration),
		HookSecret:          integration.HookSecret,
		HookPath:            "/hook/" + integration.ID,
	})
}

// List returns the authenticated user's integrations in creation order.
//
// @Summary      List integrations
// @Tags         integrations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   integrationResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/integrations [get]
func (h *IntegrationHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	integrations, err := h.service.ListForOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]integrationResponse, 0, len(integrations))
	for i := range integrations {
		out = append(out, toIntegrationResponse(&integrations[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func toIntegrationResponse(in *domain.Integration) integrationResponse {
	return integrationResponse{
		ID:        in.ID,
		Name:      in.Name,
		Platform:  in.Platform,
		Currency:  in.Currency,
		CreatedAt: in.CreatedAt,
	}
}
