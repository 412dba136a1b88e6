package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

const hookSecretHeader = "x-hook-secret"

// WebhookHandler handles inbound payment webhooks from checkout platforms.
type WebhookHandler struct {
	service ports.WebhookService
}

func NewWebhookHandler(service ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// Receive handles POST /hook/:id, one webhook call processed end-to-end.
// The caller is acked with {ok:true} whenever the upstream answered, even
// with a rejection; only a transport-level fault yields a 500.
//
// @Summary      Receive a checkout webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        id             path      string          true  "Integration ID"
// @Param        x-hook-secret  header    string          true  "Webhook secret"
// @Param        body           body      webhookRequest  true  "Checkout event payload"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /hook/{id} [post]
func (h *WebhookHandler) Receive(c echo.Context) error {
	// malformed bodies are normalized, not rejected; a type mismatch on
	// one field must not discard the fields the decoder already filled
	var req webhookRequest
	_ = c.Bind(&req)

	err := h.service.Receive(c.Request().Context(), ports.ReceiveInput{
		IntegrationID: c.Param("id"),
		HookSecret:    c.Request().Header.Get(hookSecretHeader),
		Body:          toWebhookInput(req),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIntegrationNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
		case errors.Is(err, domain.ErrInvalidHookSecret):
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid secret"})
		case errors.Is(err, domain.ErrUpstreamUnreachable):
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed"})
		}
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// toWebhookInput maps the HTTP request to the service DTO.
func toWebhookInput(r webhookRequest) ports.WebhookInput {
	return ports.WebhookInput{
		TransactionID: r.TransactionID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Value:         r.Value,
		UTMSource:     r.UTMSource,
		UTMCampaign:   r.UTMCampaign,
		UTMMedium:     r.UTMMedium,
		UTMContent:    r.UTMContent,
		UTMTerm:       r.UTMTerm,
	}
}
