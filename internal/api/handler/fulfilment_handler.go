package handler

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/fulfilmenthub/notify-adapter/internal/api/middleware"
	"github.com/fulfilmenthub/notify-adapter/internal/domain"
	"github.com/fulfilmenthub/notify-adapter/internal/fulfilment"
)

// Dispatcher abstracts delivery to the notification provider. Stubbing
// this interface in tests gives full control over provider behaviour
// without real HTTP calls.
type Dispatcher interface {
	SendEmail(ctx context.Context, data domain.FulfilmentData, templateID string, logCtx domain.LogContext) domain.Result
}

// FulfilmentHandler handles the inbound fulfilment webhook: validate,
// then dispatch, then write the normalized result. Validation failures
// short-circuit before any credential or network work.
type FulfilmentHandler struct {
	validator  *fulfilment.Validator
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewFulfilmentHandler(v *fulfilment.Validator, d Dispatcher, logger *zap.Logger) *FulfilmentHandler {
	return &FulfilmentHandler{validator: v, dispatcher: d, logger: logger}
}

// Send handles the fulfilment webhook on /. The route is registered for
// all methods; the validator owns the 405 contract.
func (h *FulfilmentHandler) Send(w http.ResponseWriter, r *http.Request) {
	validated, logCtx, err := h.validator.Validate(r)
	if err != nil {
		h.logger.Error(err.Error(),
			append(logCtx.Fields(),
				zap.String("correlation_id", apimw.GetCorrelationID(r.Context())))...)
		respondMessage(w, statusForError(err), err.Error())
		return
	}

	result := h.dispatcher.SendEmail(r.Context(), validated.Data, validated.TemplateID, validated.LogContext)
	respondMessage(w, result.StatusCode, result.Message)
}
