package booking

import (
	"agrirent/internal/domains/message/model/dto"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/validator"
	"agrirent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type sendMessageBody struct {
	Content string `json:"content"`
}

// GetMessages returns the chat of a booking with its peer.
// @Summary Booking chat
// @Tags Message
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ThreadResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/messages [get]
// @Security BearerAuth
func (handler *Handler) GetMessages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMessages")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	thread, err := handler.messages.Thread(ctx, shared.UserRole(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get messages")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, thread)
}

// SendMessage posts a chat message to the peer of a booking.
// @Summary Send message
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body sendMessageBody true "Message"
// @Success 201 {object} response.Data[dto.MessageResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/{id}/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	body := sendMessageBody{}

	if err := validator.Validate(request.Body, &body); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.SendMessageRequest{BookingID: chi.URLParam(request, constant.RequestParamID), Content: body.Content}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	message, err := handler.messages.Send(ctx, shared.UserRole(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to send message")

		response.WithError(writer, err)

		return
	}

	response.WithCreated(writer, message)
}
