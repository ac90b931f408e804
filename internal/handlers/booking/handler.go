package booking

import (
	"agrirent/config"
	"agrirent/infras/otel"
	"agrirent/internal/domains/booking/model/dto"
	"agrirent/internal/domains/booking/service"
	"agrirent/internal/domains/lifecycle"
	messageService "agrirent/internal/domains/message/service"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/validator"
	"agrirent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Booking
	messages messageService.Message
	cfg      *config.Config
	otel     otel.Otel
}

func New(service service.Booking, messages messageService.Message, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		messages: messages,
		cfg:      cfg,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/estimates", handler.Estimate)

	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/{id}/messages", handler.GetMessages)
		routerGroup.Post("/{id}/messages", handler.SendMessage)
		routerGroup.Get("/{id}/chat", handler.Chat)
		routerGroup.Post("/{id}/{action}", handler.ActOnBooking)
	})
}

// Estimate prices a booking form while it is being filled in. Incomplete forms
// are priced at zero.
// @Summary Estimate a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.EstimateRequest true "Booking form"
// @Success 200 {object} response.Data[dto.EstimateResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/estimates [post]
func (handler *Handler) Estimate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Estimate")
	defer scope.End()

	req := dto.EstimateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	estimate, err := handler.service.Estimate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to estimate booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, estimate)
}

// CreateBooking submits a booking request to the equipment owner.
// @Summary Create a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithCreated(writer, booking)
}

// GetBookings returns the bookings of the caller grouped by lifecycle bucket,
// each with the actions the caller may take.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.View(ctx, shared.UserRole(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// ActOnBooking approves, rejects, completes or cancels a booking and returns the
// refreshed list.
// @Summary Act on a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param action path string true "approve, reject, complete, cancel or force-cancel"
// @Success 200 {object} response.Data[dto.ViewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/{action} [post]
// @Security BearerAuth
func (handler *Handler) ActOnBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActOnBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	action := lifecycle.Action(chi.URLParam(request, constant.RequestParamAction))

	bookings, err := handler.service.Act(ctx, shared.UserRole(ctx), id, action)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Str("action", string(action)).Msg("failed to act on booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking " + id + " " + string(action))

	response.WithJSON(writer, http.StatusOK, bookings)
}
