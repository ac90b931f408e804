package review

import (
	"agrirent/infras/otel"
	"agrirent/internal/domains/review/model/dto"
	"agrirent/internal/domains/review/service"
	"agrirent/shared/constant"
	"agrirent/shared/validator"
	"agrirent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReview)
		routerGroup.Get("/equipment/{id}", handler.GetReviews)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})
}

// GetReviews lists the reviews of a listing.
// @Summary List reviews
// @Tags Review
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} response.Data[dto.GetReviewsResponse]
// @Router /v1/reviews/equipment/{id} [get]
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reviews, err := handler.service.ListByEquipment(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reviews)
}

// CreateReview rates a rented machine.
// @Summary Add review
// @Tags Review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reviews [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	review, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	response.WithCreated(w, review)
}

// DeleteReview removes a review.
// @Summary Delete review
// @Tags Review
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("reviewID", id).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
