package scheme

import (
	"agrirent/infras/otel"
	"agrirent/internal/domains/scheme/model/dto"
	"agrirent/internal/domains/scheme/service"
	"agrirent/shared/constant"
	"agrirent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Scheme
	otel    otel.Otel
}

func New(service service.Scheme, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schemes", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchemes)
		routerGroup.Get("/{id}", handler.GetSchemeByID)
	})
}

// GetSchemes lists government schemes for farmers.
// @Summary List schemes
// @Tags Scheme
// @Produce json
// @Param category query string false "Category"
// @Success 200 {object} response.Data[dto.GetSchemesResponse]
// @Router /v1/schemes [get]
func (handler *Handler) GetSchemes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchemes")
	defer scope.End()

	req := dto.ListRequest{}
	req.FromRequest(r)

	schemes, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schemes")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, schemes)
}

// GetSchemeByID returns a scheme.
// @Summary Get scheme
// @Tags Scheme
// @Produce json
// @Param id path string true "Scheme ID"
// @Success 200 {object} response.Data[dto.SchemeResponse]
// @Failure 404 {object} response.Error
// @Router /v1/schemes/{id} [get]
func (handler *Handler) GetSchemeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchemeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	scheme, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("schemeID", id).Msg("failed to get scheme")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, scheme)
}
