package dashboard

import (
	"agrirent/infras/otel"
	"agrirent/internal/domains/dashboard/service"
	"agrirent/shared/constant"
	"agrirent/transport/http/response"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/farmer", handler.GetFarmerDashboard)
		routerGroup.Get("/owner", handler.GetOwnerDashboard)
		routerGroup.Get("/admin", handler.GetAdminDashboard)
	})
}

// GetFarmerDashboard returns the bookings of the calling farmer.
// @Summary Farmer dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.FarmerDashboardResponse]
// @Router /v1/dashboard/farmer [get]
// @Security BearerAuth
func (handler *Handler) GetFarmerDashboard(w http.ResponseWriter, r *http.Request) {
	serve(w, r, handler.otel, "GetFarmerDashboard", handler.service.Farmer)
}

// GetOwnerDashboard returns the fleet, bookings and earnings of the calling owner.
// @Summary Owner dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.OwnerDashboardResponse]
// @Router /v1/dashboard/owner [get]
// @Security BearerAuth
func (handler *Handler) GetOwnerDashboard(w http.ResponseWriter, r *http.Request) {
	serve(w, r, handler.otel, "GetOwnerDashboard", handler.service.Owner)
}

// GetAdminDashboard returns the platform stats, users, bookings and listings.
// @Summary Admin dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.AdminDashboardResponse]
// @Router /v1/dashboard/admin [get]
// @Security BearerAuth
func (handler *Handler) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	serve(w, r, handler.otel, "GetAdminDashboard", handler.service.Admin)
}

func serve[T any](w http.ResponseWriter, r *http.Request, o otel.Otel, name string, load func(context.Context) (T, error)) {
	ctx, scope := o.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	res, err := load(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("dashboard", name).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
