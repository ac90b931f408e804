package router

import (
	"agrirent/internal/handlers/booking"
	"agrirent/internal/handlers/dashboard"
	"agrirent/internal/handlers/equipment"
	"agrirent/internal/handlers/review"
	"agrirent/internal/handlers/scheme"
	"agrirent/internal/handlers/session"
	"agrirent/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Session   session.Handler
	Equipment equipment.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
	User      user.Handler
	Review    review.Handler
	Scheme    scheme.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Equipment.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Scheme.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
