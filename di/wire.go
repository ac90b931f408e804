//go:build wireinject
// +build wireinject

package di

import (
	"agrirent/config"
	"agrirent/infras/backend"
	"agrirent/infras/jwt"
	"agrirent/infras/otel"
	"agrirent/infras/redis"
	"agrirent/permissions"
	"agrirent/shared/cache"
	"agrirent/transport/http"
	"agrirent/transport/http/middleware"
	"agrirent/transport/http/router"

	"github.com/google/wire"

	bookingRepository "agrirent/internal/domains/booking/repository"
	bookingService "agrirent/internal/domains/booking/service"
	dashboardRepository "agrirent/internal/domains/dashboard/repository"
	dashboardService "agrirent/internal/domains/dashboard/service"
	equipmentRepository "agrirent/internal/domains/equipment/repository"
	equipmentService "agrirent/internal/domains/equipment/service"
	messageRepository "agrirent/internal/domains/message/repository"
	messageService "agrirent/internal/domains/message/service"
	reviewRepository "agrirent/internal/domains/review/repository"
	reviewService "agrirent/internal/domains/review/service"
	schemeRepository "agrirent/internal/domains/scheme/repository"
	schemeService "agrirent/internal/domains/scheme/service"
	sessionRepository "agrirent/internal/domains/session/repository"
	sessionService "agrirent/internal/domains/session/service"
	userRepository "agrirent/internal/domains/user/repository"
	userService "agrirent/internal/domains/user/service"

	bookingHandler "agrirent/internal/handlers/booking"
	dashboardHandler "agrirent/internal/handlers/dashboard"
	equipmentHandler "agrirent/internal/handlers/equipment"
	reviewHandler "agrirent/internal/handlers/review"
	schemeHandler "agrirent/internal/handlers/scheme"
	sessionHandler "agrirent/internal/handlers/session"
	userHandler "agrirent/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionRepository.NewAuth,
	sessionRepository.NewStore,
	sessionService.New,
)

var equipmentDomain = wire.NewSet(
	equipmentRepository.New,
	equipmentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var messageDomain = wire.NewSet(
	messageRepository.New,
	messageService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardRepository.New,
	dashboardService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var schemeDomain = wire.NewSet(
	schemeRepository.New,
	schemeService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	equipmentDomain,
	bookingDomain,
	messageDomain,
	dashboardDomain,
	userDomain,
	reviewDomain,
	schemeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	sessionHandler.New,
	equipmentHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
	userHandler.New,
	reviewHandler.New,
	schemeHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
