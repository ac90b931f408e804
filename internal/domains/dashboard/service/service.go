package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/otel"
	bookingModel "agrirent/internal/domains/booking/model"
	bookingDto "agrirent/internal/domains/booking/model/dto"
	bookingService "agrirent/internal/domains/booking/service"
	"agrirent/internal/domains/dashboard/model/dto"
	"agrirent/internal/domains/dashboard/repository"
	equipmentDto "agrirent/internal/domains/equipment/model/dto"
	equipmentService "agrirent/internal/domains/equipment/service"
	"agrirent/internal/domains/lifecycle"
	userDto "agrirent/internal/domains/user/model/dto"
	userService "agrirent/internal/domains/user/service"
	"agrirent/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Dashboard interface {
	Farmer(ctx context.Context) (dto.FarmerDashboardResponse, error)
	Owner(ctx context.Context) (dto.OwnerDashboardResponse, error)
	Admin(ctx context.Context) (dto.AdminDashboardResponse, error)
}

type serviceImpl struct {
	repo      repository.Dashboard
	bookings  bookingService.Booking
	equipment equipmentService.Equipment
	users     userService.User
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.Dashboard,
	bookings bookingService.Booking,
	equipment equipmentService.Equipment,
	users userService.User,
	cfg *config.Config,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		repo:      repo,
		bookings:  bookings,
		equipment: equipment,
		users:     users,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Farmer(ctx context.Context) (res dto.FarmerDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Farmer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	view, err := s.bookings.View(ctx, constant.RoleFarmer)
	if err != nil {
		return res, fmt.Errorf("failed to get farmer dashboard: %w", err)
	}

	res.FromView(view)

	return res, nil
}

// Owner builds the owner dashboard from a single backend fetch of the fleet and its bookings.
func (s *serviceImpl) Owner(ctx context.Context) (res dto.OwnerDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Owner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dashboard, err := s.repo.Owner(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owner dashboard")

		return res, fmt.Errorf("failed to get owner dashboard: %w", err)
	}

	view, err := lifecycle.Build(constant.RoleOwner, bookingModel.Items(dashboard.Bookings))
	if err != nil {
		return res, fmt.Errorf("failed to build booking view: %w", err)
	}

	var (
		bookings  bookingDto.ViewResponse
		equipment equipmentDto.GetEquipmentsResponse
	)

	bookings.FromView(view, dashboard.Bookings, s.cfg.Backend.AssetHost)
	equipment.FromModels(dashboard.Equipment, s.cfg.Backend.AssetHost)

	res.FromView(bookings, equipment)

	return res, nil
}

// Admin fetches the four admin panels concurrently. The first failure cancels the
// others and fails the whole dashboard.
func (s *serviceImpl) Admin(ctx context.Context) (res dto.AdminDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Admin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, statsErr := s.repo.AdminStats(gCtx)
		if statsErr != nil {
			return fmt.Errorf("stats: %w", statsErr)
		}

		res.Stats.FromModel(stats, constant.RoleAdmin, s.cfg.Backend.AssetHost)

		return nil
	})

	g.Go(func() error {
		users, usersErr := s.users.GetAll(gCtx, userDto.UsersRequest{})
		if usersErr != nil {
			return fmt.Errorf("users: %w", usersErr)
		}

		res.Users = users

		return nil
	})

	g.Go(func() error {
		bookings, viewErr := s.bookings.View(gCtx, constant.RoleAdmin)
		if viewErr != nil {
			return fmt.Errorf("bookings: %w", viewErr)
		}

		res.Bookings = bookings

		return nil
	})

	g.Go(func() error {
		equipment, equipmentErr := s.equipment.GetAllForModeration(gCtx)
		if equipmentErr != nil {
			return fmt.Errorf("equipment: %w", equipmentErr)
		}

		res.Equipment = equipment

		return nil
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to get admin dashboard")

		return dto.AdminDashboardResponse{}, fmt.Errorf("failed to get admin dashboard: %w", err)
	}

	return res, nil
}
