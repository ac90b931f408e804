package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/otel"
	"agrirent/internal/domains/booking/model"
	"agrirent/internal/domains/booking/model/dto"
	"agrirent/internal/domains/booking/repository"
	equipmentModel "agrirent/internal/domains/equipment/model"
	equipmentService "agrirent/internal/domains/equipment/service"
	"agrirent/internal/domains/lifecycle"
	"agrirent/internal/domains/pricing"
	"agrirent/shared"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Estimate(ctx context.Context, req dto.EstimateRequest) (dto.EstimateResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	View(ctx context.Context, role string) (dto.ViewResponse, error)
	Act(ctx context.Context, role, id string, action lifecycle.Action) (dto.ViewResponse, error)
	Find(ctx context.Context, role, id string) (model.Booking, error)
}

type serviceImpl struct {
	repo      repository.Booking
	equipment equipmentService.Equipment
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, equipment equipmentService.Equipment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		equipment: equipment,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Estimate prices a possibly incomplete booking form. The amount is advisory: the
// backend computes the billed total when the booking is created.
func (s *serviceImpl) Estimate(ctx context.Context, req dto.EstimateRequest) (res dto.EstimateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Estimate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	equipment, err := s.equipment.Find(ctx, req.EquipmentID)
	if err != nil {
		return res, fmt.Errorf("failed to price booking: %w", err)
	}

	prices := equipment.Prices()
	res.FromQuote(pricing.Estimate(req.Input(prices)), prices)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"equipment.id": req.EquipmentID, "booking.rental_type": string(req.RentalType)})

	if err = req.CheckSchedule(timezone.Today()); err != nil {
		return res, err
	}

	equipment, err := s.equipment.Find(ctx, req.EquipmentID)
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if !equipment.Bookable() {
		return res, failure.Conflict("equipment is not available for booking") // nolint:wrapcheck
	}

	prices := equipment.Prices()
	res.Estimate.FromQuote(pricing.Estimate(req.Estimate().Input(prices)), prices)

	booking, err := s.repo.Create(ctx, req.ToBackend())
	if err != nil {
		log.Error().Err(err).Str("equipmentID", req.EquipmentID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if booking.TotalAmount != res.Estimate.Amount {
		log.Info().
			Str("bookingID", booking.ID).
			Float64("estimate", res.Estimate.Amount).
			Float64("total", booking.TotalAmount).
			Msg("backend total differs from estimate")
	}

	res.Booking.FromModel(booking, constant.RoleFarmer, s.cfg.Backend.AssetHost)
	if row, ok := lifecycle.NewFarmerView([]lifecycle.Item{booking.Item()}).Row(booking.ID); ok {
		res.Booking.FromRow(row)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(equipmentModel.CacheKeyGet, req.EquipmentID))
	}()

	return res, nil
}

func (s *serviceImpl) View(ctx context.Context, role string) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.View")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, res, err = s.load(ctx, role)

	return res, err
}

// Act performs action on a booking after checking it against a fresh view, then
// rebuilds the view from a refetch. A failed action returns the error and nothing
// else; the caller keeps showing what it fetched before. Once the action is
// committed Act never fails: if the refetch fails it returns the pre-action view
// marked stale.
func (s *serviceImpl) Act(ctx context.Context, role, id string, action lifecycle.Action) (res dto.ViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Act")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"booking.id": id, "booking.action": string(action), "user.role": role})

	if !action.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking action %q", action)) // nolint:wrapcheck
	}

	view, before, err := s.load(ctx, role)
	if err != nil {
		return res, err
	}

	if _, ok := view.Row(id); !ok {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !view.Allows(id, action) {
		return res, failure.Conflict(fmt.Sprintf("cannot %s this booking", action)) // nolint:wrapcheck
	}

	if err = s.repo.Act(ctx, id, action); err != nil {
		log.Error().Err(err).Str("bookingID", id).Str("action", string(action)).Msg("booking action failed")

		return res, fmt.Errorf("failed to %s booking: %w", action, err)
	}

	_, res, loadErr := s.load(ctx, role)
	if loadErr != nil {
		log.Warn().Err(loadErr).Str("bookingID", id).Str("action", string(action)).Msg("booking action done but refetch failed")

		before.Stale = true

		return before, nil
	}

	return res, nil
}

func (s *serviceImpl) Find(ctx context.Context, role, id string) (res model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.List(ctx, role)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	booking, ok := model.Find(bookings, id)
	if !ok {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) load(ctx context.Context, role string) (lifecycle.View, dto.ViewResponse, error) {
	var res dto.ViewResponse

	if _, err := lifecycle.Build(role, nil); err != nil {
		return nil, res, failure.ForbiddenError
	}

	bookings, err := s.repo.List(ctx, role)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to get bookings")

		return nil, res, fmt.Errorf("failed to get bookings: %w", err)
	}

	view, err := lifecycle.Build(role, model.Items(bookings))
	if err != nil {
		return nil, res, fmt.Errorf("failed to build booking view: %w", err)
	}

	res.FromView(view, bookings, s.cfg.Backend.AssetHost)

	return view, res, nil
}
