package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/otel"
	"agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/equipment/model/dto"
	"agrirent/internal/domains/equipment/repository"
	reviewService "agrirent/internal/domains/review/service"
	"agrirent/shared"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Equipment interface {
	GetAll(ctx context.Context, req dto.ListRequest) (dto.GetEquipmentsResponse, error)
	Get(ctx context.Context, id string) (dto.EquipmentDetailResponse, error)
	Find(ctx context.Context, id string) (model.Equipment, error)
	GetAllForModeration(ctx context.Context) (dto.GetEquipmentsResponse, error)
	Create(ctx context.Context, req dto.SaveEquipmentRequest) (dto.EquipmentResponse, error)
	Update(ctx context.Context, role, id string, req dto.SaveEquipmentRequest) (dto.EquipmentResponse, error)
	Delete(ctx context.Context, role, id string) error
	Approve(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Equipment
	reviews reviewService.Review
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Equipment, reviews reviewService.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Equipment {
	return &serviceImpl{
		repo:    repo,
		reviews: reviews,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListRequest) (res dto.GetEquipmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := req.Query()
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, query)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipment")

		return res, nil
	}

	equipment, err := s.repo.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	res.FromModels(equipment, s.cfg.Backend.AssetHost)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Get returns the detail page of a listing with its reviews and rate card. A failed
// review fetch degrades to an empty review list and the result is not cached.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EquipmentDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for equipment detail")

		return res, nil
	}

	var (
		equipment     model.Equipment
		reviewsFailed bool
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var getErr error

		equipment, getErr = s.repo.Get(gCtx, id)

		return getErr
	})

	g.Go(func() error {
		reviews, listErr := s.reviews.ListByEquipment(gCtx, id)
		if listErr != nil {
			log.Warn().Err(listErr).Str("equipmentID", id).Msg("failed to get equipment reviews")

			reviewsFailed = true
			reviews.FromModels(nil)
		}

		res.Reviews = reviews

		return nil
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	if equipment.ID == constant.Empty {
		return res, failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	res.FromModel(equipment, s.cfg.Backend.AssetHost)

	if !reviewsFailed {
		s.save(ctx, cacheKey, res)
	}

	return res, nil
}

// Find reads the listing straight from the backend. Booking prices are always
// computed from this uncached record.
func (s *serviceImpl) Find(ctx context.Context, id string) (res model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Find")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to find equipment")

		return res, fmt.Errorf("failed to find equipment: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetAllForModeration(ctx context.Context) (res dto.GetEquipmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.GetAllForModeration")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	equipment, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get equipment for moderation")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	res.FromModels(equipment, s.cfg.Backend.AssetHost)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SaveEquipmentRequest) (res dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.CheckAvailability(); err != nil {
		return res, err
	}

	equipment, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create equipment")

		return res, fmt.Errorf("failed to create equipment: %w", err)
	}

	res.FromModel(equipment, s.cfg.Backend.AssetHost)

	s.invalidate(ctx, model.CacheKeyGetAll)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, role, id string, req dto.SaveEquipmentRequest) (res dto.EquipmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"equipment.id": id, "user.role": role})

	if err = req.CheckAvailability(); err != nil {
		return res, err
	}

	equipment, err := s.repo.Update(ctx, role, id, req)
	if err != nil {
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to update equipment")

		return res, fmt.Errorf("failed to update equipment: %w", err)
	}

	res.FromModel(equipment, s.cfg.Backend.AssetHost)

	s.invalidate(ctx, shared.BuildCacheKey(model.CacheKeyGet, id), model.CacheKeyGetAll)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, role, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, role, id); err != nil {
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to delete equipment")

		return fmt.Errorf("failed to delete equipment: %w", err)
	}

	s.invalidate(ctx, shared.BuildCacheKey(model.CacheKeyGet, id), model.CacheKeyGetAll)

	return nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Approve(ctx, id); err != nil {
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to approve equipment")

		return fmt.Errorf("failed to approve equipment: %w", err)
	}

	s.invalidate(ctx, shared.BuildCacheKey(model.CacheKeyGet, id), model.CacheKeyGetAll)

	return nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save equipment to cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, prefixes...)
	}()
}
