package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/infras/otel"
	equipmentModel "agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/review/model/dto"
	"agrirent/internal/domains/review/repository"
	"agrirent/shared"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Review interface {
	ListByEquipment(ctx context.Context, equipmentID string) (dto.GetReviewsResponse, error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Review
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Review, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) ListByEquipment(ctx context.Context, equipmentID string) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.ListByEquipment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reviews, err := s.repo.ListByEquipment(ctx, equipmentID)
	if err != nil {
		log.Error().Err(err).Str("equipmentID", equipmentID).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews)

	return res, nil
}

// Create posts a review and drops the cached detail and listings of the reviewed
// equipment, whose rating the backend recomputes.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"equipment.id": req.EquipmentID, "review.rating": req.Rating})

	review, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("equipmentID", req.EquipmentID).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)
	if res.EquipmentID == "" {
		res.EquipmentID = req.EquipmentID
	}

	s.invalidate(ctx,
		shared.BuildCacheKey(equipmentModel.CacheKeyGet, req.EquipmentID),
		equipmentModel.CacheKeyGetAll,
	)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("reviewID", id).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidate(ctx, equipmentModel.CacheKeyGet, equipmentModel.CacheKeyGetAll)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)
		shared.InvalidateCaches(c, s.cache, prefixes...)
	}()
}
