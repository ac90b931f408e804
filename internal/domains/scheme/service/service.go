package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/otel"
	"agrirent/internal/domains/scheme/model"
	"agrirent/internal/domains/scheme/model/dto"
	"agrirent/internal/domains/scheme/repository"
	"agrirent/shared"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Scheme interface {
	GetAll(ctx context.Context, req dto.ListRequest) (dto.GetSchemesResponse, error)
	Get(ctx context.Context, id string) (dto.SchemeResponse, error)
}

type serviceImpl struct {
	repo  repository.Scheme
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Scheme, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Scheme {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListRequest) (res dto.GetSchemesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".scheme.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := req.Query()
	cacheKey := shared.BuildCacheKeyWithQuery(model.CacheKeyGetAll, query)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schemes")

		return res, nil
	}

	schemes, err := s.repo.List(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schemes")

		return res, fmt.Errorf("failed to get schemes: %w", err)
	}

	res.FromModels(schemes)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schemes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SchemeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".scheme.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for scheme")

		return res, nil
	}

	scheme, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("schemeID", id).Msg("failed to get scheme")

		return res, fmt.Errorf("failed to get scheme: %w", err)
	}

	if scheme.ID == constant.Empty {
		return res, failure.NotFound("scheme not found") // nolint:wrapcheck
	}

	res.FromModel(scheme)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save scheme to cache")
		}
	}()

	return res, nil
}
