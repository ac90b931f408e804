package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/infras/otel"
	"agrirent/internal/domains/user/model"
	"agrirent/internal/domains/user/model/dto"
	"agrirent/internal/domains/user/repository"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type User interface {
	Profile(ctx context.Context) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, req dto.UsersRequest) (dto.GetUsersResponse, error)
	SetBlocked(ctx context.Context, id string, blocked bool) error
}

type serviceImpl struct {
	repo repository.User
	otel otel.Otel
}

func New(repo repository.User, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Profile(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Profile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.UpdateProfile(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return res, fmt.Errorf("failed to update profile: %w", err)
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.UsersRequest) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(users, req)

	return res, nil
}

// SetBlocked blocks or unblocks a user. Administrators can never be blocked, so the
// request is refused before the backend is asked to change anything.
func (s *serviceImpl) SetBlocked(ctx context.Context, id string, blocked bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetBlocked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"user.id": id, "user.blocked": blocked})

	users, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return fmt.Errorf("failed to get users: %w", err)
	}

	target, found := model.User{}, false
	for _, user := range users {
		if user.ID == id {
			target, found = user, true

			break
		}
	}

	if !found {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if target.Role == constant.RoleAdmin {
		return failure.BadRequestFromString("administrators cannot be blocked") // nolint:wrapcheck
	}

	if err = s.repo.SetBlocked(ctx, id, blocked); err != nil {
		log.Error().Err(err).Str("userID", id).Bool("blocked", blocked).Msg("failed to change user block state")

		return fmt.Errorf("failed to change user block state: %w", err)
	}

	return nil
}
