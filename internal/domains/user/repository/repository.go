package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/user/model"
	"agrirent/internal/domains/user/model/dto"
	"agrirent/shared/constant"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	pathProfile    = "/api/user/profile"
	pathAdminUsers = "/api/admin/users"
)

type User interface {
	Profile(ctx context.Context) (model.User, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetBlocked(ctx context.Context, id string, blocked bool) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) User {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Profile(ctx context.Context) (res model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathProfile}, &res)

	return res, err
}

func (r *repositoryImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (res model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodPut, Path: pathProfile, Body: req}, &res)

	return res, err
}

func (r *repositoryImpl) List(ctx context.Context) (res []model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathAdminUsers}, &res)

	return res, err
}

func (r *repositoryImpl) SetBlocked(ctx context.Context, id string, blocked bool) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.SetBlocked")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	action := "unblock"
	if blocked {
		action = "block"
	}

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("%s/%s/%s", pathAdminUsers, url.PathEscape(id), action),
	}, nil)

	return err
}
