package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/dashboard/model"
	"agrirent/shared/constant"
	"context"
	"net/http"
)

const (
	pathOwnerDashboard = "/api/owner/dashboard"
	pathAdminDashboard = "/api/admin/dashboard"
)

type Dashboard interface {
	Owner(ctx context.Context) (model.OwnerDashboard, error)
	AdminStats(ctx context.Context) (model.AdminStats, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Owner(ctx context.Context) (res model.OwnerDashboard, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Owner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathOwnerDashboard}, &res)

	return res, err
}

func (r *repositoryImpl) AdminStats(ctx context.Context) (res model.AdminStats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.AdminStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathAdminDashboard}, &res)

	return res, err
}
