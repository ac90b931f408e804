package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/scheme/model"
	"agrirent/shared/constant"
	"context"
	"net/http"
	"net/url"
)

const pathSchemes = "/api/public/schemes"

type Scheme interface {
	List(ctx context.Context, query url.Values) ([]model.Scheme, error)
	Get(ctx context.Context, id string) (model.Scheme, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Scheme {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, query url.Values) (res []model.Scheme, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".scheme.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodGet,
		Path:      pathSchemes,
		Query:     query,
		Anonymous: true,
	}, &res)

	return res, err
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Scheme, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".scheme.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodGet,
		Path:      pathSchemes + "/" + url.PathEscape(id),
		Anonymous: true,
	}, &res)

	return res, err
}
