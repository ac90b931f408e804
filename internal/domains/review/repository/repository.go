package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/review/model"
	"agrirent/internal/domains/review/model/dto"
	"agrirent/shared/constant"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	pathEquipmentReviews = "/api/public/equipment/%s/reviews"
	pathFarmerReviews    = "/api/farmer/reviews"
	pathAdminReview      = "/api/admin/reviews/%s"
)

type Review interface {
	ListByEquipment(ctx context.Context, equipmentID string) ([]model.Review, error)
	Create(ctx context.Context, req dto.CreateReviewRequest) (model.Review, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Review {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) ListByEquipment(ctx context.Context, equipmentID string) (res []model.Review, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.ListByEquipment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodGet,
		Path:      fmt.Sprintf(pathEquipmentReviews, url.PathEscape(equipmentID)),
		Anonymous: true,
	}, &res)

	return res, err
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res model.Review, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: pathFarmerReviews, Body: req}, &res)

	return res, err
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf(pathAdminReview, url.PathEscape(id)),
	}, nil)

	return err
}
