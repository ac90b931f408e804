package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/message/model"
	"agrirent/internal/domains/message/model/dto"
	"agrirent/shared/constant"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	pathMessages       = "/api/messages"
	pathBookingMessage = "/api/messages/%s"
)

type Message interface {
	List(ctx context.Context, bookingID string) ([]model.Message, error)
	Send(ctx context.Context, req dto.SendMessageRequest) (model.Message, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Message {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, bookingID string) (res []model.Message, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".message.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf(pathBookingMessage, url.PathEscape(bookingID)),
	}, &res)

	return res, err
}

func (r *repositoryImpl) Send(ctx context.Context, req dto.SendMessageRequest) (res model.Message, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".message.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: pathMessages, Body: req}, &res)

	return res, err
}
