package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/equipment/model"
	"agrirent/internal/domains/equipment/model/dto"
	"agrirent/shared/constant"
	"context"
	"net/http"
	"net/url"
)

const (
	pathPublicEquipment = "/api/public/equipment"
	pathOwnerEquipment  = "/api/owner/equipment"
	pathAdminEquipment  = "/api/admin/equipment"
)

type Equipment interface {
	List(ctx context.Context, query url.Values) ([]model.Equipment, error)
	Get(ctx context.Context, id string) (model.Equipment, error)
	ListAll(ctx context.Context) ([]model.Equipment, error)
	Create(ctx context.Context, req dto.SaveEquipmentRequest) (model.Equipment, error)
	Update(ctx context.Context, role, id string, req dto.SaveEquipmentRequest) (model.Equipment, error)
	Delete(ctx context.Context, role, id string) error
	Approve(ctx context.Context, id string) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Equipment {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) List(ctx context.Context, query url.Values) (res []model.Equipment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodGet,
		Path:      pathPublicEquipment,
		Query:     query,
		Anonymous: true,
	}, &res)

	return res, err
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Equipment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodGet,
		Path:      pathPublicEquipment + "/" + url.PathEscape(id),
		Anonymous: true,
	}, &res)

	return res, err
}

func (r *repositoryImpl) ListAll(ctx context.Context) (res []model.Equipment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.ListAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathAdminEquipment}, &res)

	return res, err
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.SaveEquipmentRequest) (res model.Equipment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   pathOwnerEquipment,
		Form:   toForm(req),
	}, &res)

	return res, err
}

func (r *repositoryImpl) Update(ctx context.Context, role, id string, req dto.SaveEquipmentRequest) (res model.Equipment, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   managePath(role) + "/" + url.PathEscape(id),
		Form:   toForm(req),
	}, &res)

	return res, err
}

func (r *repositoryImpl) Delete(ctx context.Context, role, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   managePath(role) + "/" + url.PathEscape(id),
	}, nil)

	return err
}

func (r *repositoryImpl) Approve(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.Approve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   pathAdminEquipment + "/" + url.PathEscape(id) + "/approve",
	}, nil)

	return err
}

// managePath picks the listing endpoints of the acting role. Administrators moderate
// every listing, owners only their own.
func managePath(role string) string {
	if role == constant.RoleAdmin {
		return pathAdminEquipment
	}

	return pathOwnerEquipment
}

func toForm(req dto.SaveEquipmentRequest) *backend.Form {
	form := &backend.Form{Fields: req.Fields()}

	if req.Image != nil {
		form.File = &backend.File{
			Field:       constant.FormFileImage,
			Name:        req.ImageName,
			ContentType: req.ImageContentType,
			Content:     req.Image,
		}
	}

	return form
}
