package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/booking/model"
	"agrirent/internal/domains/booking/model/dto"
	"agrirent/internal/domains/lifecycle"
	"agrirent/shared/constant"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const (
	pathFarmerBooking   = "/api/farmer/booking"
	pathFarmerDashboard = "/api/farmer/dashboard"
	pathOwnerDashboard  = "/api/owner/dashboard"
	pathOwnerBookings   = "/api/owner/bookings"
	pathAdminBookings   = "/api/admin/bookings"
)

type Booking interface {
	List(ctx context.Context, role string) ([]model.Booking, error)
	Create(ctx context.Context, req dto.BackendBookingRequest) (model.Booking, error)
	Act(ctx context.Context, id string, action lifecycle.Action) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// List returns the bookings visible to role. Farmers and owners read them from
// their dashboards, administrators from the full booking list.
func (r *repositoryImpl) List(ctx context.Context, role string) (res []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("user.role", role)

	var path string

	switch role {
	case constant.RoleFarmer:
		path = pathFarmerDashboard
	case constant.RoleOwner:
		path = pathOwnerDashboard
	case constant.RoleAdmin:
		_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathAdminBookings}, &res)

		return res, err
	default:
		return nil, fmt.Errorf("no booking list for role %q", role)
	}

	var dashboard struct {
		Bookings []model.Booking `json:"bookings"`
	}

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: path}, &dashboard)

	return dashboard.Bookings, err
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.BackendBookingRequest) (res model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: pathFarmerBooking, Body: req}, &res)

	return res, err
}

// Act calls the backend endpoint of action. Owner actions are named after the
// action; force-cancel is the administrator cancel endpoint.
func (r *repositoryImpl) Act(ctx context.Context, id string, action lifecycle.Action) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Act")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"booking.id": id, "booking.action": string(action)})

	path := fmt.Sprintf("%s/%s/%s", pathOwnerBookings, url.PathEscape(id), action)
	if action == lifecycle.ForceCancel {
		path = fmt.Sprintf("%s/%s/%s", pathAdminBookings, url.PathEscape(id), lifecycle.Cancel)
	}

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: path}, nil)

	return err
}
