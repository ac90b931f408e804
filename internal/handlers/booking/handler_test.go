package booking_test

import (
	"agrirent/config"
	"agrirent/infras/otel/mocks"
	"agrirent/internal/domains/booking/model/dto"
	bookingMocks "agrirent/internal/domains/booking/service/mocks"
	"agrirent/internal/domains/lifecycle"
	messageMocks "agrirent/internal/domains/message/service/mocks"
	"agrirent/internal/domains/pricing"
	"agrirent/internal/handlers/booking"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type handlerFixture struct {
	service  *bookingMocks.MockBooking
	messages *messageMocks.MockMessage
	router   chi.Router
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		service:  bookingMocks.NewMockBooking(ctrl),
		messages: messageMocks.NewMockMessage(ctrl),
	}

	handler := booking.New(f.service, f.messages, &config.Config{}, mocks.NewOtel())

	f.router = chi.NewRouter()
	handler.Router(f.router)

	return f
}

func (f *handlerFixture) serve(req *http.Request, role string) *httptest.ResponseRecorder {
	ctx := context.WithValue(req.Context(), constant.ContextKeyUserRole, role)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, "user-1")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req.WithContext(ctx))

	return rec
}

func TestEstimate(t *testing.T) {
	t.Run("prices the form", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.service.EXPECT().
			Estimate(gomock.Any(), dto.EstimateRequest{
				EquipmentID: "eq-1",
				RentalType:  pricing.Daily,
				StartDate:   "2026-10-20",
				EndDate:     "2026-10-23",
			}).
			Return(dto.EstimateResponse{Quote: pricing.Quote{RentalType: pricing.Daily, Duration: 3, Amount: 4500}, Rounded: 4500}, nil)

		body := `{"equipmentId":"eq-1","rentalType":"DAILY","startDate":"2026-10-20","endDate":"2026-10-23"}`
		rec := f.serve(httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader(body)), constant.Empty)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"amount":4500`)
		assert.Contains(t, rec.Body.String(), `"rounded":4500`)
	})

	t.Run("rejects an unknown rental type", func(t *testing.T) {
		f := newHandlerFixture(t)

		body := `{"equipmentId":"eq-1","rentalType":"MONTHLY"}`
		rec := f.serve(httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader(body)), constant.Empty)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "rentalType")
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		f := newHandlerFixture(t)

		rec := f.serve(httptest.NewRequest(http.MethodPost, "/estimates", strings.NewReader("{")), constant.Empty)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
				assert.Equal(t, pricing.Hourly, req.RentalType)
				assert.Equal(t, "09:00", req.StartTime)

				return dto.CreateBookingResponse{}, nil
			})

		body := `{"equipmentId":"eq-1","rentalType":"HOURLY","startDate":"2026-10-20","startTime":"09:00","endTime":"13:30"}`
		rec := f.serve(httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)), constant.RoleFarmer)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("hourly booking without times", func(t *testing.T) {
		f := newHandlerFixture(t)

		body := `{"equipmentId":"eq-1","rentalType":"HOURLY","startDate":"2026-10-20"}`
		rec := f.serve(httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)), constant.RoleFarmer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "startTime")
	})

	t.Run("backend conflict is passed through", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.service.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateBookingResponse{}, failure.Conflict("Equipment is not available for the selected dates"))

		body := `{"equipmentId":"eq-1","rentalType":"DAILY","startDate":"2026-10-20","endDate":"2026-10-22"}`
		rec := f.serve(httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body)), constant.RoleFarmer)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"Equipment is not available for the selected dates"}`, rec.Body.String())
	})
}

func TestGetBookings(t *testing.T) {
	f := newHandlerFixture(t)

	f.service.EXPECT().
		View(gomock.Any(), constant.RoleOwner).
		Return(dto.ViewResponse{Role: constant.RoleOwner, Groups: []lifecycle.Group{}, Bookings: []dto.BookingResponse{}}, nil)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/bookings", nil), constant.RoleOwner)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"OWNER"`)
}

func TestActOnBooking(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		action   lifecycle.Action
		err      error
		wantCode int
	}{
		{name: "owner approves", role: constant.RoleOwner, action: lifecycle.Approve, wantCode: http.StatusOK},
		{name: "admin force cancels", role: constant.RoleAdmin, action: lifecycle.ForceCancel, wantCode: http.StatusOK},
		{
			name:     "illegal action",
			role:     constant.RoleOwner,
			action:   lifecycle.Complete,
			err:      failure.Conflict("action not allowed"),
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)

			f.service.EXPECT().
				Act(gomock.Any(), tt.role, "bk-9", tt.action).
				Return(dto.ViewResponse{Role: tt.role}, tt.err)

			rec := f.serve(httptest.NewRequest(http.MethodPost, "/bookings/bk-9/"+string(tt.action), nil), tt.role)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
