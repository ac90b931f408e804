package middleware_test

import (
	"agrirent/infras/jwt"
	jwtMocks "agrirent/infras/jwt/mocks"
	"agrirent/infras/otel/mocks"
	sessionModel "agrirent/internal/domains/session/model"
	sessionMocks "agrirent/internal/domains/session/service/mocks"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/permissions"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type authFixture struct {
	jwt      *jwtMocks.MockJWT
	sessions *sessionMocks.MockSession
	otel     *mocks.Recorder
	router   http.Handler

	userID   string
	language string
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &authFixture{
		jwt:      jwtMocks.NewMockJWT(ctrl),
		sessions: sessionMocks.NewMockSession(ctrl),
		otel:     mocks.NewRecorder(),
	}

	permissionData := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/equipment/{id}", Method: http.MethodGet, Skip: true},
			{Path: "/v1/equipment", Method: http.MethodPost, Permissions: []string{constant.RoleOwner}},
			{Path: "/v1/bookings/{id}/chat", Method: http.MethodGet, Permissions: []string{constant.RoleFarmer, constant.RoleOwner}},
		},
	}

	auth := middleware.NewAuthRoleMiddleware(f.jwt, f.sessions, f.otel, permissionData)

	record := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.userID, _ = r.Context().Value(constant.ContextKeyUserID).(string)
		f.language, _ = r.Context().Value(constant.ContextKeyLanguage).(string)
		w.WriteHeader(http.StatusOK)
	})

	router := chi.NewRouter()
	router.Use(auth.Auth, auth.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Route("/equipment", func(r chi.Router) {
			r.Get("/{id}", record)
			r.Post("/", record)
		})
		r.Get("/bookings/{id}/chat", record)
	})

	f.router = router

	return f
}

func (f *authFixture) expectSession(token, role string) {
	claims := &jwt.Claims{SessionID: "sess-1", UserID: "user-1", Role: role}

	f.jwt.EXPECT().Validate(token).Return(claims, nil)
	f.sessions.EXPECT().Load(gomock.Any(), claims).Return(&sessionModel.Session{
		ID:       "sess-1",
		User:     userModel.User{ID: "user-1", Role: role},
		Language: constant.LanguageHindi,
	}, nil)
}

func (f *authFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

func TestAuth_PublicRoute(t *testing.T) {
	t.Run("anonymous request reads Accept-Language", func(t *testing.T) {
		f := newAuthFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipment/eq-1", nil)
		req.Header.Set(constant.RequestHeaderLanguage, "fr-FR, mr-IN;q=0.9, en;q=0.8")

		rec := f.serve(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, f.userID)
		assert.Equal(t, constant.LanguageMarathi, f.language)
	})

	t.Run("valid token binds the session", func(t *testing.T) {
		f := newAuthFixture(t)
		f.expectSession("good", constant.RoleFarmer)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipment/eq-1", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer good")

		rec := f.serve(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", f.userID)
		assert.Equal(t, constant.LanguageHindi, f.language)
	})

	t.Run("expired token still browses anonymously", func(t *testing.T) {
		f := newAuthFixture(t)
		f.jwt.EXPECT().Validate("old").Return(nil, jwt.ErrExpiredToken)

		req := httptest.NewRequest(http.MethodGet, "/v1/equipment/eq-1", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer old")

		rec := f.serve(req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, f.userID)
	})
}

func TestAuth_ProtectedRoute(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		setup    func(f *authFixture)
		wantCode int
		wantBody string
	}{
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
			wantBody: "Missing authorization header",
		},
		{
			name:     "not a bearer token",
			header:   "Token abc",
			wantCode: http.StatusUnauthorized,
			wantBody: "Invalid authorization header format",
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(f *authFixture) {
				f.jwt.EXPECT().Validate("old").Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: "Token has expired",
		},
		{
			name:   "tampered token",
			header: "Bearer bad",
			setup: func(f *authFixture) {
				f.jwt.EXPECT().Validate("bad").Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: "Invalid token",
		},
		{
			name:   "session gone from the store",
			header: "Bearer good",
			setup: func(f *authFixture) {
				f.jwt.EXPECT().Validate("good").Return(&jwt.Claims{SessionID: "sess-1"}, nil)
				f.sessions.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, failure.SessionExpiredError)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: failure.SessionExpiredError.Message,
		},
		{
			name:   "wrong role",
			header: "Bearer good",
			setup: func(f *authFixture) {
				f.expectSession("good", constant.RoleFarmer)
			},
			wantCode: http.StatusForbidden,
			wantBody: failure.ForbiddenError.Message,
		},
		{
			name:   "allowed role",
			header: "Bearer good",
			setup: func(f *authFixture) {
				f.expectSession("good", constant.RoleOwner)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/equipment", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := f.serve(req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)

			if tt.wantCode == http.StatusOK {
				assert.Empty(t, f.otel.Errors())
			} else {
				require.Len(t, f.otel.Errors(), 1)
				assert.Equal(t, tt.wantCode, failure.GetCode(f.otel.Errors()[0]))
			}
		})
	}
}

func TestAuth_WebsocketToken(t *testing.T) {
	f := newAuthFixture(t)
	f.expectSession("ws-token", constant.RoleOwner)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/chat?token=ws-token", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")

	rec := f.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", f.userID)
}

func TestAuth_QueryTokenIgnoredWithoutUpgrade(t *testing.T) {
	f := newAuthFixture(t)

	rec := f.serve(httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1/chat?token=ws-token", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
