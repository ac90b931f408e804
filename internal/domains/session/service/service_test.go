package service_test

import (
	"agrirent/config"
	"agrirent/infras/jwt"
	jwtMocks "agrirent/infras/jwt/mocks"
	"agrirent/infras/otel/mocks"
	sessionMocks "agrirent/internal/domains/session/mocks"
	"agrirent/internal/domains/session/model"
	"agrirent/internal/domains/session/model/dto"
	"agrirent/internal/domains/session/repository"
	"agrirent/internal/domains/session/service"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/timezone"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	auth  *sessionMocks.MockAuth
	store *sessionMocks.MockStore
	jwt   *jwtMocks.MockJWT
	svc   service.Session
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.DefaultLanguage = constant.LanguageEnglish

	f := fixture{
		auth:  sessionMocks.NewMockAuth(ctrl),
		store: sessionMocks.NewMockStore(ctrl),
		jwt:   jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.auth, f.store, f.jwt, cfg, mocks.NewOtel())

	return f
}

var farmer = userModel.User{ID: "u1", FullName: "Ramesh Patil", Role: constant.RoleFarmer, PhoneNumber: "9876543210"}

func TestSessionService_Verify(t *testing.T) {
	f := newFixture(t)

	req := dto.VerifyOTPRequest{PhoneNumber: "9876543210", OTP: "123456"}

	var stored model.Session

	f.auth.EXPECT().VerifyOTP(gomock.Any(), req).Return(farmer, "JSESSION-1", nil)
	f.auth.EXPECT().Me(gomock.Any()).DoAndReturn(func(ctx context.Context) (userModel.User, error) {
		assert.Equal(t, "JSESSION-1", ctx.Value(constant.ContextKeyBackendCookie))

		return farmer, nil
	})
	f.jwt.EXPECT().TTL().Return(12 * time.Hour)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any(), 12*time.Hour).DoAndReturn(func(_ context.Context, s model.Session, _ time.Duration) error {
		stored = s

		return nil
	})
	f.jwt.EXPECT().Issue(gomock.Any(), "u1", constant.RoleFarmer).DoAndReturn(func(sessionID, _, _ string) (*jwt.Token, error) {
		assert.Equal(t, stored.ID, sessionID)

		return &jwt.Token{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 43200}, nil
	})

	ctx := context.WithValue(context.Background(), constant.ContextKeyLanguage, constant.LanguageHindi)

	res, err := f.svc.Verify(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, "token", res.AccessToken)
	assert.Equal(t, "Ramesh Patil", res.User.FullName)
	assert.Equal(t, constant.LanguageHindi, res.Language)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "JSESSION-1", stored.BackendCookie)
	assert.Equal(t, constant.LanguageHindi, stored.Language)
}

func TestSessionService_Verify_Failures(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "invalid otp",
			setupMock: func(f fixture) {
				f.auth.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(userModel.User{}, "", failure.FromUpstream(http.StatusUnauthorized, "Invalid OTP"))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "blocked account",
			setupMock: func(f fixture) {
				f.auth.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(userModel.User{}, "", failure.FromUpstream(http.StatusForbidden, "Account blocked"))
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "no backend cookie",
			setupMock: func(f fixture) {
				f.auth.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(farmer, "", repository.ErrMissingCredentials)
			},
			wantCode: http.StatusBadGateway,
		},
		{
			name: "session store down",
			setupMock: func(f fixture) {
				f.auth.EXPECT().VerifyOTP(gomock.Any(), gomock.Any()).Return(farmer, "JSESSION-1", nil)
				f.auth.EXPECT().Me(gomock.Any()).Return(farmer, nil)
				f.jwt.EXPECT().TTL().Return(time.Hour)
				f.store.EXPECT().Save(gomock.Any(), gomock.Any(), time.Hour).Return(errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Verify(context.Background(), dto.VerifyOTPRequest{PhoneNumber: "9876543210", OTP: "000000"})
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestSessionService_Load(t *testing.T) {
	claims := &jwt.Claims{SessionID: "s1", UserID: "u1"}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "stored session",
			setupMock: func(f fixture) {
				f.store.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{ID: "s1", User: farmer}, nil)
			},
		},
		{
			name: "expired session",
			setupMock: func(f fixture) {
				f.store.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{}, fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "session of another user",
			setupMock: func(f fixture) {
				f.store.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{ID: "s1", User: userModel.User{ID: "u2"}}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "redis down",
			setupMock: func(f fixture) {
				f.store.EXPECT().Get(gomock.Any(), "s1").Return(model.Session{}, errors.New("i/o timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			session, err := f.svc.Load(context.Background(), claims)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "s1", session.ID)
		})
	}
}

func TestSessionService_Logout(t *testing.T) {
	f := newFixture(t)

	ctx := model.WithSession(context.Background(), &model.Session{ID: "s1", User: farmer, BackendCookie: "JSESSION-1"})

	f.auth.EXPECT().Logout(gomock.Any()).Return(failure.BadGateway(errors.New("connection reset")))
	f.store.EXPECT().Delete(gomock.Any(), "s1").Return(nil)

	assert.NoError(t, f.svc.Logout(ctx), "backend logout failures do not keep the session alive")

	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(f.svc.Logout(context.Background())))
}

func TestSessionService_SetLanguage(t *testing.T) {
	f := newFixture(t)

	current := &model.Session{ID: "s1", User: farmer, Language: "en", CreatedAt: timezone.Now().Add(-time.Hour)}
	ctx := model.WithSession(context.Background(), current)

	f.jwt.EXPECT().TTL().Return(12 * time.Hour)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s model.Session, ttl time.Duration) error {
		assert.Equal(t, "mr", s.Language)
		assert.InDelta(t, (11 * time.Hour).Seconds(), ttl.Seconds(), 5)

		return nil
	})

	res, err := f.svc.SetLanguage(ctx, dto.LanguageRequest{Language: "mr"})
	require.NoError(t, err)

	assert.Equal(t, "mr", res.Language)
	assert.Equal(t, "en", current.Language, "the session bound to the request is not mutated")
}

func TestSessionService_Current(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Current(context.Background())
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

	ctx := model.WithSession(context.Background(), &model.Session{ID: "s1", User: farmer, Language: "hi"})

	res, err := f.svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, "hi", res.Language)
}

func TestSessionService_Translations(t *testing.T) {
	f := newFixture(t)

	res := f.svc.Translations(context.Background())
	assert.Equal(t, "en", res.Language)
	assert.Equal(t, "Login", res.Messages["login"])

	ctx := context.WithValue(context.Background(), constant.ContextKeyLanguage, "mr")
	res = f.svc.Translations(ctx)
	assert.Equal(t, "नमस्कार", res.Messages["welcome"])
	assert.ElementsMatch(t, []string{"en", "hi", "mr"}, res.Languages)
}
