package repository_test

import (
	"agrirent/config"
	"agrirent/infras/backend"
	backendMocks "agrirent/infras/backend/mocks"
	"agrirent/infras/otel/mocks"
	"agrirent/internal/domains/session/model"
	"agrirent/internal/domains/session/model/dto"
	"agrirent/internal/domains/session/repository"
	userModel "agrirent/internal/domains/user/model"
	cacheMocks "agrirent/shared/cache/mocks"
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Backend.SessionCookie = "JSESSIONID"

	return cfg
}

func TestAuth_VerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := backendMocks.NewMockClient(ctrl)
	repo := repository.NewAuth(client, newConfig(), mocks.NewOtel())

	client.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req backend.Request, out any) (*backend.Response, error) {
			assert.Equal(t, "/api/auth/verify-otp", req.Path)
			assert.Equal(t, url.Values{"phoneNumber": {"9876543210"}, "otp": {"123456"}}, req.Query)
			assert.True(t, req.Anonymous)

			*(out.(*userModel.User)) = userModel.User{ID: "u1"}

			return &backend.Response{
				Status:  http.StatusOK,
				Cookies: []*http.Cookie{{Name: "JSESSIONID", Value: "B7F3"}},
			}, nil
		})

	user, cookie, err := repo.VerifyOTP(context.Background(), dto.VerifyOTPRequest{PhoneNumber: "9876543210", OTP: "123456"})
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "B7F3", cookie)
}

func TestAuth_VerifyOTP_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := backendMocks.NewMockClient(ctrl)
	repo := repository.NewAuth(client, newConfig(), mocks.NewOtel())

	client.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any()).Return(&backend.Response{Status: http.StatusOK}, nil)

	_, _, err := repo.VerifyOTP(context.Background(), dto.VerifyOTPRequest{PhoneNumber: "9876543210", OTP: "123456"})
	assert.ErrorIs(t, err, repository.ErrMissingCredentials)
}

func TestStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	store := repository.NewStore(redisCache)
	session := model.Session{ID: "s1", Language: "hi"}

	redisCache.EXPECT().Save(gomock.Any(), "session:s1", session, 3600).Return(nil)
	require.NoError(t, store.Save(context.Background(), session, time.Hour))

	assert.Error(t, store.Save(context.Background(), session, 0))

	redisCache.EXPECT().Get(gomock.Any(), "session:s1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*model.Session)) = session

			return nil
		})

	got, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	redisCache.EXPECT().Delete(gomock.Any(), "session:s1").Return(nil)
	assert.NoError(t, store.Delete(context.Background(), "s1"))
}
