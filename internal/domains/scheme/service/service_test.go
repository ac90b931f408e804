package service_test

import (
	"agrirent/config"
	"agrirent/infras/otel/mocks"
	schemeMocks "agrirent/internal/domains/scheme/mocks"
	"agrirent/internal/domains/scheme/model"
	"agrirent/internal/domains/scheme/model/dto"
	"agrirent/internal/domains/scheme/service"
	"agrirent/shared/cache"
	cacheMocks "agrirent/shared/cache/mocks"
	"agrirent/shared/failure"
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSchemeService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := schemeMocks.NewMockScheme(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 120

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
	done := make(chan struct{})

	mockCache.EXPECT().Get(gomock.Any(), "scheme:gets:category=Subsidy", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().List(gomock.Any(), url.Values{"category": {"Subsidy"}}).Return([]model.Scheme{
		{ID: "s1", Title: "PM-KISAN", Category: "Subsidy", ApplyLink: "https://pmkisan.gov.in"},
	}, nil)
	mockCache.EXPECT().Save(gomock.Any(), "scheme:gets:category=Subsidy", gomock.Any(), 120).
		DoAndReturn(func(context.Context, string, any, int) error {
			close(done)

			return nil
		})

	res, err := svc.GetAll(context.Background(), dto.ListRequest{Category: "Subsidy"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "PM-KISAN", res.Schemes[0].Title)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected schemes to be cached")
	}
}

func TestSchemeService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *schemeMocks.MockScheme, c *cacheMocks.MockRedisCache)
		wantTitle string
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(_ *schemeMocks.MockScheme, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "scheme:get:s1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						value.(*dto.SchemeResponse).Title = "Soil Health Card"

						return nil
					})
			},
			wantTitle: "Soil Health Card",
		},
		{
			name: "missing scheme",
			setupMock: func(repo *schemeMocks.MockScheme, c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), "scheme:get:s1", gomock.Any()).Return(cache.Nil)
				repo.EXPECT().Get(gomock.Any(), "s1").Return(model.Scheme{}, failure.FromUpstream(http.StatusNotFound, ""))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := schemeMocks.NewMockScheme(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(mockRepo, mockCache)

			svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

			res, err := svc.Get(context.Background(), "s1")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, res.Title)
		})
	}
}
