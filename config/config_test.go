package config_test

import (
	"agrirent/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = "http://marketplace:8080"
	cfg.JWT.AccessSecret = "secret"
	cfg.Cache.Redis.Primary.Host = "redis"

	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:   "complete",
			mutate: func(_ *config.Config) {},
		},
		{
			name: "missing backend and secret",
			mutate: func(cfg *config.Config) {
				cfg.Backend.BaseURL = ""
				cfg.JWT.AccessSecret = ""
			},
			wantErr: "missing required configuration: BACKEND_BASE_URL, JWT_ACCESS_SECRET",
		},
		{
			name: "missing redis",
			mutate: func(cfg *config.Config) {
				cfg.Cache.Redis.Primary.Host = ""
			},
			wantErr: "CACHE_REDIS_PRIMARY_HOST",
		},
		{
			name: "rate limiter without window",
			mutate: func(cfg *config.Config) {
				cfg.App.RateLimiter.Enable = true
				cfg.App.RateLimiter.MaxRequests = 10
			},
			wantErr: "rate limiter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
