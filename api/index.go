package handler

import (
	"agrirent/config"
	"agrirent/di"
	"agrirent/shared/logger"
	"net/http"
	"sync"
)

var (
	server     http.Handler
	serverOnce sync.Once
)

// Handler is the serverless entrypoint. The router is built once per instance.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	serverOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		server = di.InitializeService().Handler()
	})

	server.ServeHTTP(w, r)
}
