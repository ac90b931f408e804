package backend_test

import (
	"agrirent/config"
	"agrirent/infras/backend"
	"agrirent/infras/otel/mocks"
	"agrirent/shared/failure"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(baseURL string) backend.Client {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Backend.SessionCookie = "JSESSIONID"
	cfg.Backend.TimeoutSeconds = 5

	return backend.New(cfg, mocks.NewOtel())
}

func TestDo_DecodesJSONAndSendsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/public/equipment", r.URL.Path)
		assert.Equal(t, "Tractor", r.URL.Query().Get("category"))

		cookie, err := r.Cookie("JSESSIONID")
		require.NoError(t, err)
		assert.Equal(t, "abc123", cookie.Value)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"e1","name":"Mahindra 575"}]`))
	}))
	defer server.Close()

	ctx := backend.WithCredentials(context.Background(), "abc123")

	var out []map[string]any
	res, err := newClient(server.URL).Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   "/api/public/equipment",
		Query:  url.Values{"category": {"Tractor"}},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.Status)
	require.Len(t, out, 1)
	assert.Equal(t, "Mahindra 575", out[0]["name"])
}

func TestDo_AnonymousSkipsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("JSESSIONID")
		assert.ErrorIs(t, err, http.ErrNoCookie)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := backend.WithCredentials(context.Background(), "abc123")

	_, err := newClient(server.URL).Do(ctx, backend.Request{
		Method:    http.MethodPost,
		Path:      "/api/auth/login",
		Anonymous: true,
	}, nil)

	require.NoError(t, err)
}

func TestDo_JSONBodyAndCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "b1", body["bookingId"])

		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "fresh"})
		_, _ = w.Write([]byte(`{"id":"m1"}`))
	}))
	defer server.Close()

	var out struct {
		ID string `json:"id"`
	}

	res, err := newClient(server.URL).Do(context.Background(), backend.Request{
		Method: http.MethodPost,
		Path:   "/api/messages",
		Body:   map[string]string{"bookingId": "b1", "content": "hello"},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "m1", out.ID)

	cookie, ok := res.Cookie("JSESSIONID")
	require.True(t, ok)
	assert.Equal(t, "fresh", cookie.Value)

	_, ok = res.Cookie("other")
	assert.False(t, ok)
}

func TestDo_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Rotavator", r.FormValue("name"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()

		content, _ := io.ReadAll(file)
		assert.Equal(t, "rotavator.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, "png-bytes", string(content))

		_, _ = w.Write([]byte(`{"id":"e9"}`))
	}))
	defer server.Close()

	_, err := newClient(server.URL).Do(context.Background(), backend.Request{
		Method: http.MethodPost,
		Path:   "/api/owner/equipment",
		Form: &backend.Form{
			Fields: map[string]string{"name": "Rotavator"},
			File: &backend.File{
				Field:       "image",
				Name:        "rotavator.png",
				ContentType: "image/png",
				Content:     strings.NewReader("png-bytes"),
			},
		},
	}, nil)

	require.NoError(t, err)
}

func TestDo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    int
		wantMessage string
	}{
		{name: "backend validation error", status: http.StatusBadRequest, body: `{"error":"Equipment not found"}`, wantCode: http.StatusBadRequest, wantMessage: "Equipment not found"},
		{name: "not found without body", status: http.StatusNotFound, body: ``, wantCode: http.StatusNotFound, wantMessage: "Not Found"},
		{name: "forbidden with message key", status: http.StatusForbidden, body: `{"message":"Account blocked"}`, wantCode: http.StatusForbidden, wantMessage: "Account blocked"},
		{name: "backend crash", status: http.StatusInternalServerError, body: `<html>oops</html>`, wantCode: http.StatusBadGateway, wantMessage: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			res, err := newClient(server.URL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/x"}, nil)
			require.Error(t, err)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, tt.wantMessage, err.Error())
			assert.True(t, backend.IsStatus(err, tt.wantCode))
		})
	}
}

func TestDo_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := newClient(baseURL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/auth/me"}, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestDo_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	var out map[string]any
	_, err := newClient(server.URL).Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/api/x"}, &out)

	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}
