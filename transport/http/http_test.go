package http

import (
	"agrirent/config"
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_ShutdownEndsHijackedStreams(t *testing.T) {
	hijacked := make(chan struct{})
	ended := make(chan struct{})

	mux := chi.NewRouter()
	mux.Get("/stream", func(writer http.ResponseWriter, request *http.Request) {
		conn, buf, err := writer.(http.Hijacker).Hijack()
		if err != nil {
			return
		}
		defer conn.Close()

		_, _ = buf.WriteString("HTTP/1.1 101 Switching Protocols\r\n\r\n")
		_ = buf.Flush()

		close(hijacked)

		<-request.Context().Done()

		close(ended)
	})

	h := &HTTP{Config: &config.Config{}, mux: mux}
	server := h.newServer()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() { _ = server.Serve(listener) }()

	client, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer client.Close()

	_, err = fmt.Fprintf(client, "GET /stream HTTP/1.1\r\nHost: %s\r\n\r\n", listener.Addr())
	require.NoError(t, err)

	status, err := bufio.NewReader(client).ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, status, "101")

	select {
	case <-hijacked:
	case <-time.After(time.Second):
		t.Fatal("stream was never opened")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, server.Shutdown(ctx))

	select {
	case <-ended:
	case <-time.After(time.Second):
		t.Fatal("stream outlived the server")
	}
}
