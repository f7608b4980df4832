package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/opportunity-summarizer/internal/api/handler/mocks"
	"github.com/vfg2006/opportunity-summarizer/internal/config"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.Server{Host: "127.0.0.1", Port: "0"},
	}
}

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	trigger := mocks.NewMockSummaryTrigger(ctrl)
	trigger.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})

	srv := New(newTestConfig(), trigger)
	assert.Equal(t, "127.0.0.1:0", srv.httpServer.Addr)

	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary/status", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	srv := New(newTestConfig(), mocks.NewMockSummaryTrigger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- srv.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
