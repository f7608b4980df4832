package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/opportunity-summarizer/pkg/log"
)

func TestLoggingMiddleware(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	var correlationID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusConflict)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/summary/run", nil)

	LoggingMiddleware()(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotEmpty(t, correlationID)

	entry := hook.LastEntry()
	if assert.NotNil(t, entry) {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, http.StatusConflict, entry.Data["status_code"])
		assert.Equal(t, correlationID, entry.Data["correlation_id"])
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/summary/status", nil)

	alice.New(LogPanicMiddleware(), LoggingMiddleware()).Then(panicking).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var panicLogged bool
	for _, entry := range hook.AllEntries() {
		if entry.Message == "http: unhandled panic" {
			panicLogged = true
			assert.Equal(t, "boom", entry.Data["panic_error"])
		}
	}
	assert.True(t, panicLogged)
}
