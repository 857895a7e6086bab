package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vetsoft/internal/middleware"
	"vetsoft/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) logger.Logger {
	return logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, App: "vetsoft", Output: buf})
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	var buf bytes.Buffer

	h := chimw.RequestID(middleware.Recover(newLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/clients", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, buf.String(), `msg="panic recovered"`)
	require.Contains(t, buf.String(), "panic=boom")
	require.Contains(t, buf.String(), "request_id=")
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer

	h := middleware.AccessLog(newLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pets", nil))

	require.Equal(t, http.StatusCreated, rec.Code)
	line := buf.String()
	require.True(t, strings.HasSuffix(line, "\n"))
	require.Contains(t, line, "level=debug")
	require.Contains(t, line, "method=POST")
	require.Contains(t, line, "path=/pets")
	require.Contains(t, line, "status=201")
	require.Contains(t, line, "bytes=2")
}
