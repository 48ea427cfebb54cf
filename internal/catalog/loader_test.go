package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap/zaptest"
)

func newTestLoader(t *testing.T) (*Loader, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewLoader(nil, tp.Tracer("test"), zaptest.NewLogger(t)), sr
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("http://localhost/data.json"))
	assert.True(t, IsRemote("https://example.com/data.json"))
	assert.False(t, IsRemote("data.json"))
	assert.False(t, IsRemote("/srv/http/data.json"))
}

func TestLoader_LoadFile(t *testing.T) {
	l, sr := newTestLoader(t)

	cat, err := l.Load(context.Background(), filepath.Join("testdata", "data.json"))
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Len())

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "catalog.load", spans[0].Name())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestLoader_LoadMissingFile(t *testing.T) {
	l, sr := newTestLoader(t)

	_, err := l.Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "load catalog")

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestLoader_LoadHTTP(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	l, _ := newTestLoader(t)
	cat, err := l.Load(context.Background(), srv.URL+"/data.json")
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Len())
	assert.Equal(t, "€", cat.Config().Currency)
}

func TestLoader_LoadHTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	l, _ := newTestLoader(t)
	_, err := l.Load(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestLoader_LoadInvalidDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [{"name": "Bad", "stack": 0}]}`), 0o644))

	l, _ := newTestLoader(t)
	_, err := l.Load(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestLoader_LoadHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l, _ := newTestLoader(t)
	_, err := l.Load(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewLoader_NilArguments(t *testing.T) {
	l := NewLoader(nil, nil, nil)
	require.NotNil(t, l)
	cat, err := l.Load(context.Background(), filepath.Join("testdata", "data.json"))
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Len())
}
