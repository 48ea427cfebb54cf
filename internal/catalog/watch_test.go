package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

type reloadResult struct {
	cat *Catalog
	err error
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": [{"name": "A", "stack": 1}]}`), 0o644))

	results := make(chan reloadResult, 4)
	logger := zaptest.NewLogger(t)
	w, err := NewWatcher(path, NewLoader(nil, nil, logger), func(c *Catalog, err error) {
		results <- reloadResult{c, err}
	}, logger)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte(`{"items": [{"name": "A", "stack": 1}, {"name": "B", "stack": 2}]}`), 0o644))

	select {
	case res := <-results:
		require.NoError(t, res.err)
		assert.Equal(t, 2, res.cat.Len())
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	require.NoError(t, w.Stop())
}

func TestWatcher_ReportsInvalidDocument(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	results := make(chan reloadResult, 4)
	w, err := NewWatcher(path, nil, func(c *Catalog, err error) {
		results <- reloadResult{c, err}
	}, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(path, []byte(`{"items": [{"name": "Broken", "stack": -1}]}`), 0o644))

	select {
	case res := <-results:
		require.Error(t, res.err)
		assert.ErrorIs(t, res.err, ErrInvalidItem)
		assert.Nil(t, res.cat)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	require.NoError(t, w.Stop())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	results := make(chan reloadResult, 4)
	w, err := NewWatcher(path, nil, func(c *Catalog, err error) {
		results <- reloadResult{c, err}
	}, nil)
	require.NoError(t, err)
	w.SetDebounce(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{}`), 0o644))

	select {
	case res := <-results:
		t.Fatalf("unexpected reload: %+v", res)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, w.Stop())
}

func TestNewWatcher_RejectsRemoteSource(t *testing.T) {
	_, err := NewWatcher("https://example.com/data.json", nil, nil, nil)
	require.Error(t, err)
}
