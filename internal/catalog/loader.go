package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultSource is the catalog location used when none is configured.
const DefaultSource = "data.json"

// DefaultFetchTimeout bounds an HTTP catalog fetch.
const DefaultFetchTimeout = 10 * time.Second

// maxDocumentSize caps how much of a remote response is read.
const maxDocumentSize = 8 << 20

// Loader reads catalog documents from local files or http(s) URLs.
type Loader struct {
	client *http.Client
	tracer trace.Tracer
	logger *zap.Logger
}

// NewLoader creates a loader. Nil arguments fall back to a client with
// DefaultFetchTimeout, a no-op tracer and a no-op logger.
func NewLoader(client *http.Client, tracer trace.Tracer, logger *zap.Logger) *Loader {
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{client: client, tracer: tracer, logger: logger}
}

// IsRemote reports whether source is fetched over HTTP rather than read from disk.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load reads, parses and validates the document at source.
func (l *Loader) Load(ctx context.Context, source string) (*Catalog, error) {
	ctx, span := l.tracer.Start(ctx, "catalog.load",
		trace.WithAttributes(
			attribute.String("itemstore.catalog.source", source),
			attribute.Bool("itemstore.catalog.remote", IsRemote(source)),
		))
	defer span.End()

	data, err := l.read(ctx, source)
	if err == nil {
		var cat *Catalog
		cat, err = Parse(data)
		if err == nil {
			span.SetAttributes(
				attribute.Int("itemstore.catalog.items", cat.Len()),
				attribute.Int("itemstore.catalog.tips", len(cat.tips)),
				attribute.Int("itemstore.catalog.methods", len(cat.methods)),
			)
			l.logger.Info("catalog loaded",
				zap.String("source", source),
				zap.Int("items", cat.Len()),
				zap.Int("tips", len(cat.tips)),
				zap.Int("methods", len(cat.methods)),
			)
			return cat, nil
		}
	}

	err = fmt.Errorf("load catalog %s: %w", source, err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	l.logger.Error("catalog load failed", zap.String("source", source), zap.Error(err))
	return nil, err
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if !IsRemote(source) {
		return os.ReadFile(source)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
}
