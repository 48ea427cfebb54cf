package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// DefaultTimeout bounds a single webhook POST.
const DefaultTimeout = 10 * time.Second

// StatusError is returned when the webhook answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webhook returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("webhook returned status %d: %s", e.StatusCode, e.Body)
}

// Client posts feedback envelopes to a webhook.
type Client struct {
	http   *http.Client
	tracer trace.Tracer
	logger *zap.Logger
	now    func() time.Time
}

// NewClient creates a client. Nil arguments fall back to an http.Client with
// DefaultTimeout, a no-op tracer and a no-op logger.
func NewClient(httpClient *http.Client, tracer trace.Tracer, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{http: httpClient, tracer: tracer, logger: logger, now: time.Now}
}

// Submit validates form and posts it to webhookURL with footer as the embed
// footer. It returns a submission ID used for correlating logs and traces.
// ErrNoWebhook and validation errors are returned before any request is made.
func (c *Client) Submit(ctx context.Context, webhookURL string, form Form, footer string) (string, error) {
	if webhookURL == "" {
		return "", ErrNoWebhook
	}
	payload, err := BuildPayload(form, footer, c.now())
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	ctx, span := c.tracer.Start(ctx, "feedback.submit",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("itemstore.feedback.id", id),
			attribute.String("itemstore.feedback.type", string(form.Type)),
		))
	defer span.End()

	if err := c.post(ctx, webhookURL, payload); err != nil {
		err = fmt.Errorf("submit feedback: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("feedback failed", zap.String("id", id), zap.String("type", string(form.Type)), zap.Error(err))
		return id, err
	}
	c.logger.Info("feedback sent", zap.String("id", id), zap.String("type", string(form.Type)))
	return id, nil
}

func (c *Client) post(ctx context.Context, url string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(bytes.TrimSpace(msg))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
