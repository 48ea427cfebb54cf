package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"itemstore/internal/catalog"
	"itemstore/internal/feedback"
)

// CatalogLoader fetches and validates a catalog document.
type CatalogLoader interface {
	Load(ctx context.Context, source string) (*catalog.Catalog, error)
}

// FeedbackSubmitter posts a feedback form to a webhook.
type FeedbackSubmitter interface {
	Submit(ctx context.Context, webhookURL string, form feedback.Form, footer string) (string, error)
}

// loadCatalogCmd fetches the catalog off the event loop.
func loadCatalogCmd(l CatalogLoader, source string) tea.Cmd {
	return func() tea.Msg {
		if l == nil {
			return CatalogLoadedMsg{Err: errNoLoader}
		}
		cat, err := l.Load(context.Background(), source)
		return CatalogLoadedMsg{Catalog: cat, Err: err}
	}
}

// submitFeedbackCmd posts the form off the event loop.
func submitFeedbackCmd(s FeedbackSubmitter, webhookURL string, form feedback.Form, footer string) tea.Cmd {
	return func() tea.Msg {
		if s == nil {
			return FeedbackSentMsg{Err: feedback.ErrNoWebhook}
		}
		id, err := s.Submit(context.Background(), webhookURL, form, footer)
		return FeedbackSentMsg{ID: id, Err: err}
	}
}

// tipTickCmd schedules the next tip rotation.
func tipTickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tipTickMsg{gen: gen}
	})
}
