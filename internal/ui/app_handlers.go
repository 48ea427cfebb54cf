package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"itemstore/internal/feedback"
	"itemstore/internal/tips"
)

// handleWindowSize records the size and forwards it to the storefront and every modal.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width = msg.Width
	a.height = msg.Height
	var cmds []tea.Cmd
	if a.Storefront != nil {
		_, cmd := a.Storefront.Update(msg)
		cmds = append(cmds, cmd)
	}
	for i := range a.Overlays.Stack {
		v, cmd := a.Overlays.Stack[i].View.Update(msg)
		a.Overlays.Stack[i].View = v
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// handleCatalogLoaded leaves loading mode. A failed load shows a blocking
// alert; dismissing it exits.
func (a *appModelAdapter) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	if a.Mode != ModeLoading {
		return a, nil
	}
	if msg.Err != nil {
		a.Mode = ModeFailed
		a.logger.Error("catalog unavailable", zap.Error(msg.Err))
		a.Overlays.Clear()
		a.Overlays.Push(Overlay{
			View: NewBlockingAlertModal("Could not load the catalog", msg.Err.Error()),
		})
		return a, nil
	}

	a.Mode = ModeReady
	a.Storefront = NewCatalogView(msg.Catalog)
	if a.width > 0 {
		a.Storefront.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.logRendered()
	return a, a.resetTips()
}

// handleCatalogReloaded swaps in a reloaded catalog. Failures keep the
// current one and show a non-blocking alert.
func (a *appModelAdapter) handleCatalogReloaded(msg CatalogReloadedMsg) (tea.Model, tea.Cmd) {
	if a.Mode != ModeReady {
		return a, nil
	}
	if msg.Err != nil {
		a.logger.Warn("catalog reload failed", zap.Error(msg.Err))
		a.Status = "Reload failed; showing the previous catalog"
		a.StatusIsError = true
		a.Overlays.Push(Overlay{View: NewAlertModal("Catalog reload failed", msg.Err.Error()), Dismiss: "esc"})
		return a, nil
	}
	a.Storefront.SetCatalog(msg.Catalog)
	a.Status = "Catalog reloaded"
	a.StatusIsError = false
	a.logRendered()
	return a, a.resetTips()
}

// resetTips rebuilds the rotator from the current catalog and starts a new
// tick generation.
func (a *appModelAdapter) resetTips() tea.Cmd {
	cat := a.Catalog()
	a.Tips = tips.New(cat.Tips(), a.opts.Rand)
	a.tipGen++
	if a.Tips.Len() < 2 {
		return nil
	}
	interval := cat.Config().TipInterval()
	a.logger.Debug("tip rotation", zap.Duration("interval", interval), zap.Int("tips", a.Tips.Len()))
	return tipTickCmd(interval, a.tipGen)
}

func (a *appModelAdapter) handleTipTick(msg tipTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != a.tipGen || a.Tips == nil {
		return a, nil
	}
	a.nextTip()
	return a, tipTickCmd(a.Catalog().Config().TipInterval(), a.tipGen)
}

func (a *appModelAdapter) nextTip() {
	if a.Tips != nil {
		a.Tips.Next()
	}
}

func (a *appModelAdapter) handleShowCalculator() (tea.Model, tea.Cmd) {
	if a.Storefront == nil {
		return a, nil
	}
	item, ok := a.Storefront.SelectedItem()
	if !ok {
		return a, nil
	}
	a.logger.Debug("calculator opened", zap.String("item", item.Name))
	modal := NewCalculatorModal(item, a.Catalog().Config().Currency)
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

func (a *appModelAdapter) handleShowMoneyGuide() (tea.Model, tea.Cmd) {
	if a.Catalog() == nil {
		return a, nil
	}
	modal := NewMoneyGuideModal(a.Catalog().MoneyMethods())
	if a.width > 0 {
		modal.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

func (a *appModelAdapter) handleShowFeedback() (tea.Model, tea.Cmd) {
	if a.Catalog() == nil {
		return a, nil
	}
	modal := NewFeedbackModal()
	a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
	return a, modal.Init()
}

func (a *appModelAdapter) handleSubmitFeedback(msg SubmitFeedbackMsg) (tea.Model, tea.Cmd) {
	footer := a.Catalog().Config().FeedbackFooter()
	return a, submitFeedbackCmd(a.opts.Feedback, a.webhookURL(), msg.Form, footer)
}

// handleFeedbackSent closes the form on success. On failure the form stays
// open with its contents and an alert is shown above it.
func (a *appModelAdapter) handleFeedbackSent(msg FeedbackSentMsg) (tea.Model, tea.Cmd) {
	form, _ := a.feedbackModal()
	if form != nil {
		form.SetSubmitting(false)
	}
	if msg.Err != nil {
		a.logger.Warn("feedback not sent", zap.String("id", msg.ID), zap.Error(msg.Err))
		a.Status = "Feedback could not be sent"
		a.StatusIsError = true
		a.Overlays.Push(Overlay{View: NewAlertModal("Feedback not sent", feedbackErrorText(msg.Err)), Dismiss: "esc"})
		return a, nil
	}
	if top, ok := a.Overlays.Peek(); ok && top.View == View(form) {
		a.Overlays.Pop()
	}
	a.Status = "Thanks for your feedback!"
	a.StatusIsError = false
	return a, nil
}

func (a *appModelAdapter) feedbackModal() (*FeedbackModal, bool) {
	v, ok := a.Overlays.Find(func(v View) bool {
		_, is := v.(*FeedbackModal)
		return is
	})
	if !ok {
		return nil, false
	}
	return v.(*FeedbackModal), true
}

func feedbackErrorText(err error) string {
	var se *feedback.StatusError
	switch {
	case errors.Is(err, feedback.ErrNoWebhook):
		return "Feedback is not configured for this site."
	case errors.As(err, &se):
		return "The feedback service rejected the message: " + se.Error()
	default:
		return "Error sending feedback: " + err.Error()
	}
}

func (a *appModelAdapter) logRendered() {
	if a.Storefront == nil {
		return
	}
	q := a.Storefront.Query()
	a.logger.Debug("items rendered",
		zap.Int("count", len(a.Storefront.Results())),
		zap.String("search", q.Search),
		zap.String("category", q.Category),
		zap.String("sort", string(q.Sort)))
}
