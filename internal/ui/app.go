package ui

import (
	"errors"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"itemstore/internal/catalog"
	"itemstore/internal/tips"
)

var errNoLoader = errors.New("no catalog loader configured")

// Options configures NewAppModel.
type Options struct {
	Loader          CatalogLoader
	Source          string // catalog path or URL
	Feedback        FeedbackSubmitter
	WebhookOverride string // replaces the document's webhook when set
	Logger          *zap.Logger
	Rand            *rand.Rand // tip selection; nil = random seed
}

// AppModel is the root model and the single owner of storefront state.
type AppModel struct {
	Mode       AppMode
	Storefront *CatalogView // nil until the catalog is loaded
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Tips       *tips.Rotator

	Status        string
	StatusIsError bool

	opts    Options
	logger  *zap.Logger
	spinner spinner.Model
	tipGen  int
	width   int
	height  int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model in loading mode.
func NewAppModel(opts Options) *AppModel {
	if opts.Source == "" {
		opts.Source = catalog.DefaultSource
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Status

	return &AppModel{
		Mode:       ModeLoading,
		KeyHandler: NewKeyHandler(newRegistry()),
		opts:       opts,
		logger:     logger,
		spinner:    s,
	}
}

// newRegistry binds the storefront keys. All of them act on a loaded catalog.
func newRegistry() *KeybindRegistry {
	ready := []AppMode{ModeReady}
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }

	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("q", tea.Quit, "quit", ready)
	reg.BindWithDescForMode("/", msg(FocusSearchMsg{}), "search", ready)
	reg.BindWithDescForMode("c", msg(CycleCategoryMsg{Delta: 1}), "category", ready)
	reg.BindWithDescForMode("C", msg(CycleCategoryMsg{Delta: -1}), "", ready)
	reg.BindWithDescForMode("s", msg(CycleSortMsg{Delta: 1}), "sort", ready)
	reg.BindWithDescForMode("S", msg(CycleSortMsg{Delta: -1}), "", ready)
	reg.BindWithDescForMode("enter", msg(ShowCalculatorMsg{}), "calculate", ready)
	reg.BindWithDescForMode("SPC g", msg(ShowMoneyGuideMsg{}), "Money guide", ready)
	reg.BindWithDescForMode("SPC f", msg(ShowFeedbackMsg{}), "Feedback", ready)
	reg.BindWithDescForMode("SPC t", msg(NextTipMsg{}), "Next tip", ready)
	reg.BindWithDescForMode("SPC q", tea.Quit, "Quit", ready)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Catalog returns the loaded catalog, or nil.
func (m *AppModel) Catalog() *catalog.Catalog {
	if m.Storefront == nil {
		return nil
	}
	return m.Storefront.Catalog()
}

// webhookURL is the override when configured, else the document's webhook.
func (m *AppModel) webhookURL() string {
	if m.opts.WebhookOverride != "" {
		return m.opts.WebhookOverride
	}
	if cat := m.Catalog(); cat != nil {
		return cat.Config().DiscordWebhook
	}
	return ""
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	a.logger.Info("loading catalog", zap.String("source", a.opts.Source))
	return tea.Batch(a.spinner.Tick, loadCatalogCmd(a.opts.Loader, a.opts.Source))
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case spinner.TickMsg:
		if a.Mode != ModeLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case CatalogLoadedMsg:
		return a.handleCatalogLoaded(msg)
	case CatalogReloadedMsg:
		return a.handleCatalogReloaded(msg)
	case tipTickMsg:
		return a.handleTipTick(msg)
	case NextTipMsg:
		a.nextTip()
		return a, nil
	case FocusSearchMsg:
		if a.Storefront != nil {
			return a, a.Storefront.FocusSearch()
		}
		return a, nil
	case CycleCategoryMsg:
		if a.Storefront != nil {
			a.Storefront.CycleCategory(msg.Delta)
			a.logRendered()
		}
		return a, nil
	case CycleSortMsg:
		if a.Storefront != nil {
			a.Storefront.CycleSort(msg.Delta)
			a.logRendered()
		}
		return a, nil
	case ShowCalculatorMsg:
		return a.handleShowCalculator()
	case ShowMoneyGuideMsg:
		return a.handleShowMoneyGuide()
	case ShowFeedbackMsg:
		return a.handleShowFeedback()
	case SubmitFeedbackMsg:
		return a.handleSubmitFeedback(msg)
	case FeedbackSentMsg:
		return a.handleFeedbackSent(msg)
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	if a.Storefront != nil {
		_, cmd := a.Storefront.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleKey routes a key press: ctrl+c always quits, then the top modal,
// then the focused search box, then keybinds, then the item table.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}
	if a.Mode != ModeReady || a.Storefront == nil {
		return a, nil
	}
	if a.Storefront.SearchFocused() {
		_, cmd := a.Storefront.Update(msg)
		a.logRendered()
		return a, cmd
	}
	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}
	_, cmd := a.Storefront.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var base string
	switch {
	case a.Mode == ModeLoading:
		base = a.spinner.View() + " Loading catalog…"
	case a.Storefront != nil:
		base = a.Storefront.View() + "\n" + a.renderTipBar() + a.renderFooter()
	}

	if top, ok := a.Overlays.Peek(); ok {
		modal := top.View.View()
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
		}
		return modal
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

func (a *appModelAdapter) renderTipBar() string {
	if a.Tips == nil || a.Tips.Len() == 0 {
		return ""
	}
	return Styles.BoxCompact.Render("💡 "+a.Tips.Current()) + "\n"
}

func (a *appModelAdapter) renderFooter() string {
	var b string
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		b += style.Render(a.Status) + "\n"
	}
	b += Styles.Hint.Render("Press [SPC] for commands") + "  " + RenderFooterHelp(a.KeyHandler, a.Mode, a.width)
	return b
}
