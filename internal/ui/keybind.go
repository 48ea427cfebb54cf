package ui

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is the sequence name of the leader key.
const leaderSeq = "SPC"

type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

// KeybindRegistry maps key sequences to commands.
// Sequences use leader notation: "SPC g" is space followed by g.
// Single keys use tea's names: "q", "enter", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{bindings: make(map[string]binding)}
}

// Bind registers seq without a help description.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd) {
	r.BindWithDescForMode(seq, cmd, "", nil)
}

// BindWithDesc registers seq for every mode.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(seq, cmd, desc, nil)
}

// BindWithDescForMode registers seq. Hints for it are only listed while the
// app is in one of modes; nil means all modes. A later call for the same
// sequence replaces the earlier one.
func (r *KeybindRegistry) BindWithDescForMode(seq string, cmd tea.Cmd, desc string, modes []AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Lookup returns the command bound to seq, or nil.
func (r *KeybindRegistry) Lookup(seq string) tea.Cmd {
	return r.bindings[normalizeSeq(seq)].cmd
}

// HasPrefix reports whether a longer binding continues seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints returns the next keys after currentSeq ("SPC" when empty) with
// their descriptions. A key that only opens a longer sequence is shown as "key…".
func (r *KeybindRegistry) LeaderHints(currentSeq string, mode AppMode) map[string]string {
	if currentSeq == "" {
		currentSeq = leaderSeq
	}
	parent := normalizeSeq(currentSeq)
	prefix := parent + " "

	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(seq, prefix) || !b.appliesTo(mode) {
			continue
		}
		next := strings.Fields(strings.TrimPrefix(seq, prefix))[0]
		switch {
		case r.HasPrefix(parent + " " + next):
			out[next] = next + "…"
		case b.desc != "":
			out[next] = b.desc
		default:
			out[next] = seq
		}
	}
	return out
}

// SingleKeyHints returns the described non-leader bindings for mode.
func (r *KeybindRegistry) SingleKeyHints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for seq, b := range r.bindings {
		if b.cmd == nil || b.desc == "" || strings.HasPrefix(seq, leaderSeq) || !b.appliesTo(mode) {
			continue
		}
		out[seq] = b.desc
	}
	return out
}

func (b binding) appliesTo(mode AppMode) bool {
	return len(b.modes) == 0 || slices.Contains(b.modes, mode)
}

// normalizeSeq maps "space" and " " to SPC.
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		parts[i] = keyToSeqPart(p)
	}
	return strings.Join(parts, " ")
}

func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return leaderSeq
	}
	return s
}

// KeyHandler tracks the pending leader sequence and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string // pending sequence, starting with SPC
}

// NewKeyHandler creates a handler with space as the leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// Handle processes a key press. consumed reports whether the key belonged to
// the keybind system and must not reach the views; cmd may be nil.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	part := keyToSeqPart(msg.String())

	switch {
	case part == "esc":
		if !h.LeaderWaiting {
			return false, nil
		}
		h.reset()
		return true, nil

	case part == leaderSeq && !h.LeaderWaiting:
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil

	case h.LeaderWaiting:
		h.Buffer = append(h.Buffer, part)
		seq := strings.Join(h.Buffer, " ")
		if c := h.Registry.Lookup(seq); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if c := h.Registry.Lookup(part); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap adapts the registry to help.KeyMap. While a leader sequence is
// pending it lists the next keys, otherwise the single-key bindings.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
}

// NewKeyMap creates a KeyMap for mode.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	leader := km.keyHandler != nil && km.keyHandler.LeaderWaiting
	var hints map[string]string
	if leader {
		hints = km.registry.LeaderHints(strings.Join(km.keyHandler.Buffer, " "), km.mode)
	} else {
		hints = km.registry.SingleKeyHints(km.mode)
	}
	if len(hints) == 0 {
		return nil
	}
	bindings := hintBindings(hints)
	if leader {
		bindings = append(bindings, cancelBinding())
	}
	return bindings
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	if short := km.ShortHelp(); len(short) > 0 {
		return [][]key.Binding{short}
	}
	return nil
}

func hintBindings(hints map[string]string) []key.Binding {
	bindings := make([]key.Binding, 0, len(hints))
	for _, k := range slices.Sorted(maps.Keys(hints)) {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return bindings
}

func cancelBinding() key.Binding {
	return key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
}
