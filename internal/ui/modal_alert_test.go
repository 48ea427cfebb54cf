package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAlertModal_NonBlockingCloses(t *testing.T) {
	m := NewAlertModal("Oops", "Something broke")
	if !strings.Contains(m.View(), "Something broke") {
		t.Error("view missing message")
	}
	if _, cmd := m.Update(keyMsg("x")); cmd != nil {
		t.Error("other keys should be ignored")
	}
	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should close the alert")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("expected DismissModalMsg")
	}
}

func TestAlertModal_BlockingQuits(t *testing.T) {
	m := NewBlockingAlertModal("Fatal", "no catalog")
	if !strings.Contains(m.View(), "Press any key to exit") {
		t.Error("blocking alert should say any key exits")
	}
	_, cmd := m.Update(keyMsg("x"))
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("blocking alert should quit")
	}
}
