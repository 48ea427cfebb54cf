package ui

import "testing"

func TestOverlayStack_PushPopPeek(t *testing.T) {
	var s OverlayStack
	if _, ok := s.Peek(); ok {
		t.Fatal("empty stack should have no top")
	}
	a := NewAlertModal("a", "")
	b := NewAlertModal("b", "")
	s.Push(Overlay{View: a, Dismiss: "esc"})
	s.Push(Overlay{View: b})

	top, _ := s.Peek()
	if top.View != View(b) {
		t.Errorf("top = %v, want b", top.View)
	}
	if top.IsDismissKey("esc") {
		t.Error("overlay without Dismiss should not close on esc at app level")
	}
	s.Pop()
	top, _ = s.Peek()
	if !top.IsDismissKey("esc") {
		t.Error("expected esc to dismiss a")
	}
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d", s.Len())
	}
}

func TestOverlayStack_Find(t *testing.T) {
	var s OverlayStack
	form := NewFeedbackModal()
	s.Push(Overlay{View: form})
	s.Push(Overlay{View: NewAlertModal("x", "")})

	v, ok := s.Find(func(v View) bool { _, is := v.(*FeedbackModal); return is })
	if !ok || v != View(form) {
		t.Errorf("Find = %v, %v", v, ok)
	}
	if _, ok := s.Find(func(v View) bool { _, is := v.(*CalculatorModal); return is }); ok {
		t.Error("Find should miss absent modal types")
	}
}
