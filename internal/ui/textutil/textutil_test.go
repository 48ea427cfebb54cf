package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Diamond", 10, "Diamond"},
		{"Diamond", 7, "Diamond"},
		{"Diamond Sword", 8, "Diamond…"},
		{"Diamond", 1, "…"},
		{"Diamond", 0, ""},
		{"日本語テキスト", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if got := VisualWidth(Truncate(tt.in, tt.width)); got > tt.width {
			t.Errorf("Truncate(%q, %d) is %d columns wide", tt.in, tt.width, got)
		}
	}
}

func TestPadRightVisual(t *testing.T) {
	if got := PadRightVisual("ab", 4); got != "ab  " {
		t.Errorf("PadRightVisual = %q", got)
	}
	if got := PadRightVisual("日本", 5); VisualWidth(got) != 5 {
		t.Errorf("PadRightVisual(日本, 5) width = %d", VisualWidth(got))
	}
	if got := PadRightVisual("abcdef", 4); got != "abc…" {
		t.Errorf("PadRightVisual = %q", got)
	}
}

func TestPadRightStyled(t *testing.T) {
	styled := "\x1b[1mab\x1b[0m"
	if got := PadRightStyled(styled, 5); got != styled+"   " {
		t.Errorf("PadRightStyled = %q", got)
	}
	if got := PadRightStyled("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRightStyled = %q", got)
	}
}

func TestStars(t *testing.T) {
	tests := []struct {
		filled, total int
		want          string
	}{
		{2, 5, "★★☆☆☆"},
		{0, 3, "☆☆☆"},
		{7, 5, "★★★★★"},
		{-1, 2, "☆☆"},
		{1, 0, ""},
	}
	for _, tt := range tests {
		if got := Stars(tt.filled, tt.total); got != tt.want {
			t.Errorf("Stars(%d, %d) = %q, want %q", tt.filled, tt.total, got, tt.want)
		}
	}
}
