package internal

import (
	"reflect"
	"testing"
)

// Every rune is 10px wide.
func monospace(s string) int32 {
	return int32(len([]rune(s))) * 10
}

func TestWrapWith(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int32
		maxLines int
		want     []string
	}{
		{"fits", "Apple", 100, 2, []string{"Apple"}},
		{"clips second line", "Red Delicious Apple", 100, 2, []string{"Red", "Delicio..."}},
		{"two lines", "one two three four", 90, 2, []string{"one two", "three..."}},
		{"unlimited", "one two three four", 90, 0, []string{"one two", "three", "four"}},
		{"long word", "Supercalifragilistic", 100, 2, []string{"Superca..."}},
		{"newline", "a\nb", 100, 2, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWith(monospace, tt.text, tt.maxWidth, tt.maxLines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapWith(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncateWith(t *testing.T) {
	if got := truncateWith(monospace, "short", 100, false); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := truncateWith(monospace, "abcdefghijkl", 60, false); got != "abc..." {
		t.Errorf("got %q", got)
	}
	if got := truncateWith(monospace, "abcdef", 20, false); got != "..." {
		t.Errorf("got %q", got)
	}
}
