package ui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSearchBar_NotifiesOnEveryChange(t *testing.T) {
	var got []string
	s := NewSearchBar(func(q string) { got = append(got, q) })
	s.Focus()

	for _, r := range "ab" {
		s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyBackspace})

	want := []string{"a", "ab", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("callbacks = %v, want %v", got, want)
	}
	if s.Value() != "a" {
		t.Errorf("Value() = %q", s.Value())
	}
}

func TestSearchBar_CursorMovementIsNotAChange(t *testing.T) {
	calls := 0
	s := NewSearchBar(func(string) { calls++ })
	s.Focus()

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = s.Update(tea.KeyMsg{Type: tea.KeyRight})

	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestSearchBar_IgnoresKeysWhenBlurred(t *testing.T) {
	calls := 0
	s := NewSearchBar(func(string) { calls++ })

	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if calls != 0 || s.Value() != "" {
		t.Errorf("blurred search bar changed: calls=%d value=%q", calls, s.Value())
	}
}

func TestSearchBar_Clear(t *testing.T) {
	var last string
	calls := 0
	s := NewSearchBar(func(q string) { last = q; calls++ })
	s.Focus()
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("milk")})

	s.Clear()
	if last != "" || s.Value() != "" {
		t.Errorf("Clear() left value=%q last=%q", s.Value(), last)
	}
	s.Clear()
	if calls != 2 {
		t.Errorf("clearing an empty bar should not notify, calls=%d", calls)
	}
}
