package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SearchBar is a single-line text input that reports its value to a callback
// whenever the text changes. It does no filtering itself.
type SearchBar struct {
	input    textinput.Model
	onSearch func(query string)
}

// NewSearchBar creates a search bar that calls onSearch on every change.
func NewSearchBar(onSearch func(query string)) SearchBar {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search tasks..."
	ti.CharLimit = 128
	return SearchBar{input: ti, onSearch: onSearch}
}

// Update feeds msg to the input and notifies the callback if the text changed.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		s.notify(after)
	}
	return s, cmd
}

// Clear empties the input, notifying the callback if it held text.
func (s *SearchBar) Clear() {
	if s.input.Value() == "" {
		return
	}
	s.input.SetValue("")
	s.notify("")
}

func (s SearchBar) notify(query string) {
	if s.onSearch != nil {
		s.onSearch(query)
	}
}

// Value returns the current text.
func (s SearchBar) Value() string { return s.input.Value() }

// Focus gives the input keyboard focus.
func (s *SearchBar) Focus() tea.Cmd { return s.input.Focus() }

// Blur removes keyboard focus.
func (s *SearchBar) Blur() { s.input.Blur() }

// Focused reports whether the input has focus.
func (s SearchBar) Focused() bool { return s.input.Focused() }

// SetWidth sets the visible width of the input.
func (s *SearchBar) SetWidth(w int) { s.input.Width = w }

// View renders the input.
func (s SearchBar) View() string { return s.input.View() }
