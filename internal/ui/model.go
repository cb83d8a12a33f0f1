// Package ui provides the interactive terminal screen: a search bar, the task
// form and the filtered task rows, driven by a todolist.List.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todolist/internal/service"
	"todolist/internal/todolist"
)

type focusArea int

const (
	focusSearch focusArea = iota
	focusName
	focusTask
	focusDeadline
	focusRows
	focusCount
)

const (
	fieldName = iota
	fieldTask
	fieldDeadline
	fieldCount
)

// linesPerRow is how many lines one rendered task occupies.
const linesPerRow = 3

// chromeLines is the height of everything above and below the rows.
const chromeLines = 12

// Model is the Bubble Tea model for the list screen.
type Model struct {
	ctx    context.Context
	list   *todolist.List
	search SearchBar
	fields [fieldCount]textinput.Model
	focus  focusArea
	cursor int
	busy   int
	width  int
	height int
}

// opDoneMsg is sent when a backend operation finished, successfully or not.
type opDoneMsg struct {
	op string
}

// NewModel creates the screen for list. Backend calls use ctx.
func NewModel(ctx context.Context, list *todolist.List) *Model {
	m := &Model{
		ctx:  ctx,
		list: list,
	}
	m.search = NewSearchBar(list.Filter)

	placeholders := [fieldCount]string{
		fieldName:     "Enter task name",
		fieldTask:     "Enter task description",
		fieldDeadline: "YYYY-MM-DD",
	}
	for i := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		m.fields[i] = ti
	}
	m.fields[fieldDeadline].CharLimit = 32

	m.search.Focus()
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.run("load", m.list.Load))
}

// run executes fn in a command. The returned error is dropped here: the list
// has already logged it and the screen never enters an error state.
func (m *Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	m.busy++
	ctx := m.ctx
	return func() tea.Msg {
		_ = fn(ctx)
		return opDoneMsg{op: op}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		if m.busy > 0 {
			m.busy--
		}
		m.syncForm()
		m.clampCursor()
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := msg.Width - 14
		if w < 10 {
			w = 10
		}
		m.search.SetWidth(w)
		for i := range m.fields {
			m.fields[i].Width = w
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and similar messages go to the focused input.
	return m.updateFocused(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		return m, m.setFocus((m.focus + 1) % focusCount)
	case "shift+tab":
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case focusSearch:
		if msg.String() == "esc" {
			m.search.Clear()
			m.clampCursor()
			return m, nil
		}
		if msg.String() == "enter" || msg.String() == "down" {
			return m, m.setFocus(focusRows)
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.clampCursor()
		return m, cmd
	case focusRows:
		return m.handleRowKey(msg.String())
	default:
		return m.handleFormKey(msg)
	}
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.run("submit", m.list.Submit)
	case "esc":
		m.list.CancelEdit()
		m.syncForm()
		return m, nil
	case "up":
		if m.focus > focusName {
			return m, m.setFocus(m.focus - 1)
		}
		return m, nil
	case "down":
		return m, m.setFocus(m.focus + 1)
	}

	i := fieldIndex(m.focus)
	var cmd tea.Cmd
	m.fields[i], cmd = m.fields[i].Update(msg)
	m.list.SetForm(m.formFromInputs())
	return m, cmd
}

func (m *Model) handleRowKey(key string) (tea.Model, tea.Cmd) {
	rows := m.list.Filtered()
	switch key {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(rows) - 1
		m.clampCursor()
	case "e", "enter":
		if task, ok := m.selected(rows); ok {
			m.list.BeginEdit(task)
			m.syncForm()
			return m, m.setFocus(focusName)
		}
	case "d", "delete":
		if task, ok := m.selected(rows); ok {
			return m, m.run("delete", func(ctx context.Context) error {
				return m.list.Delete(ctx, task.ID)
			})
		}
	case "a", "n":
		m.list.CancelEdit()
		m.syncForm()
		return m, m.setFocus(focusName)
	case "r":
		return m, m.run("load", m.list.Load)
	case "/":
		return m, m.setFocus(focusSearch)
	}
	return m, nil
}

func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusName, focusTask, focusDeadline:
		i := fieldIndex(m.focus)
		m.fields[i], cmd = m.fields[i].Update(msg)
	}
	return m, cmd
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.search.Blur()
	for i := range m.fields {
		m.fields[i].Blur()
	}
	switch f {
	case focusSearch:
		return m.search.Focus()
	case focusName, focusTask, focusDeadline:
		return m.fields[fieldIndex(f)].Focus()
	}
	return nil
}

func fieldIndex(f focusArea) int {
	return int(f - focusName)
}

func (m *Model) formFromInputs() todolist.Form {
	return todolist.Form{
		Name:     m.fields[fieldName].Value(),
		Task:     m.fields[fieldTask].Value(),
		Deadline: m.fields[fieldDeadline].Value(),
	}
}

// syncForm copies the list's form into the inputs.
func (m *Model) syncForm() {
	form := m.list.Form()
	values := [fieldCount]string{
		fieldName:     form.Name,
		fieldTask:     form.Task,
		fieldDeadline: form.Deadline,
	}
	for i, v := range values {
		if m.fields[i].Value() != v {
			m.fields[i].SetValue(v)
		}
	}
}

func (m *Model) selected(rows []service.Task) (service.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(rows) {
		return service.Task{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.list.Filtered())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Todo List"))
	if m.busy > 0 {
		b.WriteString(dimStyle.Render("  syncing..."))
	}
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	m.writeForm(&b)
	b.WriteString("\n")
	m.writeRows(&b)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(helpLine(m.focus)))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) writeForm(b *strings.Builder) {
	labels := [fieldCount]string{
		fieldName:     "Name",
		fieldTask:     "Task",
		fieldDeadline: "Deadline",
	}
	for i, label := range labels {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(m.fields[i].View())
		b.WriteString("\n")
	}

	style := buttonStyle
	if m.focus >= focusName && m.focus <= focusDeadline {
		style = activeButtonStyle
	}
	if id, ok := m.list.Editing(); ok {
		b.WriteString(style.Render(fmt.Sprintf("Save Task #%d", id)))
		b.WriteString(dimStyle.Render("  esc to cancel"))
	} else {
		b.WriteString(style.Render("Add Task"))
	}
	b.WriteString("\n")
}

func (m *Model) writeRows(b *strings.Builder) {
	rows := m.list.Filtered()
	if len(rows) == 0 {
		if m.list.Query() != "" {
			b.WriteString(dimStyle.Render("  No tasks match the search."))
		} else {
			b.WriteString(dimStyle.Render("  No tasks yet."))
		}
		b.WriteString("\n")
		return
	}

	start, end := m.visibleRange(len(rows))
	for i := start; i < end; i++ {
		t := rows[i]
		marker := "  "
		name := normalize(t.Name, "(untitled)")
		if i == m.cursor && m.focus == focusRows {
			marker = "> "
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(b, "%s#%-4d %s\n", marker, t.ID, name)
		fmt.Fprintf(b, "        %s\n", dimStyle.Render(normalize(t.Task, "-")))
		fmt.Fprintf(b, "        %s\n", dimStyle.Render("Deadline: "+normalize(t.Deadline, "-")))
	}
	if end-start < len(rows) {
		fmt.Fprintf(b, "%s\n", dimStyle.Render(fmt.Sprintf("  showing %d-%d of %d", start+1, end, len(rows))))
	}
}

// visibleRange returns the window of rows that fits the terminal and contains
// the cursor. With no known height every row is shown.
func (m *Model) visibleRange(n int) (int, int) {
	if m.height <= 0 {
		return 0, n
	}
	capacity := (m.height - chromeLines) / linesPerRow
	if capacity < 1 {
		capacity = 1
	}
	if n <= capacity {
		return 0, n
	}
	start := m.cursor - capacity + 1
	if start < 0 {
		start = 0
	}
	return start, start + capacity
}

func helpLine(f focusArea) string {
	switch f {
	case focusSearch:
		return "type to search • esc clear • enter/tab to rows • ctrl+c quit"
	case focusRows:
		return "↑/↓ move • e edit • d delete • a add • r reload • / search • q quit"
	default:
		return "enter save • esc cancel edit • tab next field • ctrl+c quit"
	}
}

func normalize(s, empty string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return empty
	}
	return s
}
