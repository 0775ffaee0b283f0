// Package term is SelectMultiple for the terminal: the same controlled
// multi-select list as a bubbletea model.
//
// The model never changes its own selection. A toggle emits a
// SelectionsChangeMsg (and calls OnSelectionsChange when set); the owner
// decides what the selection becomes and hands it back with
// SetSelectedItems or SetProps.
package term

import (
	"strings"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/locale"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal/viewport"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	cursorWidth   = 2
)

// Props configures the model. Items is required.
type Props struct {
	Items              []selection.Item
	SelectedItems      []selection.Item
	OnSelectionsChange func(next []selection.Entry, toggled selection.Entry)

	Title           string
	Checkbox        string // Default "[ ]"
	CheckedCheckbox string // Default "[x]"

	// RenderLabel replaces the default label text. Its output is wrapped
	// and clipped like the default.
	RenderLabel func(content any, selected bool) string

	Sheet     style.Sheet
	Localizer *locale.Localizer
}

// SelectionsChangeMsg is emitted for every toggle.
type SelectionsChangeMsg struct {
	Next    []selection.Entry
	Toggled selection.Entry
}

// Model is a bubbletea model. Use it by value like any other tea.Model.
type Model struct {
	props  Props
	rows   []selection.Row
	view   viewport.Viewport
	styles styles

	width, height int
	rowLines      int

	confirmed bool
	cancelled bool
}

func New(props Props) (Model, error) {
	m := Model{width: defaultWidth, height: defaultHeight}
	m.view = viewport.New(0, 1)
	return m.SetProps(props)
}

// SetProps replaces every prop and re-derives the rows.
func (m Model) SetProps(props Props) (Model, error) {
	if props.Items == nil {
		return m, selection.ErrMissingItems
	}
	if props.SelectedItems == nil {
		props.SelectedItems = []selection.Item{}
	}
	if props.Checkbox == "" {
		props.Checkbox = "[ ]"
	}
	if props.CheckedCheckbox == "" {
		props.CheckedCheckbox = "[x]"
	}
	if props.Localizer == nil {
		props.Localizer = locale.New()
	}

	m.props = props
	m.styles = newStyles(DefaultSheet().Over(props.Sheet))
	m.rows = selection.Reconcile(props.Items, props.SelectedItems)
	m.relayout()
	return m, nil
}

// SetSelectedItems is SetProps with only the selection changed.
func (m Model) SetSelectedItems(selected []selection.Item) Model {
	props := m.props
	props.SelectedItems = selected
	m, _ = m.SetProps(props)
	return m
}

func (m Model) Rows() []selection.Row {
	return append([]selection.Row(nil), m.rows...)
}

func (m Model) Focus() int {
	return m.view.Focus
}

// Confirmed reports whether the user finished with enter.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Cancelled reports whether the user quit without confirming.
func (m Model) Cancelled() bool {
	return m.cancelled
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.view.Move(-1)
		case "down", "j":
			m.view.Move(1)
		case "pgup":
			m.view.Page(-1)
		case "pgdown":
			m.view.Page(1)
		case "home", "g":
			m.view.FocusOn(0)
		case "end", "G":
			m.view.FocusOn(len(m.rows) - 1)
		case " ", "x":
			return m, m.toggle(m.view.Focus)
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if index, ok := m.rowAt(msg.Y); ok {
			m.view.FocusOn(index)
			return m, m.toggle(index)
		}
	}
	return m, nil
}

func (m Model) toggle(index int) tea.Cmd {
	if index < 0 || index >= len(m.rows) {
		return nil
	}

	next, toggled := selection.Toggle(m.props.SelectedItems, m.rows[index])
	if m.props.OnSelectionsChange != nil {
		m.props.OnSelectionsChange(next, toggled)
	}
	return func() tea.Msg {
		return SelectionsChangeMsg{Next: next, Toggled: toggled}
	}
}

func (m Model) View() string {
	var b strings.Builder

	if header := m.header(); header != "" {
		b.WriteString(header)
		b.WriteString("\n\n")
	}

	start, end := m.view.Visible()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	return m.styles.container.Render(b.String())
}

func (m Model) header() string {
	if m.props.Title == "" {
		return ""
	}
	count := m.props.Localizer.SelectedCount(len(m.props.SelectedItems))
	title := m.styles.title.Render(m.props.Title)
	gap := m.contentWidth() - lipgloss.Width(title) - lipgloss.Width(count)
	return title + strings.Repeat(" ", max(gap, 1)) + m.styles.hint.Render(count)
}

func (m Model) footer() string {
	l := m.props.Localizer
	hints := []string{
		"↑/↓ " + l.T(locale.Navigate),
		"space " + l.T(locale.Toggle),
		"enter " + l.T(locale.Done),
		"q " + l.T(locale.Quit),
	}
	return m.styles.hint.Render(strings.Join(hints, " • "))
}

func (m Model) renderRow(index int) string {
	row := m.rows[index]
	rs := m.styles.forRow(row.Selected)

	cursor := strings.Repeat(" ", cursorWidth)
	if index == m.view.Focus {
		cursor = m.styles.cursor.Render("›") + " "
	}

	glyph := m.props.Checkbox
	if row.Selected {
		glyph = m.props.CheckedCheckbox
	}
	indent := cursorWidth + lipgloss.Width(glyph) + rs.gap

	lines := m.labelLines(row, rs)
	for len(lines) < m.rowLines {
		lines = append(lines, "")
	}

	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(cursor + rs.checkbox.Render(glyph) + strings.Repeat(" ", rs.gap))
		} else {
			b.WriteString("\n" + strings.Repeat(" ", indent))
		}
		b.WriteString(rs.label.Render(line))
	}
	return rs.row.Width(m.contentWidth()).Render(b.String())
}

// labelLines wraps the label to the label column and clips it to the
// style's line limit, ending a clipped label with an ellipsis.
func (m Model) labelLines(row selection.Row, rs rowStyles) []string {
	text := row.Text()
	if m.props.RenderLabel != nil {
		text = m.props.RenderLabel(row.Content, row.Selected)
	}

	width := m.labelWidth(row.Selected)
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}

	if rs.maxLines > 0 && len(lines) > rs.maxLines {
		lines = lines[:rs.maxLines]
		last := lines[len(lines)-1]
		if ansi.StringWidth(last)+1 > width {
			last = ansi.Truncate(last, width, "…")
		} else {
			last += "…"
		}
		lines[len(lines)-1] = last
	}
	return lines
}

func (m Model) labelWidth(selected bool) int {
	rs := m.styles.forRow(selected)
	glyph := m.props.Checkbox
	if selected {
		glyph = m.props.CheckedCheckbox
	}
	used := cursorWidth + lipgloss.Width(glyph) + rs.gap + rs.row.GetHorizontalPadding()
	return max(m.contentWidth()-used, 1)
}

func (m Model) contentWidth() int {
	return max(m.width-m.styles.container.GetHorizontalFrameSize(), 1)
}

// chromeLines is the height taken by everything but rows.
func (m Model) chromeLines() int {
	lines := 2 // blank line and footer
	if m.props.Title != "" {
		lines += 2
	}
	return lines
}

// relayout recomputes the shared row height and how many rows fit.
func (m *Model) relayout() {
	m.rowLines = 1
	for _, row := range m.rows {
		rs := m.styles.forRow(row.Selected)
		m.rowLines = max(m.rowLines, len(m.labelLines(row, rs)))
	}

	m.view.SetCount(len(m.rows))
	m.view.SetMaxVisible(max((m.height-m.chromeLines())/m.rowLines, 1))
	m.view.ScrollTo(m.view.Focus)
}

// rowAt maps a screen line to a row index.
func (m Model) rowAt(y int) (int, bool) {
	top := 0
	if m.props.Title != "" {
		top = 2
	}
	if y < top {
		return -1, false
	}

	start, end := m.view.Visible()
	index := start + (y-top)/m.rowLines
	if index >= end {
		return -1, false
	}
	return index, true
}
