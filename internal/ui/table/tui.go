package table

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridkit/gridview/internal/grid"
	"github.com/gridkit/gridview/internal/ui/styles"
)

// ═══════════════════════════════════════════════════════════════════════════
// Constants
// ═══════════════════════════════════════════════════════════════════════════

const (
	defaultColWidth = 20
	minColWidth     = 3
	hiddenColWidth  = 3
)

// Column display state
type colState int

const (
	colStateDefault  colState = iota // truncated to defaultColWidth
	colStateExpanded                 // full width
	colStateHidden                   // minimal width (just "...")
)

// Table mode
type tableMode int

const (
	tableModeNormal tableMode = iota
	tableModeSearch
)

// Exit mode — what to do after quitting TUI
type exitMode int

const (
	exitNormal exitMode = iota
	exitJSON
	exitRaw
	exitPlain
)

// ═══════════════════════════════════════════════════════════════════════════
// Model
// ═══════════════════════════════════════════════════════════════════════════

type tableModel struct {
	title   string
	columns []grid.Column
	records []grid.Record

	st        grid.State // transient UI state: page, page size, search, sort
	view      grid.View  // derived view, recomputed after every transition
	pageSizes []int      // choices cycled by the page-size key

	fullColWidths []int      // max width of each column's formatted content
	colStates     []colState // display state for each column
	cursor        int        // selected row within the current page
	colCursor     int        // selected column
	scrollX       int        // horizontal scroll offset in characters
	scrollY       int        // vertical scroll offset within the page
	width         int        // terminal width
	height        int        // terminal height
	ready         bool
	mode          tableMode
	searchInput   textinput.Model
	exitMode      exitMode // how to exit (for re-printing data)

	// Status message (flash notification, e.g. after yank)
	statusMsg   string
	statusUntil time.Time
}

// ═══════════════════════════════════════════════════════════════════════════
// Key Bindings
// ═══════════════════════════════════════════════════════════════════════════

type tableKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Sort        key.Binding
	NextPage    key.Binding
	PrevPage    key.Binding
	FirstPage   key.Binding
	LastPage    key.Binding
	PageSize    key.Binding
	Expand      key.Binding
	Hide        key.Binding
	Search      key.Binding
	Quit        key.Binding
	YankCell    key.Binding
	YankRow     key.Binding
	ExportJSON  key.Binding
	ExportRaw   key.Binding
	ExportPlain key.Binding
}

var tableKeys = tableKeyMap{
	Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:        key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev column")),
	Right:       key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next column")),
	Sort:        key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "sort column")),
	NextPage:    key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
	PrevPage:    key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev page")),
	FirstPage:   key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first page")),
	LastPage:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last page")),
	PageSize:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "page size")),
	Expand:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand/default")),
	Hide:        key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "hide/default")),
	Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	YankCell:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy cell")),
	YankRow:     key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy row")),
	ExportJSON:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "print as JSON")),
	ExportRaw:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "print raw")),
	ExportPlain: key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "print table")),
}

// ═══════════════════════════════════════════════════════════════════════════
// Entry Point
// ═══════════════════════════════════════════════════════════════════════════

// newTableModel builds the initial model: page 1, no sort, no search.
func newTableModel(title string, columns []grid.Column, records []grid.Record, opts DisplayOptions) tableModel {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.CharLimit = 100
	ti.Width = 30

	st := grid.NewState()
	if opts.PerPage > 0 {
		st.SetPerPage(opts.PerPage)
	}

	pageSizes := opts.PageSizes
	if len(pageSizes) == 0 {
		pageSizes = grid.PageSizes
	}

	m := tableModel{
		title:       title,
		columns:     columns,
		records:     records,
		st:          st,
		pageSizes:   pageSizes,
		colStates:   make([]colState, len(columns)),
		searchInput: ti,
	}
	m.measureColumns()
	m.recompute()
	return m
}

// setRecords replaces the data set between renders. Derived state is
// recomputed from scratch; a current page past the new last page gets
// reclamped by the pipeline.
func (m *tableModel) setRecords(records []grid.Record) {
	m.records = records
	m.measureColumns()
	m.recompute()
}

// measureColumns finds each column's widest formatted cell, header
// included.
func (m *tableModel) measureColumns() {
	widths := make([]int, len(m.columns))
	for i, col := range m.columns {
		widths[i] = len(col.Title) + 2 // room for the sort indicator
	}
	for _, rec := range m.records {
		for i, col := range m.columns {
			if w := len(rec.Cell(col.Field).Format()); w > widths[i] {
				widths[i] = w
			}
		}
	}
	m.fullColWidths = widths
}

// recompute runs the pipeline and writes the reclamped page back into
// the state. Row cursor and scroll are kept inside the new page window.
func (m *tableModel) recompute() {
	m.view = grid.Compute(m.records, m.columns, m.st)
	m.st.Page = m.view.Page

	if max := len(m.view.Visible) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureRowVisible()
}

// RunTableTUI launches the interactive table viewer. It blocks until the
// user quits. If the user requests an export (J/R/P), the current
// filtered and sorted record set is printed to stdout after the TUI
// exits.
func RunTableTUI(title string, columns []grid.Column, records []grid.Record, opts DisplayOptions) error {
	m := newTableModel(title, columns, records, opts)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Check if user requested output after exit
	if fm, ok := finalModel.(tableModel); ok {
		switch fm.exitMode {
		case exitJSON:
			return PrintJSONRecords(columns, fm.view.Sorted)
		case exitRaw:
			PrintRawRecords(columns, fm.view.Sorted)
		case exitPlain:
			PrintPlainTable(columns, fm.view.Sorted)
		}
	}

	return nil
}

// ═══════════════════════════════════════════════════════════════════════════
// Bubble Tea Interface
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) Init() tea.Cmd {
	return nil
}

func (m tableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.ensureRowVisible()

	case statusClearMsg:
		// Clear the flash message if it has expired
		if !m.statusUntil.IsZero() && time.Now().After(m.statusUntil) {
			m.statusMsg = ""
			m.statusUntil = time.Time{}
		}
		return m, nil

	case tea.KeyMsg:
		// Handle search mode
		if m.mode == tableModeSearch {
			return m.updateSearch(msg)
		}

		// Normal mode
		switch {
		case key.Matches(msg, tableKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, tableKeys.Search):
			m.mode = tableModeSearch
			m.searchInput.Focus()
			return m, textinput.Blink

		case key.Matches(msg, tableKeys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.ensureRowVisible()
			}

		case key.Matches(msg, tableKeys.Down):
			if m.cursor < len(m.view.Visible)-1 {
				m.cursor++
				m.ensureRowVisible()
			}

		case key.Matches(msg, tableKeys.Left):
			colStartX := m.getColStartX(m.colCursor)

			if colStartX < m.scrollX {
				m.scrollX -= 3
				if m.scrollX < colStartX {
					m.scrollX = colStartX
				}
				if m.scrollX < 0 {
					m.scrollX = 0
				}
			} else if m.colCursor > 0 {
				m.colCursor--
				m.ensureColVisible()
			}

		case key.Matches(msg, tableKeys.Right):
			colEndX := m.getColEndX(m.colCursor)
			viewportEndX := m.scrollX + m.width - 2

			if colEndX > viewportEndX {
				m.scrollX += 3
				maxX := m.getMaxScrollX()
				if m.scrollX > maxX {
					m.scrollX = maxX
				}
			} else if m.colCursor < len(m.columns)-1 {
				m.colCursor++
				m.ensureColVisible()
			}

		case key.Matches(msg, tableKeys.Sort):
			// Header activation: first press sorts ascending, repeat
			// presses flip the direction.
			if m.colCursor < len(m.columns) {
				m.st.ToggleSort(m.columns[m.colCursor].Field)
				m.recompute()
			}

		case key.Matches(msg, tableKeys.NextPage):
			m.st.GoToPage(m.st.Page+1, m.view.PageCount)
			m.recompute()

		case key.Matches(msg, tableKeys.PrevPage):
			m.st.GoToPage(m.st.Page-1, m.view.PageCount)
			m.recompute()

		case key.Matches(msg, tableKeys.FirstPage):
			m.st.GoToPage(1, m.view.PageCount)
			m.cursor = 0
			m.scrollY = 0
			m.recompute()

		case key.Matches(msg, tableKeys.LastPage):
			m.st.GoToPage(m.view.PageCount, m.view.PageCount)
			m.cursor = 0
			m.scrollY = 0
			m.recompute()

		case key.Matches(msg, tableKeys.PageSize):
			m.st.SetPerPage(nextPageSize(m.pageSizes, m.st.PerPage))
			m.recompute()
			return m, m.setStatus(fmt.Sprintf("%d entries per page", m.st.PerPage))

		case key.Matches(msg, tableKeys.Expand):
			if m.colCursor < len(m.colStates) {
				if m.colStates[m.colCursor] == colStateExpanded {
					m.colStates[m.colCursor] = colStateDefault
				} else {
					m.colStates[m.colCursor] = colStateExpanded
				}
				m.ensureColVisible()
			}

		case key.Matches(msg, tableKeys.Hide):
			if m.colCursor < len(m.colStates) {
				if m.colStates[m.colCursor] == colStateHidden {
					m.colStates[m.colCursor] = colStateDefault
				} else {
					m.colStates[m.colCursor] = colStateHidden
				}
				m.ensureColVisible()
			}

		case key.Matches(msg, tableKeys.YankCell):
			cmd := m.yankCell()
			return m, cmd

		case key.Matches(msg, tableKeys.YankRow):
			cmd := m.yankRow()
			return m, cmd

		case key.Matches(msg, tableKeys.ExportJSON):
			m.exitMode = exitJSON
			return m, tea.Quit

		case key.Matches(msg, tableKeys.ExportRaw):
			m.exitMode = exitRaw
			return m, tea.Quit

		case key.Matches(msg, tableKeys.ExportPlain):
			m.exitMode = exitPlain
			return m, tea.Quit
		}
	}

	return m, nil
}

// nextPageSize cycles through the enumerated page sizes, wrapping after
// the last. An off-list current size restarts the cycle.
func nextPageSize(sizes []int, current int) int {
	for i, n := range sizes {
		if n == current {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return sizes[0]
}

// ═══════════════════════════════════════════════════════════════════════════
// Search
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = tableModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.st.SetSearch("")
		m.cursor = 0
		m.scrollY = 0
		m.recompute()
		return m, nil
	case tea.KeyEnter:
		m.mode = tableModeNormal
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	// Live filter as user types; every change resets to page 1.
	m.st.SetSearch(m.searchInput.Value())
	m.cursor = 0
	m.scrollY = 0
	m.recompute()

	return m, cmd
}

// ═══════════════════════════════════════════════════════════════════════════
// Column Helpers
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) getColDisplayWidth(colIdx int) int {
	if colIdx >= len(m.colStates) {
		return defaultColWidth
	}

	switch m.colStates[colIdx] {
	case colStateExpanded:
		w := m.fullColWidths[colIdx]
		if w < minColWidth {
			w = minColWidth
		}
		return w
	case colStateHidden:
		return hiddenColWidth
	default:
		w := m.fullColWidths[colIdx]
		if w > defaultColWidth {
			w = defaultColWidth
		}
		if w < minColWidth {
			w = minColWidth
		}
		return w
	}
}

func (m tableModel) getColStartX(colIdx int) int {
	x := 0
	for i := 0; i < colIdx && i < len(m.columns); i++ {
		x += m.getColDisplayWidth(i) + 2 // +2 for column separator spacing
	}
	return x
}

func (m tableModel) getColEndX(colIdx int) int {
	return m.getColStartX(colIdx) + m.getColDisplayWidth(colIdx)
}

func (m tableModel) getTotalWidth() int {
	total := 0
	for i := range m.columns {
		total += m.getColDisplayWidth(i) + 2
	}
	return total
}

func (m tableModel) getMaxScrollX() int {
	maxX := m.getTotalWidth() - m.width + 2 // +2 for some padding
	if maxX < 0 {
		return 0
	}
	return maxX
}

// ═══════════════════════════════════════════════════════════════════════════
// Status Message (flash notification)
// ═══════════════════════════════════════════════════════════════════════════

type statusClearMsg struct{}

const statusDuration = 2 * time.Second

// setStatus sets a temporary status message that auto-clears.
func (m *tableModel) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusUntil = time.Now().Add(statusDuration)
	return tea.Tick(statusDuration, func(t time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// ═══════════════════════════════════════════════════════════════════════════
// Clipboard (yank)
// ═══════════════════════════════════════════════════════════════════════════

// yankCell copies the selected cell value to the system clipboard.
func (m *tableModel) yankCell() tea.Cmd {
	if m.cursor >= len(m.view.Visible) {
		return nil
	}
	rec := m.view.Visible[m.cursor]
	var val string
	if m.colCursor < len(m.columns) {
		val = rec.Cell(m.columns[m.colCursor].Field).Format()
	}
	if err := clipboard.WriteAll(val); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	display := val
	if len(display) > 40 {
		display = display[:37] + "..."
	}
	return m.setStatus(fmt.Sprintf("Copied: %s", display))
}

// yankRow copies the entire selected row (tab-separated) to the clipboard.
func (m *tableModel) yankRow() tea.Cmd {
	if m.cursor >= len(m.view.Visible) {
		return nil
	}
	rec := m.view.Visible[m.cursor]
	cells := make([]string, len(m.columns))
	for i, col := range m.columns {
		cells[i] = rec.Cell(col.Field).Format()
	}
	if err := clipboard.WriteAll(strings.Join(cells, "\t")); err != nil {
		return m.setStatus(fmt.Sprintf("clipboard error: %s", err))
	}
	return m.setStatus(fmt.Sprintf("Copied row (%d columns)", len(cells)))
}

// ═══════════════════════════════════════════════════════════════════════════
// ANSI-aware Viewport Slicing
// ═══════════════════════════════════════════════════════════════════════════

// applyViewport extracts a horizontal slice of a string, handling ANSI escape
// codes properly. It returns the portion of the string from visual column
// startX with the given width.
func applyViewport(s string, startX, width int) string {
	if width <= 0 {
		return ""
	}
	if startX < 0 {
		startX = 0
	}

	var result strings.Builder
	result.Grow(width + 64)

	visualPos := 0
	outputChars := 0
	stylesApplied := false
	inEscape := false
	escapeSeq := strings.Builder{}

	var activeStyles []string

	runes := []rune(s)
	i := 0

	for i < len(runes) && outputChars < width {
		r := runes[i]

		if r == '\x1b' && i+1 < len(runes) && runes[i+1] == '[' {
			inEscape = true
			escapeSeq.Reset()
			escapeSeq.WriteRune(r)
			i++
			continue
		}

		if inEscape {
			escapeSeq.WriteRune(r)
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
				seq := escapeSeq.String()

				if r == 'm' {
					if seq == "\x1b[0m" || seq == "\x1b[m" {
						activeStyles = nil
					} else {
						activeStyles = append(activeStyles, seq)
					}
				}

				if visualPos >= startX {
					result.WriteString(seq)
				}
			}
			i++
			continue
		}

		if visualPos >= startX {
			if !stylesApplied && len(activeStyles) > 0 {
				for _, style := range activeStyles {
					result.WriteString(style)
				}
				stylesApplied = true
			}
			result.WriteRune(r)
			outputChars++
		}

		visualPos++
		i++
	}

	if len(activeStyles) > 0 && outputChars > 0 {
		result.WriteString("\x1b[0m")
	}

	if outputChars < width {
		result.WriteString(strings.Repeat(" ", width-outputChars))
	}

	return result.String()
}

// ═══════════════════════════════════════════════════════════════════════════
// Scroll Helpers
// ═══════════════════════════════════════════════════════════════════════════

func (m *tableModel) ensureRowVisible() {
	visibleRows := m.visibleRowCount()
	if visibleRows <= 0 {
		visibleRows = 1
	}
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	} else if m.cursor >= m.scrollY+visibleRows {
		m.scrollY = m.cursor - visibleRows + 1
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
}

func (m *tableModel) ensureColVisible() {
	colStartX := m.getColStartX(m.colCursor)
	colEndX := m.getColEndX(m.colCursor)
	colWidth := colEndX - colStartX
	viewportWidth := m.width - 2

	if colStartX < m.scrollX {
		m.scrollX = colStartX
	} else if colEndX > m.scrollX+viewportWidth {
		if colWidth <= viewportWidth {
			m.scrollX = colEndX - viewportWidth
		} else {
			m.scrollX = colStartX
		}
	}

	maxX := m.getMaxScrollX()
	if m.scrollX < 0 {
		m.scrollX = 0
	} else if m.scrollX > maxX {
		m.scrollX = maxX
	}
}

func (m tableModel) visibleRowCount() int {
	count := m.height - 6 // title + search bar + header + separator + footer
	if count < 1 {
		count = 1
	}
	return count
}

// ═══════════════════════════════════════════════════════════════════════════
// View
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var sb strings.Builder

	// Header with title info
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.Accent)
	if m.st.Search != "" {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s: %d/%d entries, %d columns",
			m.title, m.view.TotalEntries, len(m.records), len(m.columns))))
	} else {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%s: %d entries, %d columns",
			m.title, m.view.TotalEntries, len(m.columns))))
	}

	// Show state indicators for modified columns
	var stateInfo []string
	for i, state := range m.colStates {
		if state == colStateExpanded {
			stateInfo = append(stateInfo, m.columns[i].Title+"+")
		} else if state == colStateHidden {
			stateInfo = append(stateInfo, m.columns[i].Title+"-")
		}
	}
	if len(stateInfo) > 0 {
		sb.WriteString(styles.MutedMsg(fmt.Sprintf("  [%s]", strings.Join(stateInfo, ", "))))
	}
	sb.WriteString("\n")

	// Search bar
	if m.mode == tableModeSearch {
		sb.WriteString(fmt.Sprintf("/%s\n", m.searchInput.View()))
	} else if m.st.Search != "" {
		sb.WriteString(styles.MutedMsg(fmt.Sprintf("filter: %s\n", m.st.Search)))
	} else {
		sb.WriteString("\n")
	}

	sb.WriteString(m.renderTable())

	// Footer
	sb.WriteString("\n")
	sb.WriteString(styles.PageInfoStyle.Render(m.pageSummary()))
	sb.WriteString("\n")
	if m.statusMsg != "" && time.Now().Before(m.statusUntil) {
		sb.WriteString(styles.SuccessMsg(m.statusMsg))
	} else if m.mode == tableModeSearch {
		sb.WriteString(styles.MutedMsg("enter confirm  esc cancel"))
	} else {
		sb.WriteString(styles.MutedMsg("←→ column  enter sort  n/p page  s page size  / search  e expand  H hide  y copy  J json  q quit"))
	}

	return sb.String()
}

// pageSummary is the "Showing X to Y of Z" footer line.
func (m tableModel) pageSummary() string {
	if m.view.TotalEntries == 0 {
		return "No entries to show"
	}
	pages := m.view.PageCount
	if pages < 1 {
		pages = 1
	}
	return fmt.Sprintf("Showing %d to %d of %d entries · page %d/%d · %d per page",
		m.view.FirstIndex+1, m.view.LastIndex, m.view.TotalEntries,
		m.view.Page, pages, m.st.PerPage)
}

// ═══════════════════════════════════════════════════════════════════════════
// Render Table
// ═══════════════════════════════════════════════════════════════════════════

func (m tableModel) renderTable() string {
	var sb strings.Builder

	if len(m.columns) == 0 {
		return "No columns"
	}

	viewportWidth := m.width - 2

	separatorStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	selectedSepStyle := lipgloss.NewStyle().Foreground(styles.Accent)

	headerLine := m.buildFullHeaderLine()
	separatorLine := m.buildFullSeparatorLine(separatorStyle, selectedSepStyle)

	sb.WriteString(applyViewport(headerLine, m.scrollX, viewportWidth))
	sb.WriteString("\n")
	sb.WriteString(applyViewport(separatorLine, m.scrollX, viewportWidth))
	sb.WriteString("\n")

	visibleRows := m.visibleRowCount()
	pageRows := len(m.view.Visible)
	endRow := m.scrollY + visibleRows
	if endRow > pageRows {
		endRow = pageRows
	}

	for rowIdx := m.scrollY; rowIdx < endRow; rowIdx++ {
		rowLine := m.buildFullRowLine(m.view.Visible[rowIdx], rowIdx == m.cursor)
		sb.WriteString(applyViewport(rowLine, m.scrollX, viewportWidth))
		sb.WriteString("\n")
	}

	// Scroll indicators for content outside the viewport
	var indicators []string
	if m.scrollX > 0 {
		indicators = append(indicators, "◀")
	}
	if m.scrollX+viewportWidth < m.getTotalWidth() {
		indicators = append(indicators, "▶")
	}
	if m.scrollY > 0 {
		indicators = append(indicators, "▲")
	}
	if m.scrollY+visibleRows < pageRows {
		indicators = append(indicators, "▼")
	}
	if len(indicators) > 0 {
		sb.WriteString(styles.MutedMsg(strings.Join(indicators, " ")))
	}

	return sb.String()
}

// headerLabel is the column title plus the sort indicator when the
// column is the active sort key.
func (m tableModel) headerLabel(col grid.Column) string {
	if m.st.SortField != "" && col.Field == m.st.SortField {
		return col.Title + " " + styles.SortIndicator(m.st.SortDir == grid.Descending)
	}
	return col.Title
}

func (m tableModel) buildFullHeaderLine() string {
	var sb strings.Builder

	for i, col := range m.columns {
		colWidth := m.getColDisplayWidth(i)

		var displayName string
		if m.colStates[i] == colStateHidden {
			displayName = PadOrTruncate("...", colWidth)
		} else {
			displayName = PadOrTruncate(m.headerLabel(col), colWidth)
		}

		switch {
		case i == m.colCursor:
			sb.WriteString(styles.SortHeaderStyle.Render(displayName))
		case m.st.SortField != "" && col.Field == m.st.SortField:
			sb.WriteString(styles.SortHeaderStyle.Render(displayName))
		default:
			sb.WriteString(styles.HeaderStyle.Render(displayName))
		}
		sb.WriteString("  ")
	}

	return sb.String()
}

func (m tableModel) buildFullSeparatorLine(normalStyle, selectedStyle lipgloss.Style) string {
	var sb strings.Builder

	for i := range m.columns {
		colWidth := m.getColDisplayWidth(i)
		sep := strings.Repeat("─", colWidth)

		if i == m.colCursor {
			sb.WriteString(selectedStyle.Render(sep))
		} else {
			sb.WriteString(normalStyle.Render(sep))
		}
		sb.WriteString("  ")
	}

	return sb.String()
}

func (m tableModel) buildFullRowLine(rec grid.Record, isSelectedRow bool) string {
	var sb strings.Builder

	query := strings.ToLower(m.st.Search)

	for i, col := range m.columns {
		colWidth := m.getColDisplayWidth(i)

		val := rec.Cell(col.Field).Format()

		var displayVal string
		if m.colStates[i] == colStateHidden {
			displayVal = PadOrTruncate("...", colWidth)
		} else {
			displayVal = PadOrTruncate(val, colWidth)
		}

		isSelectedCol := i == m.colCursor
		hasSearchMatch := query != "" && strings.Contains(strings.ToLower(val), query)

		switch {
		case isSelectedRow && isSelectedCol:
			sb.WriteString(styles.SelectedCell.Render(displayVal))
		case isSelectedRow:
			sb.WriteString(styles.SelectedStyle.Render(displayVal))
		case hasSearchMatch:
			sb.WriteString(styles.MatchStyle.Render(displayVal))
		default:
			sb.WriteString(displayVal)
		}
		sb.WriteString("  ")
	}

	return sb.String()
}
