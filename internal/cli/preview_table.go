package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/kubera-apps/canoe-capital-activity-export/internal/activity"
)

const (
	clientColWidth = 28
	assetColWidth  = 24
	dateColWidth   = 10
	cashColWidth   = 14
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true)
	tableFooterStyle = lipgloss.NewStyle().Faint(true)
	cursorStyle      = lipgloss.NewStyle().Reverse(true)
)

type previewModel struct {
	title      string
	records    []activity.Record
	scrollY    int // first visible row
	cursorRow  int // selected row index (into records)
	termHeight int
}

func (m previewModel) visibleRows() int {
	// Reserve lines for: title(1) + header(1) + separator(1) + footer(2)
	available := m.termHeight - 5
	if available < 1 {
		return 1
	}
	if available > len(m.records) {
		return len(m.records)
	}
	return available
}

func (m previewModel) maxScrollY() int {
	max := len(m.records) - m.visibleRows()
	if max < 0 {
		return 0
	}
	return max
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termHeight = msg.Height
		m = m.clampScroll()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursorRow < len(m.records)-1 {
				m.cursorRow++
				m = m.ensureCursorVisible()
			}
		case "up", "k":
			if m.cursorRow > 0 {
				m.cursorRow--
				m = m.ensureCursorVisible()
			}
		case "pgdown":
			m.cursorRow += m.visibleRows()
			if m.cursorRow > len(m.records)-1 {
				m.cursorRow = len(m.records) - 1
			}
			m = m.ensureCursorVisible()
		case "pgup":
			m.cursorRow -= m.visibleRows()
			if m.cursorRow < 0 {
				m.cursorRow = 0
			}
			m = m.ensureCursorVisible()
		case "g", "home":
			m.cursorRow = 0
			m = m.ensureCursorVisible()
		case "G", "end":
			m.cursorRow = len(m.records) - 1
			m = m.ensureCursorVisible()
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	return renderActivityTable(m.title, m.records, m.scrollY, m.visibleRows(), m.cursorRow, true)
}

// ensureCursorVisible adjusts scroll so the cursor is within the visible viewport.
func (m previewModel) ensureCursorVisible() previewModel {
	if m.cursorRow < m.scrollY {
		m.scrollY = m.cursorRow
	}
	if m.cursorRow >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursorRow - m.visibleRows() + 1
	}
	return m.clampScroll()
}

func (m previewModel) clampScroll() previewModel {
	if m.scrollY > m.maxScrollY() {
		m.scrollY = m.maxScrollY()
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

// renderActivityTable produces the table string. With interactive=false it
// renders every row and no cursor, for non-TTY output.
func renderActivityTable(title string, records []activity.Record, scrollY, visibleRows, cursorRow int, interactive bool) string {
	var b strings.Builder

	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("--- %s: %d activity records ---", title, len(records))))
	b.WriteString("\n")

	b.WriteString(tableHeaderStyle.Render(padRight("Client", clientColWidth)))
	b.WriteString(" | ")
	b.WriteString(tableHeaderStyle.Render(padRight("Asset", assetColWidth)))
	b.WriteString(" | ")
	b.WriteString(tableHeaderStyle.Render(padRight("Date", dateColWidth)))
	b.WriteString(" | ")
	b.WriteString(tableHeaderStyle.Render(padLeft("Cash In", cashColWidth)))
	b.WriteString(" | ")
	b.WriteString(tableHeaderStyle.Render(padLeft("Cash Out", cashColWidth)))
	b.WriteString("\n")

	b.WriteString(strings.Repeat("-", clientColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", assetColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", dateColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", cashColWidth))
	b.WriteString("-+-")
	b.WriteString(strings.Repeat("-", cashColWidth))
	b.WriteString("\n")

	endRow := scrollY + visibleRows
	if endRow > len(records) {
		endRow = len(records)
	}
	for rowIdx := scrollY; rowIdx < endRow; rowIdx++ {
		r := records[rowIdx]
		line := padRight(truncateCell(r.ClientNameOrEmail, clientColWidth), clientColWidth) +
			" | " + padRight(truncateCell(r.AssetName, assetColWidth), assetColWidth) +
			" | " + padRight(r.Date, dateColWidth) +
			" | " + padLeft(activity.FormatAmount(r.CashIn), cashColWidth) +
			" | " + padLeft(activity.FormatAmount(r.CashOut), cashColWidth)
		if interactive && rowIdx == cursorRow {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if interactive {
		b.WriteString("\n")
		b.WriteString(tableFooterStyle.Render("up/down scroll - q quit"))
		b.WriteString("\n")
	}

	return b.String()
}

func truncateCell(s string, width int) string {
	if len(s) > width {
		return s[:width-3] + "..."
	}
	return s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func runPreviewTable(cmd *cobra.Command, title string, records []activity.Record) error {
	out := cmd.OutOrStdout()

	// Non-TTY fallback: print static table
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		return printStaticActivityTable(out, title, records)
	}

	m := previewModel{
		title:      title,
		records:    records,
		termHeight: 40,
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out))
	_, err := p.Run()
	return err
}

func printStaticActivityTable(w io.Writer, title string, records []activity.Record) error {
	_, err := fmt.Fprint(w, renderActivityTable(title, records, 0, len(records), -1, false))
	return err
}
