package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/braidkit/braidkit/pkg/braid"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// recordListModel is the bubbletea model behind "list --interactive".
// It shows the enumeration as a scrollable table of braid words.
type recordListModel struct {
	genus   int
	records []braid.Record
	cursor  int
	height  int
	offset  int
}

// newRecordListModel creates a table model over an enumeration result.
func newRecordListModel(genus int, records []braid.Record) recordListModel {
	return recordListModel{
		genus:   genus,
		records: records,
		height:  15,
	}
}

func (m recordListModel) Init() tea.Cmd {
	return nil
}

func (m recordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "g", "home":
			m.cursor = 0
			m.offset = 0
		case "G", "end":
			m.cursor = len(m.records) - 1
			if m.cursor >= m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m recordListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Genus %d · %d braid words", m.genus, len(m.records))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.records) {
		end = len(m.records)
	}

	rows := [][]string{}
	for i := m.offset; i < end; i++ {
		r := m.records[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}

		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", r.Index),
			r.Word.String(),
			fmt.Sprintf("%d", len(r.Word)),
			fmt.Sprintf("%d", r.Word.Strands()),
			r.Code.String(),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Word", "Crossings", "Strands", "DT code").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.offset + row
			if actualIdx >= len(m.records) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if col == 3 || col == 4 {
				base = base.Foreground(colorDim)
			}
			if actualIdx == m.cursor {
				if col == 2 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			if col == 2 {
				return base.Foreground(colorWhite)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.records))))

	return b.String()
}
