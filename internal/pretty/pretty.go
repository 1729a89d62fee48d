// Package pretty renders solver results as styled terminal blocks.
package pretty

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"advent-core/dial"
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Label  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(8)
	Result = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Frame  = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("204")).
		Padding(0, 1)

	Header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	Cell   = lipgloss.NewStyle().Padding(0, 1)
	Hit    = Cell.Foreground(lipgloss.Color("9")) // Bright red
)

// Summary is the data shown on an answer card.
type Summary struct {
	Puzzle string
	Part   string
	Input  string
	Answer uint64
}

// Card renders s inside a rounded frame.
func Card(s Summary) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		Title.Render(fmt.Sprintf("%s · part %s", s.Puzzle, s.Part)),
		Label.Render("input")+s.Input,
		Label.Render("answer")+Result.Render(strconv.FormatUint(s.Answer, 10)),
	)
	return Frame.Render(body)
}

// MoveTable renders one row per dial move; rows that scored are highlighted.
func MoveTable(moves []dial.Move) string {
	rows := make([][]string, 0, len(moves))
	for _, m := range moves {
		rows = append(rows, []string{
			strconv.Itoa(m.Index + 1),
			m.Instruction.String(),
			strconv.FormatUint(uint64(m.From), 10),
			strconv.FormatUint(uint64(m.To), 10),
			strconv.FormatUint(uint64(m.Count), 10),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers("#", "MOVE", "FROM", "TO", "COUNT").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Header
			case row >= 0 && row < len(moves) && moves[row].Count > 0:
				return Hit
			}
			return Cell
		})
	return t.Render()
}
