// Package render draws solve reports for the terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"lp-solver/domain"
)

const optimalMark = "★"

// Report renders the problem, the vertex table and the summary.
func Report(r domain.Report, theme Theme, precision int) string {
	var b strings.Builder

	title := "Linear program"
	if r.Name != "" {
		title += ": " + r.Name
	}
	b.WriteString(theme.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(problemText(r)))
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Render("Status: " + string(r.Status)))
	b.WriteString("\n")

	if len(r.Rows) > 0 {
		b.WriteString(Table(r.Rows, theme, precision))
		b.WriteString("\n")
	}

	b.WriteString(theme.Card.Render(r.Summary))
	b.WriteString("\n")
	return b.String()
}

// Table renders one row per vertex. The optimal row is highlighted and marked.
func Table(rows []domain.ReportRow, theme Theme, precision int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Border).
		Headers("#", "x1", "x2", "Z", "").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			if row >= 0 && row < len(rows) && rows[row].IsOptimal {
				return theme.Optimal
			}
			return theme.Cell
		})

	for _, r := range rows {
		mark := ""
		if r.IsOptimal {
			mark = optimalMark
		}
		t.Row(
			"P"+strconv.Itoa(r.Index),
			formatFloat(r.X1, precision),
			formatFloat(r.X2, precision),
			formatFloat(r.Z, precision),
			mark,
		)
	}
	return t.Render()
}

func problemText(r domain.Report) string {
	lines := make([]string, 0, len(r.Constraints)+2)
	if r.Objective != nil {
		lines = append(lines, r.Objective.String())
	} else {
		lines = append(lines, "no objective")
	}
	if len(r.Constraints) > 0 {
		lines = append(lines, "subject to")
	}
	for _, c := range r.Constraints {
		lines = append(lines, "  "+c.String())
	}
	return strings.Join(lines, "\n")
}

func formatFloat(v float64, precision int) string {
	if precision < 0 {
		precision = 2
	}
	return fmt.Sprintf("%.*f", precision, v)
}
