package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/inayah-hub/DASHBOARDS/internal/dashboard"
	"github.com/inayah-hub/DASHBOARDS/internal/projects/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)

	toneColors = map[string]lipgloss.Color{
		dashboard.ToneCompleted:  lipgloss.Color("42"),
		dashboard.ToneInProgress: lipgloss.Color("33"),
		dashboard.ToneOnHold:     lipgloss.Color("220"),
	}
)

func renderProjects(projects []domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.ProjectNo,
			p.ClientName,
			p.Media,
			p.Status,
			p.CreatedAt.Local().Format("Jan 2, 2006"),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "PROJECT", "CLIENT", "MEDIA", "STATUS", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 && row >= 0 && row < len(projects) {
				if c, ok := toneColors[dashboard.StatusTone(projects[row].Status)]; ok {
					return cellStyle.Foreground(c)
				}
			}
			return cellStyle
		})

	return t.Render()
}

func renderSummary(s dashboard.Summary) string {
	var b strings.Builder

	kpis := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("TOTAL CLIENTS", "ACTIVE PROJECTS", "PROJECTS COMPLETED").
		Row(strconv.Itoa(s.TotalClients), strconv.Itoa(s.ActiveProjects), strconv.Itoa(s.CompletedProjects)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	b.WriteString(kpis.Render())

	b.WriteString("\n" + titleStyle.Render("Media Distribution") + "\n")
	b.WriteString(renderDistribution(s.MediaDistribution, s.TotalProjects))

	b.WriteString("\n" + titleStyle.Render("Project Status") + "\n")
	b.WriteString(renderDistribution(s.StatusDistribution, s.TotalProjects))

	return b.String()
}

// renderDistribution draws one bar per slice, scaled to the largest slice.
func renderDistribution(slices []dashboard.Slice, total int) string {
	if len(slices) == 0 || total == 0 {
		return "No data available\n"
	}

	const width = 30
	longest, peak := 0, 0
	for _, s := range slices {
		longest = max(longest, len(s.Name))
		peak = max(peak, s.Value)
	}

	var b strings.Builder
	for _, s := range slices {
		bar := strings.Repeat("█", s.Value*width/peak)
		fmt.Fprintf(&b, "%-*s %s %d (%d%%)\n", longest, s.Name, bar, s.Value, s.Value*100/total)
	}
	return b.String()
}
