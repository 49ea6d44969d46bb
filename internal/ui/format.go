// ABOUTME: Terminal formatting for moodlog output.
// ABOUTME: Uses glamour for content, fatih/color for styling, go-pretty for stats.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/moodlog/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// MoodBadge renders a mood as emoji plus label.
func MoodBadge(m models.Mood) string {
	info := m.Info()
	return fmt.Sprintf("%s %s", info.Emoji, yellow(info.Label))
}

func FormatEntryListItem(entry *models.Entry) string {
	var sb strings.Builder

	idPrefix := entry.ID.String()[:6]
	sb.WriteString(fmt.Sprintf("  %s  %s  %s\n", faint(idPrefix), bold(entry.Date), MoodBadge(entry.Mood)))

	preview := firstLine(entry.Content)
	if preview != "" {
		sb.WriteString(fmt.Sprintf("         %s\n", faint(preview)))
	}
	return sb.String()
}

func firstLine(content string) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	runes := []rune(line)
	if len(runes) > 60 {
		line = string(runes[:60]) + "…"
	}
	return line
}

func FormatEntryHeader(entry *models.Entry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s  %s\n", bold(entry.Date), MoodBadge(entry.Mood)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(entry.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(entry.CreatedAt.Format("2006-01-02 15:04"))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(entry.UpdatedAt.Format("2006-01-02 15:04"))))
	sb.WriteString(Separator())
	return sb.String()
}

func FormatEntryContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

// FormatConflictCard shows the existing entry blocking a date, with the
// commands that manage it instead.
func FormatConflictCard(entry *models.Entry) string {
	var sb strings.Builder

	idPrefix := entry.ID.String()[:6]
	sb.WriteString(fmt.Sprintf("%s an entry already exists for %s\n", yellow("!"), bold(entry.Date)))
	sb.WriteString(fmt.Sprintf("  %s  %s\n", MoodBadge(entry.Mood), faint(firstLine(entry.Content))))
	sb.WriteString(faint(fmt.Sprintf("  view it:  moodlog show %s\n", idPrefix)))
	sb.WriteString(faint(fmt.Sprintf("  edit it:  moodlog edit %s\n", idPrefix)))
	return sb.String()
}

// FormatCalendar renders a month grid with one mood emoji per journaled day.
func FormatCalendar(year int, month time.Month, byDate map[string]*models.Entry) string {
	var sb strings.Builder

	sb.WriteString(bold(fmt.Sprintf("%s %d\n", month, year)))
	sb.WriteString(faint(" Su  Mo  Tu  We  Th  Fr  Sa\n"))

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	col := int(first.Weekday())
	sb.WriteString(strings.Repeat("    ", col))

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		if entry, ok := byDate[date]; ok {
			sb.WriteString(fmt.Sprintf(" %2d%s", day, entry.Mood.Info().Emoji))
		} else {
			sb.WriteString(fmt.Sprintf(" %2d ", day))
		}
		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatMoodStats renders the monthly histogram as a table with bars.
func FormatMoodStats(year int, month time.Month, stats models.MoodStats) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s %d — %d entries", month, year, stats.Total))
	t.AppendHeader(table.Row{"Mood", "Count", ""})

	for _, m := range models.AllMoods {
		count := stats.Count(m)
		info := m.Info()
		t.AppendRow(table.Row{
			fmt.Sprintf("%s %s", info.Emoji, info.Label),
			count,
			strings.Repeat("█", count),
		})
	}
	t.AppendFooter(table.Row{"Total", stats.Total, ""})

	return t.Render() + "\n"
}

// FormatLoadProgress renders one line of model-load progress.
func FormatLoadProgress(percent int, text string) string {
	return fmt.Sprintf("\r%s %3d%% %s", cyan("⟳"), percent, faint(text))
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Warn(msg string) string {
	return yellow("! ") + msg
}
