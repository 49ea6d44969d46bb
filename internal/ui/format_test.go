// ABOUTME: Tests for terminal formatting helpers.
// ABOUTME: Checks badges, calendar layout, and stats table contents.

package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/moodlog/internal/models"
)

func TestMoodBadgeContainsEmojiAndLabel(t *testing.T) {
	badge := MoodBadge(models.MoodHappy)
	if !strings.Contains(badge, "😊") || !strings.Contains(badge, "Happy") {
		t.Errorf("badge missing parts: %q", badge)
	}
}

func TestFormatEntryListItem(t *testing.T) {
	entry := models.NewEntry("2026-01-15", "first line\nsecond line", models.MoodSad)
	out := FormatEntryListItem(entry)

	if !strings.Contains(out, "2026-01-15") {
		t.Errorf("missing date: %q", out)
	}
	if !strings.Contains(out, entry.ID.String()[:6]) {
		t.Errorf("missing id prefix: %q", out)
	}
	if strings.Contains(out, "second line") {
		t.Errorf("preview should stop at first line: %q", out)
	}
}

func TestFormatCalendarGrid(t *testing.T) {
	entry := models.NewEntry("2026-02-14", "valentine", models.MoodHappy)
	out := FormatCalendar(2026, time.February, map[string]*models.Entry{
		"2026-02-14": entry,
	})

	if !strings.Contains(out, "February 2026") {
		t.Errorf("missing title: %q", out)
	}
	if !strings.Contains(out, "28") {
		t.Errorf("missing last day of February: %q", out)
	}
	if strings.Contains(out, "29") {
		t.Errorf("2026 February has no day 29: %q", out)
	}
	if !strings.Contains(out, "😊") {
		t.Errorf("missing mood marker: %q", out)
	}
}

func TestFormatMoodStatsListsAllMoods(t *testing.T) {
	stats := models.MoodStats{Happy: 2, Sad: 1, Total: 3}
	out := FormatMoodStats(2026, time.March, stats)

	for _, m := range models.AllMoods {
		if !strings.Contains(out, m.Info().Label) {
			t.Errorf("stats output missing %q: %q", m, out)
		}
	}
	if !strings.Contains(out, "3") {
		t.Errorf("missing total: %q", out)
	}
}

func TestFormatConflictCard(t *testing.T) {
	entry := models.NewEntry("2026-01-15", "already here", models.MoodNeutral)
	out := FormatConflictCard(entry)

	if !strings.Contains(out, "moodlog show") || !strings.Contains(out, "moodlog edit") {
		t.Errorf("conflict card missing next-step commands: %q", out)
	}
}
