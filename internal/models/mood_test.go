// ABOUTME: Tests for mood parsing and validation.
// ABOUTME: Covers the closed five-category set and rejection of outsiders.

package models

import (
	"errors"
	"testing"
)

func TestParseMoodValid(t *testing.T) {
	for _, m := range AllMoods {
		got, err := ParseMood(string(m))
		if err != nil {
			t.Fatalf("ParseMood(%q) returned error: %v", m, err)
		}
		if got != m {
			t.Errorf("ParseMood(%q) = %q", m, got)
		}
	}
}

func TestParseMoodNormalizes(t *testing.T) {
	got, err := ParseMood("  Happy ")
	if err != nil {
		t.Fatalf("ParseMood returned error: %v", err)
	}
	if got != MoodHappy {
		t.Errorf("expected happy, got %q", got)
	}
}

func TestParseMoodInvalid(t *testing.T) {
	for _, s := range []string{"", "joyful", "HAPPINESS", "neutral-ish"} {
		if _, err := ParseMood(s); !errors.Is(err, ErrInvalidMood) {
			t.Errorf("ParseMood(%q) expected ErrInvalidMood, got %v", s, err)
		}
	}
}

func TestMoodInfoCoversAll(t *testing.T) {
	for _, m := range AllMoods {
		info := m.Info()
		if info.Emoji == "" || info.Label == "" || info.Color == "" {
			t.Errorf("mood %q has incomplete info: %+v", m, info)
		}
	}
}
