// ABOUTME: Mood type representing the closed set of five emotional categories.
// ABOUTME: Provides parsing, validation, and presentation metadata.

package models

import (
	"errors"
	"fmt"
	"strings"
)

// Mood is one of exactly five emotional categories attached to an entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAngry   Mood = "angry"
	MoodAnxious Mood = "anxious"
	MoodNeutral Mood = "neutral"
)

// DefaultMood is the category used whenever classification is unavailable
// or degrades. Mood tagging is advisory, so falling back is always safe.
const DefaultMood = MoodNeutral

var ErrInvalidMood = errors.New("invalid mood")

// AllMoods lists every valid mood in display order.
var AllMoods = []Mood{MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodNeutral}

// ParseMood converts a string into a Mood, case-insensitively.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMood, s)
	}
	return m, nil
}

// Valid reports whether the mood is one of the five categories.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodNeutral:
		return true
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}

// MoodInfo carries presentation metadata for a mood.
type MoodInfo struct {
	Emoji string
	Label string
	Color string
}

var moodInfo = map[Mood]MoodInfo{
	MoodHappy:   {Emoji: "😊", Label: "Happy", Color: "#FFD93D"},
	MoodSad:     {Emoji: "😢", Label: "Sad", Color: "#6BCB77"},
	MoodAngry:   {Emoji: "😠", Label: "Angry", Color: "#FF6B6B"},
	MoodAnxious: {Emoji: "😰", Label: "Anxious", Color: "#9B59B6"},
	MoodNeutral: {Emoji: "😐", Label: "Neutral", Color: "#A0A0A0"},
}

// Info returns presentation metadata. Unknown moods get the neutral entry.
func (m Mood) Info() MoodInfo {
	if info, ok := moodInfo[m]; ok {
		return info
	}
	return moodInfo[MoodNeutral]
}
