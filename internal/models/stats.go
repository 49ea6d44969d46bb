// ABOUTME: MoodStats derived view counting entries per mood for one month.
// ABOUTME: Never persisted; every category is always present, zero-filled.

package models

// MoodStats holds per-category counts plus the total for a (year, month).
type MoodStats struct {
	Happy   int
	Sad     int
	Angry   int
	Anxious int
	Neutral int
	Total   int
}

// Count returns the tally for one mood.
func (s MoodStats) Count(m Mood) int {
	switch m {
	case MoodHappy:
		return s.Happy
	case MoodSad:
		return s.Sad
	case MoodAngry:
		return s.Angry
	case MoodAnxious:
		return s.Anxious
	case MoodNeutral:
		return s.Neutral
	}
	return 0
}

// Add increments the tally for one mood and the total.
func (s *MoodStats) Add(m Mood) {
	switch m {
	case MoodHappy:
		s.Happy++
	case MoodSad:
		s.Sad++
	case MoodAngry:
		s.Angry++
	case MoodAnxious:
		s.Anxious++
	case MoodNeutral:
		s.Neutral++
	default:
		return
	}
	s.Total++
}
