package journal

import (
	"time"

	"github.com/mood-journal/core/internal/models"
)

// ComputeStreak counts consecutive calendar days of journal activity, walking
// entries from most recent to oldest by modification time. Several entries on
// the same day count once; a gap of more than one day ends the streak.
func ComputeStreak(entries []models.JournalEntryModel) int {
	if len(entries) == 0 {
		return 0
	}

	streak := 1
	cursor := dayOf(entries[0].UpdatedAt)
	for _, entry := range entries[1:] {
		day := dayOf(entry.UpdatedAt)
		switch daysBetween(day, cursor) {
		case 0:
			continue
		case 1:
			streak++
			cursor = day
		default:
			return streak
		}
	}
	return streak
}

// dayOf collapses a timestamp to its local calendar date, normalized to UTC
// midnight so day arithmetic is immune to DST.
func dayOf(t time.Time) time.Time {
	local := t.Local()
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
