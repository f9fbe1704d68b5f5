package journal

import (
	"testing"
	"time"

	"github.com/mood-journal/core/internal/models"
)

func entriesUpdatedAt(times ...time.Time) []models.JournalEntryModel {
	entries := make([]models.JournalEntryModel, 0, len(times))
	for _, ts := range times {
		e := models.JournalEntryModel{}
		e.UpdatedAt = ts
		entries = append(entries, e)
	}
	return entries
}

func day(yearMonthDay ...int) time.Time {
	return time.Date(yearMonthDay[0], time.Month(yearMonthDay[1]), yearMonthDay[2], 15, 30, 0, 0, time.Local)
}

func TestComputeStreak(t *testing.T) {
	t.Run("empty is zero", func(t *testing.T) {
		if got := ComputeStreak(nil); got != 0 {
			t.Fatalf("streak = %d, want 0", got)
		}
	})

	t.Run("single entry", func(t *testing.T) {
		if got := ComputeStreak(entriesUpdatedAt(day(2026, 8, 5))); got != 1 {
			t.Fatalf("streak = %d, want 1", got)
		}
	})

	t.Run("consecutive days with same-day repeats", func(t *testing.T) {
		// 05, 04, 04, 03, then a jump to 01: streak is 3 (05, 04, 03).
		entries := entriesUpdatedAt(
			day(2026, 8, 5),
			day(2026, 8, 4),
			day(2026, 8, 4),
			day(2026, 8, 3),
			day(2026, 8, 1),
		)
		if got := ComputeStreak(entries); got != 3 {
			t.Fatalf("streak = %d, want 3", got)
		}
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		entries := entriesUpdatedAt(
			day(2026, 8, 10),
			day(2026, 8, 7),
			day(2026, 8, 6),
		)
		if got := ComputeStreak(entries); got != 1 {
			t.Fatalf("streak = %d, want 1", got)
		}
	})

	t.Run("all entries on one day", func(t *testing.T) {
		entries := entriesUpdatedAt(
			day(2026, 8, 5),
			day(2026, 8, 5),
			day(2026, 8, 5),
		)
		if got := ComputeStreak(entries); got != 1 {
			t.Fatalf("streak = %d, want 1", got)
		}
	})

	t.Run("spans a month boundary", func(t *testing.T) {
		entries := entriesUpdatedAt(
			day(2026, 9, 1),
			day(2026, 8, 31),
			day(2026, 8, 30),
		)
		if got := ComputeStreak(entries); got != 3 {
			t.Fatalf("streak = %d, want 3", got)
		}
	})

	t.Run("different times on adjacent days still count", func(t *testing.T) {
		entries := []models.JournalEntryModel{}
		late := time.Date(2026, 8, 5, 23, 59, 0, 0, time.Local)
		early := time.Date(2026, 8, 4, 0, 1, 0, 0, time.Local)
		for _, ts := range []time.Time{late, early} {
			e := models.JournalEntryModel{}
			e.UpdatedAt = ts
			entries = append(entries, e)
		}
		if got := ComputeStreak(entries); got != 2 {
			t.Fatalf("streak = %d, want 2", got)
		}
	})
}
