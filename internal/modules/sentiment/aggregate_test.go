package sentiment

import (
	"testing"
	"time"

	"github.com/mood-journal/core/internal/models"
)

func recordsWithScores(scores ...int) []models.SentimentRecordModel {
	records := make([]models.SentimentRecordModel, 0, len(scores))
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range scores {
		r := models.SentimentRecordModel{Score: score, Mood: "neutral"}
		r.CreatedAt = base.AddDate(0, 0, i)
		records = append(records, r)
	}
	return records
}

func TestAverage(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		if avg := Average(nil); avg != nil {
			t.Fatalf("avg = %v, want nil", *avg)
		}
	})

	t.Run("single record", func(t *testing.T) {
		avg := Average(recordsWithScores(5))
		if avg == nil || *avg != 5 {
			t.Fatalf("avg = %v, want 5", avg)
		}
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		avg := Average(recordsWithScores(1, 2, 2))
		if avg == nil || *avg != 1.67 {
			t.Fatalf("avg = %v, want 1.67", avg)
		}
	})

	t.Run("negative scores", func(t *testing.T) {
		avg := Average(recordsWithScores(-3, -4))
		if avg == nil || *avg != -3.5 {
			t.Fatalf("avg = %v, want -3.5", avg)
		}
	})
}

func TestExtremes(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		hi, lo := Extremes(nil)
		if hi != nil || lo != nil {
			t.Fatal("expected nil extremes for empty input")
		}
	})

	t.Run("mixed scores", func(t *testing.T) {
		hi, lo := Extremes(recordsWithScores(2, -7, 9, 0))
		if hi == nil || *hi != 9 {
			t.Errorf("highest = %v, want 9", hi)
		}
		if lo == nil || *lo != -7 {
			t.Errorf("lowest = %v, want -7", lo)
		}
	})
}

func TestMostCommonMood(t *testing.T) {
	t.Run("empty is nil", func(t *testing.T) {
		if mood := MostCommonMood(nil); mood != nil {
			t.Fatalf("mood = %v, want nil", *mood)
		}
	})

	t.Run("clear winner", func(t *testing.T) {
		records := recordsWithScores(1, 2, 3)
		records[0].Mood = "happy"
		records[1].Mood = "happy"
		records[2].Mood = "sad"
		mood := MostCommonMood(records)
		if mood == nil || *mood != "happy" {
			t.Fatalf("mood = %v, want happy", mood)
		}
	})

	t.Run("tie goes to first to reach the max", func(t *testing.T) {
		records := recordsWithScores(1, 2, 3, 4)
		records[0].Mood = "calm"
		records[1].Mood = "tense"
		records[2].Mood = "calm"
		records[3].Mood = "tense"
		mood := MostCommonMood(records)
		if mood == nil || *mood != "calm" {
			t.Fatalf("mood = %v, want calm", mood)
		}
	})
}

func TestComputeDateRange(t *testing.T) {
	t.Run("empty uses sentinel", func(t *testing.T) {
		dr := ComputeDateRange(nil)
		if dr.Start != "N/A" || dr.End != "N/A" {
			t.Fatalf("range = %+v", dr)
		}
	})

	t.Run("ordered records", func(t *testing.T) {
		dr := ComputeDateRange(recordsWithScores(1, 2, 3))
		if dr.Start != "Aug 1, 2026" {
			t.Errorf("start = %q", dr.Start)
		}
		if dr.End != "Aug 3, 2026" {
			t.Errorf("end = %q", dr.End)
		}
	})
}

func TestComputeStats(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		stats := ComputeStats(nil)
		if stats.Total != 0 {
			t.Errorf("total = %d", stats.Total)
		}
		if stats.Average != nil || stats.Highest != nil || stats.Lowest != nil || stats.MostCommonMood != nil {
			t.Error("expected all nil aggregates for empty set")
		}
	})

	t.Run("populated set", func(t *testing.T) {
		records := recordsWithScores(7, -2, 7)
		records[0].Mood = "happy"
		records[1].Mood = "down"
		records[2].Mood = "happy"
		stats := ComputeStats(records)
		if stats.Total != 3 {
			t.Errorf("total = %d", stats.Total)
		}
		if stats.Average == nil || *stats.Average != 4 {
			t.Errorf("average = %v", stats.Average)
		}
		if stats.Highest == nil || *stats.Highest != 7 || stats.Lowest == nil || *stats.Lowest != -2 {
			t.Errorf("extremes = %v/%v", stats.Highest, stats.Lowest)
		}
		if stats.MostCommonMood == nil || *stats.MostCommonMood != "happy" {
			t.Errorf("mood = %v", stats.MostCommonMood)
		}
	})
}
