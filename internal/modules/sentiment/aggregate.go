package sentiment

import (
	"math"

	"github.com/mood-journal/core/internal/models"
)

// Stats summarizes a set of sentiment records. Pointer fields are nil when
// the set is empty so JSON consumers get null, not a fake zero.
type Stats struct {
	Total          int      `json:"total"`
	Average        *float64 `json:"average"`
	Highest        *int     `json:"highest"`
	Lowest         *int     `json:"lowest"`
	MostCommonMood *string  `json:"mostCommonMood"`
}

// DateRange is the creation-time span of a record set. "N/A" when empty.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

const dateRangeSentinel = "N/A"

// Average returns the mean score rounded to two decimals, nil on empty input.
func Average(records []models.SentimentRecordModel) *float64 {
	if len(records) == 0 {
		return nil
	}
	sum := 0
	for _, r := range records {
		sum += r.Score
	}
	avg := math.Round(float64(sum)/float64(len(records))*100) / 100
	return &avg
}

// Extremes returns the highest and lowest scores, nil on empty input.
func Extremes(records []models.SentimentRecordModel) (highest, lowest *int) {
	if len(records) == 0 {
		return nil, nil
	}
	hi, lo := records[0].Score, records[0].Score
	for _, r := range records[1:] {
		if r.Score > hi {
			hi = r.Score
		}
		if r.Score < lo {
			lo = r.Score
		}
	}
	return &hi, &lo
}

// MostCommonMood returns the mood label with the highest count. Ties go to
// the label that reached the max first in slice order, so callers should pass
// creation-ordered records for a stable answer.
func MostCommonMood(records []models.SentimentRecordModel) *string {
	if len(records) == 0 {
		return nil
	}
	counts := make(map[string]int, len(records))
	best := records[0].Mood
	bestCount := 0
	for _, r := range records {
		counts[r.Mood]++
		if counts[r.Mood] > bestCount {
			best = r.Mood
			bestCount = counts[r.Mood]
		}
	}
	return &best
}

// ComputeDateRange formats the first and last creation timestamps of a
// creation-ordered record set.
func ComputeDateRange(records []models.SentimentRecordModel) DateRange {
	if len(records) == 0 {
		return DateRange{Start: dateRangeSentinel, End: dateRangeSentinel}
	}
	return DateRange{
		Start: records[0].CreatedAt.Format("Jan 2, 2006"),
		End:   records[len(records)-1].CreatedAt.Format("Jan 2, 2006"),
	}
}

// ComputeStats aggregates a record set into the stats block.
func ComputeStats(records []models.SentimentRecordModel) Stats {
	highest, lowest := Extremes(records)
	return Stats{
		Total:          len(records),
		Average:        Average(records),
		Highest:        highest,
		Lowest:         lowest,
		MostCommonMood: MostCommonMood(records),
	}
}
