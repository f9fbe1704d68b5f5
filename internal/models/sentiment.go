package models

import "time"

// SentimentRecordModel is a denormalized projection of an analysis, kept
// for cheap time-series queries. One row per entry, updated in place.
type SentimentRecordModel struct {
	Base
	EntryID        string    `json:"entry_id"         gorm:"type:char(36);uniqueIndex;not null"`
	EntryUpdatedAt time.Time `json:"entry_updated_at"`
	Mood           string    `json:"mood"             gorm:"size:100"`
	Color          string    `json:"color"            gorm:"size:7"`
	Score          int       `json:"score"            gorm:"not null"`
}

func (SentimentRecordModel) TableName() string {
	return "sentiment_scores"
}
