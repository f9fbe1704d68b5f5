package models

// AnalysisModel is the AI annotation attached to a journal entry.
// At most one row per entry; re-annotation replaces it in place.
type AnalysisModel struct {
	Base
	EntryID        string `json:"entry_id"        gorm:"type:char(36);uniqueIndex;not null"`
	Mood           string `json:"mood"            gorm:"size:100;not null"`
	Subject        string `json:"subject"         gorm:"size:255;not null"`
	Summary        string `json:"summary"         gorm:"type:text;not null"`
	Color          string `json:"color"           gorm:"size:7;not null"`
	Negative       bool   `json:"negative"`
	SentimentScore int    `json:"sentiment_score" gorm:"not null"`
}

func (AnalysisModel) TableName() string {
	return "journal_analyses"
}
