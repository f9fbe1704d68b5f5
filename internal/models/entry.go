package models

// JournalEntryModel is a single journal entry owned by one user.
type JournalEntryModel struct {
	Base
	UserID  string `json:"user_id" gorm:"type:char(36);index;not null"`
	Content string `json:"content" gorm:"type:longtext"`
}

func (JournalEntryModel) TableName() string {
	return "journal_entries"
}
