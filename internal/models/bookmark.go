package models

// BookmarkModel marks a journal entry as bookmarked by its owner.
// Removal is a hard delete so the pair can be bookmarked again without
// tripping the unique index.
type BookmarkModel struct {
	Base
	UserID  string `json:"user_id"  gorm:"type:char(36);uniqueIndex:idx_bookmarks_user_entry;not null"`
	EntryID string `json:"entry_id" gorm:"type:char(36);uniqueIndex:idx_bookmarks_user_entry;not null"`
}

func (BookmarkModel) TableName() string {
	return "bookmarks"
}
