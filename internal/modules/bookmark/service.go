package bookmark

import (
	"errors"
	"strings"

	mysqlDriver "github.com/go-sql-driver/mysql"
	"github.com/mood-journal/core/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when removing a bookmark that does not exist.
	ErrNotFound = errors.New("bookmark not found")
	// ErrEntryNotFound is returned when the target entry is absent or owned
	// by someone else. The two cases are deliberately indistinguishable.
	ErrEntryNotFound = errors.New("entry not found")
)

// Service manages the per-user bookmark set.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Add bookmarks an entry for its owner. Adding twice is not an error: the
// existing bookmark is returned with created=false.
func (s *Service) Add(userID, entryID string) (*models.BookmarkModel, bool, error) {
	var count int64
	err := s.db.Model(&models.JournalEntryModel{}).
		Where("id = ? AND user_id = ?", entryID, userID).
		Count(&count).Error
	if err != nil {
		return nil, false, err
	}
	if count == 0 {
		return nil, false, ErrEntryNotFound
	}

	var existing models.BookmarkModel
	err = s.db.Where("user_id = ? AND entry_id = ?", userID, entryID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	bookmark := models.BookmarkModel{UserID: userID, EntryID: entryID}
	if err := s.db.Create(&bookmark).Error; err != nil {
		// Concurrent add can land on the unique index between the
		// lookup and the insert; treat it as the idempotent case.
		if isDuplicateBookmarkError(err) {
			if err := s.db.Where("user_id = ? AND entry_id = ?", userID, entryID).First(&existing).Error; err == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &bookmark, true, nil
}

func isDuplicateBookmarkError(err error) bool {
	var mysqlErr *mysqlDriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}

// Remove deletes a bookmark. Hard delete, so the pair can be bookmarked
// again later.
func (s *Service) Remove(userID, entryID string) error {
	result := s.db.Unscoped().
		Where("user_id = ? AND entry_id = ?", userID, entryID).
		Delete(&models.BookmarkModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BookmarkedEntry pairs a bookmark with its entry and optional analysis.
type BookmarkedEntry struct {
	Bookmark models.BookmarkModel
	Entry    models.JournalEntryModel
	Analysis *models.AnalysisModel
}

// ListForUser returns the user's bookmarked entries, most recently
// bookmarked first, with mood decoration.
func (s *Service) ListForUser(userID string) ([]BookmarkedEntry, error) {
	var bookmarks []models.BookmarkModel
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return []BookmarkedEntry{}, nil
	}

	entryIDs := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		entryIDs = append(entryIDs, b.EntryID)
	}

	var entries []models.JournalEntryModel
	if err := s.db.Where("id IN ?", entryIDs).Find(&entries).Error; err != nil {
		return nil, err
	}
	entryByID := make(map[string]models.JournalEntryModel, len(entries))
	for _, entry := range entries {
		entryByID[entry.ID] = entry
	}

	var analyses []models.AnalysisModel
	if err := s.db.Where("entry_id IN ?", entryIDs).Find(&analyses).Error; err != nil {
		return nil, err
	}
	analysisByEntry := make(map[string]models.AnalysisModel, len(analyses))
	for _, analysis := range analyses {
		analysisByEntry[analysis.EntryID] = analysis
	}

	out := make([]BookmarkedEntry, 0, len(bookmarks))
	for _, b := range bookmarks {
		entry, ok := entryByID[b.EntryID]
		if !ok {
			// Entry was deleted after bookmarking; skip the orphan.
			continue
		}
		item := BookmarkedEntry{Bookmark: b, Entry: entry}
		if analysis, ok := analysisByEntry[b.EntryID]; ok {
			a := analysis
			item.Analysis = &a
		}
		out = append(out, item)
	}
	return out, nil
}

// EntryIDSet returns the set of entry IDs the user has bookmarked, for
// cheap list decoration.
func (s *Service) EntryIDSet(userID string) (map[string]struct{}, error) {
	var bookmarks []models.BookmarkModel
	err := s.db.Select("entry_id").Where("user_id = ?", userID).Find(&bookmarks).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(bookmarks))
	for _, b := range bookmarks {
		set[b.EntryID] = struct{}{}
	}
	return set, nil
}
