package export

import (
	"time"

	"github.com/mood-journal/core/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ArchiveEntry is a single journal entry in the export archive, with its
// analysis inlined when one exists.
type ArchiveEntry struct {
	ID       string                `json:"id"`
	Created  time.Time             `json:"created"`
	Modified time.Time             `json:"modified"`
	Content  string                `json:"content"`
	Analysis *models.AnalysisModel `json:"analysis,omitempty"`
}

// Archive is the full JSON export of a user's journal.
type Archive struct {
	ExportedAt time.Time      `json:"exportedAt"`
	Total      int            `json:"total"`
	Entries    []ArchiveEntry `json:"entries"`
}

// Service builds journal export archives.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger.Named("ExportService")}
}

// BuildArchive collects every live entry of the user, newest first, with
// analyses attached.
func (s *Service) BuildArchive(userID string) (*Archive, error) {
	var entries []models.JournalEntryModel
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	archive := &Archive{
		ExportedAt: time.Now(),
		Total:      len(entries),
		Entries:    make([]ArchiveEntry, 0, len(entries)),
	}
	if len(entries) == 0 {
		return archive, nil
	}

	entryIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryIDs = append(entryIDs, entry.ID)
	}
	var analyses []models.AnalysisModel
	if err := s.db.Where("entry_id IN ?", entryIDs).Find(&analyses).Error; err != nil {
		return nil, err
	}
	analysisByEntry := make(map[string]*models.AnalysisModel, len(analyses))
	for i := range analyses {
		analysisByEntry[analyses[i].EntryID] = &analyses[i]
	}

	for _, entry := range entries {
		archive.Entries = append(archive.Entries, ArchiveEntry{
			ID:       entry.ID,
			Created:  entry.CreatedAt,
			Modified: entry.UpdatedAt,
			Content:  entry.Content,
			Analysis: analysisByEntry[entry.ID],
		})
	}
	return archive, nil
}
