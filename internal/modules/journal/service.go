package journal

import (
	"errors"
	"strings"

	"github.com/mood-journal/core/internal/models"
	"github.com/mood-journal/core/internal/modules/annotate"
	"github.com/mood-journal/core/internal/modules/sentiment"
	"github.com/mood-journal/core/internal/pkg/pagination"
	"github.com/mood-journal/core/internal/pkg/response"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errEntryNotFound = errors.New("entry not found")

// Service owns journal entries and the annotation write path.
type Service struct {
	db        *gorm.DB
	sentiment *sentiment.Service
	logger    *zap.Logger
}

func NewService(db *gorm.DB, sentimentSvc *sentiment.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, sentiment: sentimentSvc, logger: logger.Named("JournalService")}
}

// Create inserts a new entry for the user.
func (s *Service) Create(userID, content string) (*models.JournalEntryModel, error) {
	entry := models.JournalEntryModel{
		UserID:  userID,
		Content: content,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByID returns an entry owned by the user, nil when absent or unowned.
// Ownership misses and real misses are indistinguishable to the caller.
func (s *Service) GetByID(userID, id string) (*models.JournalEntryModel, error) {
	var entry models.JournalEntryModel
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// List returns one page of the user's entries, most recently modified first.
func (s *Service) List(userID string, q pagination.Query) ([]models.JournalEntryModel, response.Pagination, error) {
	query := s.db.Model(&models.JournalEntryModel{}).
		Where("user_id = ?", userID).
		Order("updated_at DESC")

	var entries []models.JournalEntryModel
	pg, err := pagination.Paginate(query, q, &entries)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return entries, pg, nil
}

// Update replaces the entry content. Returns (nil, false) when the entry is
// absent or unowned. When the content is unchanged the row is left untouched
// and changed is false, so callers can skip re-annotation.
func (s *Service) Update(userID, id, content string) (entry *models.JournalEntryModel, changed bool, err error) {
	existing, err := s.GetByID(userID, id)
	if err != nil || existing == nil {
		return nil, false, err
	}

	if existing.Content == content {
		return existing, false, nil
	}

	if err := s.db.Model(existing).Update("content", content).Error; err != nil {
		return nil, false, err
	}
	existing.Content = content
	return existing, true, nil
}

// Delete removes an entry and its derived rows (analysis, sentiment record,
// bookmarks) in one transaction.
func (s *Service) Delete(userID, id string) error {
	existing, err := s.GetByID(userID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return errEntryNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.JournalEntryModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", id).Delete(&models.AnalysisModel{}).Error; err != nil {
			return err
		}
		if err := s.sentiment.DeleteForEntryTx(tx, id); err != nil {
			return err
		}
		return tx.Unscoped().Where("entry_id = ?", id).Delete(&models.BookmarkModel{}).Error
	})
}

// SaveAnnotation upserts the analysis and its sentiment projection in one
// transaction so the two never diverge.
func (s *Service) SaveAnnotation(entry *models.JournalEntryModel, result *annotate.Result) (*models.AnalysisModel, error) {
	analysis := models.AnalysisModel{
		EntryID:        entry.ID,
		Mood:           result.Mood,
		Subject:        result.Subject,
		Summary:        result.Summary,
		Color:          result.Color,
		Negative:       result.Negative,
		SentimentScore: result.SentimentScore,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", entry.ID).
			Assign(map[string]interface{}{
				"mood":            analysis.Mood,
				"subject":         analysis.Subject,
				"summary":         analysis.Summary,
				"color":           analysis.Color,
				"negative":        analysis.Negative,
				"sentiment_score": analysis.SentimentScore,
			}).
			FirstOrCreate(&analysis).Error; err != nil {
			return err
		}
		_, err := s.sentiment.RecordScoreTx(tx, entry.ID, entry.UpdatedAt, result.Mood, result.Color, result.SentimentScore)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// AnalysisForEntry returns the analysis of an entry, nil when absent.
func (s *Service) AnalysisForEntry(entryID string) (*models.AnalysisModel, error) {
	var analysis models.AnalysisModel
	err := s.db.Where("entry_id = ?", entryID).First(&analysis).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &analysis, nil
}

// AnalysesForEntries returns a map of entry ID to analysis for list decoration.
func (s *Service) AnalysesForEntries(entryIDs []string) (map[string]models.AnalysisModel, error) {
	result := make(map[string]models.AnalysisModel, len(entryIDs))
	if len(entryIDs) == 0 {
		return result, nil
	}

	var analyses []models.AnalysisModel
	if err := s.db.Where("entry_id IN ?", entryIDs).Find(&analyses).Error; err != nil {
		return nil, err
	}
	for _, analysis := range analyses {
		result[analysis.EntryID] = analysis
	}
	return result, nil
}

// StreakForUser computes the consecutive-day writing streak across all of the
// user's entries.
func (s *Service) StreakForUser(userID string) (int, error) {
	var entries []models.JournalEntryModel
	err := s.db.Select("updated_at").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&entries).Error
	if err != nil {
		return 0, err
	}
	return ComputeStreak(entries), nil
}

// RecentContents returns up to limit non-empty entry texts, newest first.
func (s *Service) RecentContents(userID string, limit int) ([]string, error) {
	var entries []models.JournalEntryModel
	err := s.db.Select("content").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	contents := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.TrimSpace(entry.Content) == "" {
			continue
		}
		contents = append(contents, entry.Content)
	}
	return contents, nil
}
