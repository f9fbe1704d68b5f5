package sentiment

import (
	"errors"
	"time"

	"github.com/mood-journal/core/internal/models"
	"github.com/mood-journal/core/internal/modules/annotate"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service reads and writes the denormalized sentiment projection.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{db: db, logger: logger.Named("SentimentService")}
}

// RecordScore upserts the sentiment record for an entry. Keyed on entry_id,
// so repeated calls with the same annotation are idempotent.
func (s *Service) RecordScore(entryID string, entryUpdatedAt time.Time, mood, color string, score int) (*models.SentimentRecordModel, error) {
	return s.recordScore(s.db, entryID, entryUpdatedAt, mood, color, score)
}

// RecordScoreTx is RecordScore inside an existing transaction.
func (s *Service) RecordScoreTx(tx *gorm.DB, entryID string, entryUpdatedAt time.Time, mood, color string, score int) (*models.SentimentRecordModel, error) {
	return s.recordScore(tx, entryID, entryUpdatedAt, mood, color, score)
}

func (s *Service) recordScore(db *gorm.DB, entryID string, entryUpdatedAt time.Time, mood, color string, score int) (*models.SentimentRecordModel, error) {
	record := models.SentimentRecordModel{
		EntryID:        entryID,
		EntryUpdatedAt: entryUpdatedAt,
		Mood:           mood,
		Color:          color,
		Score:          annotate.ClampScore(score),
	}
	// Assign via map: a zero score is a legitimate value and must still be
	// written on update.
	err := db.Where("entry_id = ?", entryID).
		Assign(map[string]interface{}{
			"entry_updated_at": record.EntryUpdatedAt,
			"mood":             record.Mood,
			"color":            record.Color,
			"score":            record.Score,
		}).
		FirstOrCreate(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetScore returns the sentiment record for an entry, nil when absent.
func (s *Service) GetScore(entryID string) (*models.SentimentRecordModel, error) {
	var record models.SentimentRecordModel
	if err := s.db.Where("entry_id = ?", entryID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// ScoresForUser returns a user's sentiment records ordered by creation time
// ascending. Ownership is resolved through the journal entries so records of
// deleted entries never leak in. sinceDays > 0 keeps only the trailing window.
func (s *Service) ScoresForUser(userID string, sinceDays int) ([]models.SentimentRecordModel, error) {
	query := s.db.
		Joins("JOIN journal_entries ON journal_entries.id = sentiment_scores.entry_id").
		Where("journal_entries.user_id = ? AND journal_entries.deleted_at IS NULL", userID).
		Order("sentiment_scores.created_at ASC")

	if sinceDays > 0 {
		cutoff := time.Now().AddDate(0, 0, -sinceDays)
		query = query.Where("sentiment_scores.created_at >= ?", cutoff)
	}

	var records []models.SentimentRecordModel
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteForEntryTx soft-deletes the sentiment record of an entry inside an
// existing transaction (entry deletion cascade).
func (s *Service) DeleteForEntryTx(tx *gorm.DB, entryID string) error {
	return tx.Where("entry_id = ?", entryID).Delete(&models.SentimentRecordModel{}).Error
}
