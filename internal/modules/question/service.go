package question

import (
	"context"

	"github.com/mood-journal/core/internal/modules/annotate"
	"github.com/mood-journal/core/internal/modules/journal"
	"go.uber.org/zap"
)

// maxEntries bounds how much of the journal corpus is fed to the model,
// keeping prompts inside provider token limits.
const maxEntries = 50

const emptyJournalAnswer = "You don't have any journal entries yet. Start writing to ask questions about your journals!"

// Service answers free-text questions against the user's recent entries.
type Service struct {
	journal  *journal.Service
	annotate *annotate.Service
	logger   *zap.Logger
}

func NewService(journalSvc *journal.Service, annotateSvc *annotate.Service, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{journal: journalSvc, annotate: annotateSvc, logger: logger.Named("QuestionService")}
}

// Answer collects the user's recent entries and asks the configured AI
// provider. A user with no entries gets a canned nudge instead of an AI call.
func (s *Service) Answer(ctx context.Context, userID, question string) (string, error) {
	contents, err := s.journal.RecentContents(userID, maxEntries)
	if err != nil {
		return "", err
	}
	if len(contents) == 0 {
		return emptyJournalAnswer, nil
	}

	answer, err := s.annotate.Answer(ctx, question, contents)
	if err != nil {
		return "", err
	}
	s.logger.Debug("question answered", zap.String("user_id", userID), zap.Int("entries", len(contents)))
	return answer, nil
}
