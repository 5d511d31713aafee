package service

import (
	"smartedybot/internal/repository"

	"go.uber.org/zap"
)

// RetentionDays is how long checkout journal rows are kept
const RetentionDays = 60

// JournalService handles checkout journal maintenance
type JournalService struct {
	checkoutRepo repository.CheckoutRepository
	logger       *zap.Logger
}

// NewJournalService creates a new journal service
func NewJournalService(checkoutRepo repository.CheckoutRepository, logger *zap.Logger) *JournalService {
	return &JournalService{
		checkoutRepo: checkoutRepo,
		logger:       logger,
	}
}

// CleanupOldData removes checkout sessions older than RetentionDays
func (s *JournalService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old checkout sessions", zap.Int("retention_days", RetentionDays))

	removed, err := s.checkoutRepo.CleanOldSessions(RetentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old checkout sessions", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully", zap.Int64("removed", removed))
	return nil
}
