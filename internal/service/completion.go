package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CompletionService relays free text to the completion API
type CompletionService struct {
	completer Completer
	logger    *zap.Logger
}

// NewCompletionService creates a new completion service
func NewCompletionService(completer Completer, logger *zap.Logger) *CompletionService {
	return &CompletionService{
		completer: completer,
		logger:    logger,
	}
}

// Reply returns the answer for text, or an error description for the user.
// It never fails: provider errors become part of the reply.
func (s *CompletionService) Reply(ctx context.Context, text string) string {
	answer, err := s.completer.Complete(ctx, text)
	if err != nil {
		s.logger.Warn("Completion request failed", zap.Error(err))
		return fmt.Sprintf("Произошла ошибка: %v", err)
	}
	return strings.TrimSpace(answer)
}
