package service

import (
	"fmt"
	"os"
	"path/filepath"

	"smartedybot/internal/domain"

	"go.uber.org/zap"
)

const documentPattern = "document_from_*.pdf"

// DocumentService renders receipts to a scratch file and hands them to a sender
type DocumentService struct {
	renderer Renderer
	dir      string
	logger   *zap.Logger
}

// NewDocumentService creates a new document service writing into dir
func NewDocumentService(renderer Renderer, dir string, logger *zap.Logger) *DocumentService {
	return &DocumentService{
		renderer: renderer,
		dir:      dir,
		logger:   logger,
	}
}

// PathFor returns the scratch path of the user's document
func (s *DocumentService) PathFor(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("document_from_%d.pdf", userID))
}

// Deliver renders receipt and passes the file path to send.
// The file is removed on every exit path.
func (s *DocumentService) Deliver(userID int64, receipt domain.Receipt, send func(path string) error) error {
	path := s.PathFor(userID)
	defer s.remove(path)

	if err := s.renderer.Render(receipt, path); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	if err := send(path); err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

// SweepStale removes documents left behind by a previous process
func (s *DocumentService) SweepStale() (int, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, documentPattern))
	if err != nil {
		return 0, fmt.Errorf("glob stale documents: %w", err)
	}

	removed := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			s.logger.Warn("Failed to remove stale document", zap.String("path", path), zap.Error(err))
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *DocumentService) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove document", zap.String("path", path), zap.Error(err))
	}
}
