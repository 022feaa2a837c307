package service

import (
	"errors"

	"wotdbot/internal/domain"
	"wotdbot/internal/repository"

	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned when no archive storage is configured
var ErrArchiveDisabled = errors.New("archive is disabled")

// ArchiveService keeps a history of announced words. A nil repository
// disables it.
type ArchiveService struct {
	repo   repository.AnnouncementRepository
	logger *zap.Logger
}

// NewArchiveService creates a new archive service
func NewArchiveService(repo repository.AnnouncementRepository, logger *zap.Logger) *ArchiveService {
	return &ArchiveService{
		repo:   repo,
		logger: logger,
	}
}

// Enabled reports whether announcements are being archived
func (s *ArchiveService) Enabled() bool {
	return s.repo != nil
}

// Record stores an announced word. Errors are logged, not returned.
func (s *ArchiveService) Record(entry *domain.WordEntry) {
	if !s.Enabled() {
		return
	}

	if err := s.repo.SaveAnnouncement(entry); err != nil {
		s.logger.Error("Failed to archive announcement",
			zap.Error(err),
			zap.String("word", entry.Word),
		)
	}
}

// Recent returns the latest archived announcements
func (s *ArchiveService) Recent(limit int) ([]domain.Announcement, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}
	return s.repo.GetRecentAnnouncements(limit)
}

// CleanupOldData removes announcements older than a year
func (s *ArchiveService) CleanupOldData() error {
	const retentionDays = 365

	if !s.Enabled() {
		return nil
	}

	s.logger.Info("Starting cleanup of old announcements", zap.Int("retention_days", retentionDays))

	err := s.repo.CleanOldAnnouncements(retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old announcements", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}
