package repository

import (
	"wotdbot/internal/domain"
)

// AnnouncementRepository defines archive operations for posted words
type AnnouncementRepository interface {
	SaveAnnouncement(entry *domain.WordEntry) error
	GetRecentAnnouncements(limit int) ([]domain.Announcement, error)
	CleanOldAnnouncements(days int) error
}
