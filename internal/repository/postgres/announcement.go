package postgres

import (
	"database/sql"

	"wotdbot/internal/domain"
)

// AnnouncementRepo implements repository.AnnouncementRepository
type AnnouncementRepo struct {
	db *sql.DB
}

// NewAnnouncementRepo creates a new announcement repository
func NewAnnouncementRepo(db *sql.DB) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

// SaveAnnouncement records a word that was posted to the channel
func (r *AnnouncementRepo) SaveAnnouncement(entry *domain.WordEntry) error {
	query := `
		INSERT INTO announcements (word, part_of_speech, pronunciation, definition)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, entry.Word, entry.PartOfSpeech, entry.Pronunciation, entry.Definition)
	return err
}

// GetRecentAnnouncements returns the latest announcements, newest first
func (r *AnnouncementRepo) GetRecentAnnouncements(limit int) ([]domain.Announcement, error) {
	query := `
		SELECT id, word, part_of_speech, pronunciation, definition, announced_at
		FROM announcements
		ORDER BY announced_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var announcements []domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(&a.ID, &a.Word, &a.PartOfSpeech, &a.Pronunciation, &a.Definition, &a.AnnouncedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}

// CleanOldAnnouncements deletes announcements older than specified days
func (r *AnnouncementRepo) CleanOldAnnouncements(days int) error {
	query := `
		DELETE FROM announcements
		WHERE announced_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}
