package postgres

import (
	"fmt"
	"testing"
	"time"

	"wotdbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

var announcementColumns = []string{"id", "word", "part_of_speech", "pronunciation", "definition", "announced_at"}

const recentQuery = "SELECT id, word, part_of_speech, pronunciation, definition, announced_at FROM announcements ORDER BY announced_at DESC LIMIT \\$1"

func TestAnnouncementRepo_SaveAnnouncement(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAnnouncementRepo(db)

	entry := &domain.WordEntry{
		Word:          "Serendipity",
		PartOfSpeech:  "noun",
		Pronunciation: "[ ser-uhn-dip-i-tee ]",
		Definition:    "happy accident.",
	}

	mock.ExpectExec("INSERT INTO announcements").
		WithArgs(entry.Word, entry.PartOfSpeech, entry.Pronunciation, entry.Definition).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SaveAnnouncement(entry)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepo_SaveAnnouncement_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAnnouncementRepo(db)

	mock.ExpectExec("INSERT INTO announcements").
		WillReturnError(fmt.Errorf("insert error"))

	err = repo.SaveAnnouncement(&domain.WordEntry{Word: "Serendipity"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepo_GetRecentAnnouncements(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAnnouncementRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows(announcementColumns).
		AddRow(2, "Quixotic", "adjective", "[ kwik-sot-ik ]", "idealistic.", now).
		AddRow(1, "Serendipity", "noun", "[ ser-uhn-dip-i-tee ]", "happy accident.", now.AddDate(0, 0, -1))

	mock.ExpectQuery(recentQuery).
		WithArgs(7).
		WillReturnRows(rows)

	announcements, err := repo.GetRecentAnnouncements(7)

	assert.NoError(t, err)
	assert.Len(t, announcements, 2)
	assert.Equal(t, "Quixotic", announcements[0].Word)
	assert.Equal(t, "adjective", announcements[0].PartOfSpeech)
	assert.Equal(t, "Serendipity", announcements[1].Word)
	assert.Equal(t, 1, announcements[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepo_GetRecentAnnouncements_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAnnouncementRepo(db)

	mock.ExpectQuery(recentQuery).
		WithArgs(7).
		WillReturnError(fmt.Errorf("query error"))

	announcements, err := repo.GetRecentAnnouncements(7)

	assert.Error(t, err)
	assert.Nil(t, announcements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepo_GetRecentAnnouncements_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAnnouncementRepo(db)

	// Wrong column type to cause scan error
	rows := sqlmock.NewRows(announcementColumns).
		AddRow("invalid", "Quixotic", "adjective", "[ kwik-sot-ik ]", "idealistic.", time.Now())

	mock.ExpectQuery(recentQuery).
		WithArgs(7).
		WillReturnRows(rows)

	announcements, err := repo.GetRecentAnnouncements(7)

	assert.Error(t, err)
	assert.Nil(t, announcements)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnnouncementRepo_CleanOldAnnouncements(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAnnouncementRepo(db)

	days := 365

	mock.ExpectExec("DELETE FROM announcements WHERE announced_at").
		WithArgs(days).
		WillReturnResult(sqlmock.NewResult(0, 10))

	err = repo.CleanOldAnnouncements(days)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
