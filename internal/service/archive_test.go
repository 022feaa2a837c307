package service

import (
	"fmt"
	"testing"
	"time"

	"wotdbot/internal/domain"
	"wotdbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestArchiveService_CleanupOldData(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockAnnouncementRepository)
			mockRepo.On("CleanOldAnnouncements", 365).Return(tt.mockError)

			service := NewArchiveService(mockRepo, testutil.NewTestLogger())

			err := service.CleanupOldData()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestArchiveService_Disabled(t *testing.T) {
	service := NewArchiveService(nil, testutil.NewTestLogger())

	assert.False(t, service.Enabled())
	assert.NoError(t, service.CleanupOldData())

	announcements, err := service.Recent(7)
	assert.ErrorIs(t, err, ErrArchiveDisabled)
	assert.Nil(t, announcements)

	// Must not panic without storage
	service.Record(testutil.NewTestEntry("Serendipity"))
}

func TestArchiveService_Recent(t *testing.T) {
	now := time.Now()
	expected := []domain.Announcement{
		testutil.NewTestAnnouncement(2, "Quixotic", now),
		testutil.NewTestAnnouncement(1, "Serendipity", now.AddDate(0, 0, -1)),
	}

	mockRepo := new(testutil.MockAnnouncementRepository)
	mockRepo.On("GetRecentAnnouncements", 7).Return(expected, nil)

	service := NewArchiveService(mockRepo, testutil.NewTestLogger())

	announcements, err := service.Recent(7)

	assert.True(t, service.Enabled())
	assert.NoError(t, err)
	assert.Equal(t, expected, announcements)
	mockRepo.AssertExpectations(t)
}

func TestArchiveService_Record(t *testing.T) {
	tests := []struct {
		name      string
		mockError error
	}{
		{name: "saved", mockError: nil},
		{name: "save error is swallowed", mockError: fmt.Errorf("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := testutil.NewTestEntry("Serendipity")

			mockRepo := new(testutil.MockAnnouncementRepository)
			mockRepo.On("SaveAnnouncement", mock.Anything).Return(tt.mockError)

			service := NewArchiveService(mockRepo, testutil.NewTestLogger())
			service.Record(entry)

			mockRepo.AssertCalled(t, "SaveAnnouncement", entry)
		})
	}
}
