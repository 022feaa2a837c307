package testutil

import (
	"context"

	"wotdbot/internal/domain"

	"github.com/stretchr/testify/mock"
	tele "gopkg.in/telebot.v3"
)

// MockAnnouncementRepository is a mock for AnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) SaveAnnouncement(entry *domain.WordEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) GetRecentAnnouncements(limit int) ([]domain.Announcement, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) CleanOldAnnouncements(days int) error {
	args := m.Called(days)
	return args.Error(0)
}

// MockPageFetcher is a mock for PageFetcher
type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) Fetch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockWordSource is a mock for WordSource
type MockWordSource struct {
	mock.Mock
}

func (m *MockWordSource) Today(ctx context.Context) (*domain.WordEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordEntry), args.Error(1)
}

// MockChat is a mock for the chat platform
type MockChat struct {
	mock.Mock
}

func (m *MockChat) ChatByID(id int64) (*tele.Chat, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.Chat), args.Error(1)
}

func (m *MockChat) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	args := m.Called(to, what)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tele.Message), args.Error(1)
}
