package service

import (
	"context"

	"wotdbot/internal/domain"
	"wotdbot/internal/extractor"

	"go.uber.org/zap"
)

// PageFetcher downloads the raw word of the day page
type PageFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// WordOfTheDayService fetches and parses the current word of the day
type WordOfTheDayService struct {
	fetcher PageFetcher
	logger  *zap.Logger
}

// NewWordOfTheDayService creates a new word of the day service
func NewWordOfTheDayService(fetcher PageFetcher, logger *zap.Logger) *WordOfTheDayService {
	return &WordOfTheDayService{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Today returns the word currently published on the page.
// Failures are logged here; callers only need to branch on the error.
func (s *WordOfTheDayService) Today(ctx context.Context) (*domain.WordEntry, error) {
	markup, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Warn("Failed to fetch word of the day page", zap.Error(err))
		return nil, err
	}

	entry, err := extractor.Extract(markup)
	if err != nil {
		s.logger.Warn("Failed to extract word of the day", zap.Error(err))
		return nil, err
	}

	return entry, nil
}
