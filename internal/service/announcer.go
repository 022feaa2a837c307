package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wotdbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ErrChannelNotFound is returned by Run when the target channel cannot be resolved
var ErrChannelNotFound = errors.New("channel not found")

// Chat is the part of the chat platform the announcer needs
type Chat interface {
	ChatByID(id int64) (*tele.Chat, error)
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// WordSource provides the current word of the day
type WordSource interface {
	Today(ctx context.Context) (*domain.WordEntry, error)
}

// IsNovel reports whether candidate should be announced
func IsNovel(candidate, lastSeen string) bool {
	return candidate != "" && candidate != lastSeen
}

// Announcer polls the word source and posts new words to the channel.
// lastSeen is only touched from the Run goroutine.
type Announcer struct {
	chat      Chat
	channelID int64
	words     WordSource
	archive   *ArchiveService
	interval  time.Duration
	logger    *zap.Logger

	lastSeen string
}

// NewAnnouncer creates a new announcer
func NewAnnouncer(
	chat Chat,
	channelID int64,
	words WordSource,
	archive *ArchiveService,
	interval time.Duration,
	logger *zap.Logger,
) *Announcer {
	return &Announcer{
		chat:      chat,
		channelID: channelID,
		words:     words,
		archive:   archive,
		interval:  interval,
		logger:    logger,
	}
}

// Run checks for a new word immediately and then once per interval until ctx is done
func (a *Announcer) Run(ctx context.Context) error {
	channel, err := a.chat.ChatByID(a.channelID)
	if err != nil {
		a.logger.Error("Announcer cannot start; make sure the bot has access to the channel, then restart the bot",
			zap.Int64("channel_id", a.channelID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %d: %w", ErrChannelNotFound, a.channelID, err)
	}

	a.logger.Info("Announcer started",
		zap.Int64("channel_id", a.channelID),
		zap.Duration("interval", a.interval),
	)

	a.Check(ctx, channel)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Announcer stopped")
			return nil
		case <-ticker.C:
			a.Check(ctx, channel)
		}
	}
}

// Check runs a single fetch, compare and send cycle and reports whether
// a message was delivered
func (a *Announcer) Check(ctx context.Context, channel tele.Recipient) bool {
	entry, err := a.words.Today(ctx)
	if err != nil {
		return false
	}

	if !IsNovel(entry.Word, a.lastSeen) {
		a.logger.Debug("Word unchanged", zap.String("word", entry.Word))
		return false
	}

	// Marked before sending: a word whose send fails is not retried.
	a.lastSeen = entry.Word

	if _, err := a.chat.Send(channel, entry.Message()); err != nil {
		a.logger.Error("Failed to send word of the day",
			zap.Error(err),
			zap.String("word", entry.Word),
		)
		return false
	}

	a.logger.Info("Word of the day announced", zap.String("word", entry.Word))
	a.archive.Record(entry)

	return true
}

// LastSeen returns the last announced word, empty if none yet
func (a *Announcer) LastSeen() string {
	return a.lastSeen
}
