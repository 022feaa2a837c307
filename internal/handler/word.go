package handler

import (
	"context"
	"fmt"
	"strings"

	"wotdbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const historyLimit = 7

const (
	todayFailedText     = "Couldn't get today's word right now. Try again later."
	historyFailedText   = "Couldn't load recent words. Try again later."
	historyDisabledText = "The archive is not enabled, so there is no history to show."
	historyEmptyText    = "No words have been announced yet."
)

// handleToday fetches the current word and replies with it.
// It does not affect what the announcer considers already posted.
func (h *Handler) handleToday(c tele.Context) error {
	entry, err := h.wordService.Today(context.Background())
	if err != nil {
		return h.reply(c, todayFailedText)
	}

	return h.reply(c, entry.Message(), backMarkup())
}

// handleHistory lists recently announced words
func (h *Handler) handleHistory(c tele.Context) error {
	if !h.archiveService.Enabled() {
		return h.reply(c, historyDisabledText, backMarkup())
	}

	announcements, err := h.archiveService.Recent(historyLimit)
	if err != nil {
		h.logger.Error("Failed to load recent announcements", zap.Error(err))
		return h.reply(c, historyFailedText)
	}

	return h.reply(c, historyText(announcements), backMarkup())
}

func historyText(announcements []domain.Announcement) string {
	if len(announcements) == 0 {
		return historyEmptyText
	}

	var b strings.Builder
	b.WriteString("📅 Recently announced words:\n\n")
	for _, a := range announcements {
		day := domain.Day{Date: a.AnnouncedAt}
		fmt.Fprintf(&b, "• %s: %s (%s)\n", day.DisplayString(), a.Word, a.PartOfSpeech)
	}
	return b.String()
}
