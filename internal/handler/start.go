package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const startText = "📚 I post the dictionary.com Word of the Day here as soon as it changes.\n\n" +
	"/today - show the current word\n" +
	"/history - words announced recently"

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	if sender := c.Sender(); sender != nil {
		h.logger.Info("User started bot",
			zap.Int64("user_id", sender.ID),
			zap.String("username", sender.Username),
		)
	}

	return h.reply(c, startText, mainMenuMarkup())
}
