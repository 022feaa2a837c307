package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ChatMiddleware lets through private chats and the configured chat, and
// ignores every other update. Telegram channel posts never reach command
// handlers, so private chats are where commands work for a channel.
func ChatMiddleware(chatID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			chat := c.Chat()
			if chat == nil {
				logger.Debug("Ignoring update without chat")
				return nil
			}

			if chat.Type != tele.ChatPrivate && chat.ID != chatID {
				logger.Debug("Ignoring update from foreign chat",
					zap.Int64("chat_id", chat.ID),
					zap.String("chat_type", string(chat.Type)),
				)
				return nil
			}

			return next(c)
		}
	}
}
