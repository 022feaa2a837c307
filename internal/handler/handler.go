package handler

import (
	"wotdbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages bot commands
type Handler struct {
	bot            *tele.Bot
	wordService    *service.WordOfTheDayService
	archiveService *service.ArchiveService
	logger         *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordOfTheDayService,
	archiveService *service.ArchiveService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		wordService:    wordService,
		archiveService: archiveService,
		logger:         logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/today", h.handleToday)
	h.bot.Handle("/history", h.handleHistory)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnToday, h.handleToday)
	h.bot.Handle(&btnHistory, h.handleHistory)
	h.bot.Handle(&btnMainMenu, h.handleStart)
}

// reply acknowledges a pending callback and sends text to the chat
func (h *Handler) reply(c tele.Context, text string, opts ...interface{}) error {
	if c.Callback() != nil {
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
	}
	return c.Send(text, opts...)
}

// Inline keyboard buttons
var (
	btnToday = tele.Btn{
		Unique: "today",
		Text:   "📖 Today's word",
	}
	btnHistory = tele.Btn{
		Unique: "history",
		Text:   "📅 Recent words",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnToday),
		menu.Row(btnHistory),
	)
	return menu
}

// backMarkup returns a keyboard with a single main menu button
func backMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnMainMenu))
	return menu
}
