package handler

import (
	"smartedybot/internal/domain"
	"smartedybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	checkout   *service.CheckoutService
	completion *service.CompletionService
	documents  *service.DocumentService
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	checkout *service.CheckoutService,
	completion *service.CompletionService,
	documents *service.DocumentService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		checkout:   checkout,
		completion: completion,
		documents:  documents,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers.
// Updates of any other shape have no handler and are dropped.
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Callback queries (inline buttons)
	h.bot.Handle(tele.OnCallback, h.handleCallback)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)
}

// supportMarkup returns one inline button per checkout tier
func supportMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	for _, tier := range domain.Tiers() {
		markup.InlineKeyboard = append(markup.InlineKeyboard, []tele.InlineButton{{
			Text: tier.ButtonText(),
			Data: tier.CallbackData(),
		}})
	}
	return markup
}
