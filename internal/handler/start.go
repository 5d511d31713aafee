package handler

import (
	"smartedybot/internal/locale"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
		zap.String("language", sender.LanguageCode),
	)

	bundle := locale.Resolve(sender.LanguageCode)

	if err := c.Send(bundle.RenderGreeting(sender.FirstName), tele.ModeHTML); err != nil {
		return err
	}
	return c.Send(bundle.Support, supportMarkup())
}
