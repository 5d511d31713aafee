package handler

import (
	"context"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText relays free text to the completion service
func (h *Handler) handleText(c tele.Context) error {
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	h.logger.Debug("Relaying message to completion",
		zap.Int64("user_id", c.Sender().ID),
		zap.Int("length", len(text)),
	)

	return c.Send(h.completion.Reply(context.Background(), text))
}
