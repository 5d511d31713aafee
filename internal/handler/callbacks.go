package handler

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"smartedybot/internal/domain"
	"smartedybot/internal/locale"
	"smartedybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const documentTitle = "SmartEdyBot"

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// editOrSend replaces the callback message text, sending a new message if the edit fails
func (h *Handler) editOrSend(c tele.Context, text string) error {
	err := c.Edit(text)
	if err == nil {
		return nil
	}

	// Same text already on screen, e.g. a double tap
	if strings.Contains(err.Error(), "message is not modified") {
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Send(text)
}

// handleCallback handles ALL callback queries
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Stop the client's loading indicator before doing anything slow
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	sender := c.Sender()
	data := cleanCallbackData(callback.Data)
	tier := domain.ParseTier(data)
	bundle := locale.Resolve(sender.LanguageCode)

	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.Stringer("tier", tier),
		zap.Int64("user_id", sender.ID),
	)

	url, err := h.checkout.CreateCheckout(context.Background(), sender.ID, tier)
	if err != nil {
		if errors.Is(err, service.ErrUnknownTier) {
			h.logger.Warn("Unhandled callback payload", zap.String("data", data))
		} else {
			h.logger.Error("Failed to create checkout", zap.Error(err), zap.Int64("user_id", sender.ID))
		}
		return h.editOrSend(c, bundle.Error)
	}

	editErr := h.editOrSend(c, bundle.RenderPayText(url))
	if editErr != nil {
		h.logger.Error("Failed to deliver payment link", zap.Error(editErr), zap.Int64("user_id", sender.ID))
	}

	// Sent before the payment is confirmed; the provider never reports back
	h.deliverDocument(c, sender.ID, bundle, tier)

	return editErr
}

// deliverDocument sends the PDF receipt; failures are logged and dropped
func (h *Handler) deliverDocument(c tele.Context, userID int64, bundle locale.Bundle, tier domain.Tier) {
	receipt := domain.Receipt{
		Title:    documentTitle,
		Body:     bundle.Support,
		Tier:     tier,
		IssuedAt: time.Now(),
	}

	err := h.documents.Deliver(userID, receipt, func(path string) error {
		return c.Send(&tele.Document{
			File:     tele.FromDisk(path),
			FileName: "document.pdf",
			Caption:  bundle.PDFReady,
		})
	})
	if err != nil {
		h.logger.Warn("Document delivery failed",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Stringer("tier", tier),
		)
	}
}
