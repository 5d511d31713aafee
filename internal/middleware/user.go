package middleware

import (
	"smartedybot/internal/domain"
	"smartedybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// TrackUser records the sender before the handler runs.
// Storage failures are logged and never block the update.
func TrackUser(userService *service.UserService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || !userService.Enabled() {
				return next(c)
			}

			user := domain.User{
				UserID:       sender.ID,
				FirstName:    sender.FirstName,
				LanguageCode: sender.LanguageCode,
			}
			if err := userService.Track(user); err != nil {
				logger.Error("Failed to track user in middleware",
					zap.Error(err),
					zap.Int64("user_id", sender.ID),
				)
			}

			return next(c)
		}
	}
}

// Recover turns a handler panic into a log entry so polling continues
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Handler panicked",
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					err = nil
				}
			}()
			return next(c)
		}
	}
}
