package bootstrap

import (
	"log/slog"

	"pricing-panel/internal/pkg/config"
	"pricing-panel/internal/pkg/jwt"
	"pricing-panel/internal/usecase"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionValidator,
	),
)

// NewSessionValidator returns nil when SESSION_SECRET is unset, which turns the
// session check off.
func NewSessionValidator(cfg config.Config, logger *slog.Logger) usecase.SessionValidator {
	if cfg.Session.Secret == "" {
		logger.Warn("SESSION_SECRET not set, extension session check disabled")
		return nil
	}
	return usecase.NewSessionValidator(jwt.NewService(cfg.Session.Secret, cfg.Session.Duration))
}
