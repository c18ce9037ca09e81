package content

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/logger"
)

var Module = fx.Module("content",
	fx.Provide(Provide),
)

// Provide loads site copy from CONTENT_FILE when set, else the embedded one.
func Provide(cfg *config.Config, log *slog.Logger) (*Site, error) {
	if cfg.ContentFile == "" {
		return Default()
	}

	s, err := LoadFile(cfg.ContentFile)
	if err != nil {
		return nil, err
	}
	log.Info("loaded site content override",
		logger.Scope("content"),
		slog.String("path", cfg.ContentFile),
	)
	return s, nil
}
