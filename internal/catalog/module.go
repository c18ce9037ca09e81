package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/logger"
)

var Module = fx.Module("catalog",
	fx.Provide(Provide),
)

// Provide loads the catalog from CATALOG_FILE when set, else the embedded one.
func Provide(cfg *config.Config, log *slog.Logger) (*Catalog, error) {
	log = log.With(logger.Scope("catalog"))

	if cfg.CatalogFile == "" {
		c, err := Default()
		if err != nil {
			return nil, err
		}
		log.Debug("loaded embedded catalog", slog.Int("products", c.Len()))
		return c, nil
	}

	c, err := LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	log.Info("loaded catalog override",
		slog.String("path", cfg.CatalogFile),
		slog.Int("products", c.Len()),
	)
	return c, nil
}
