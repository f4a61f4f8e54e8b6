package providers

import (
	"github.com/samber/do/v2"

	"github.com/playtrackapp/playtrack-server/internal/catalog"
	"github.com/playtrackapp/playtrack-server/internal/config"
	"github.com/playtrackapp/playtrack-server/internal/logger"
)

// CatalogClientHandle wraps the catalog client with shutdown capability.
type CatalogClientHandle struct {
	*catalog.Client
}

// Shutdown implements do.Shutdownable.
func (h *CatalogClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideCatalogClient provides the RAWG catalog client. A missing API key
// is not an error here; catalog endpoints fail with a configuration error
// at call time instead.
func ProvideCatalogClient(i do.Injector) (*CatalogClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Catalog.APIKey == "" {
		log.Warn("RAWG_API_KEY not set; catalog search will be unavailable")
	}

	client := catalog.NewClient(catalog.Config{
		APIKey:   cfg.Catalog.APIKey,
		BaseURL:  cfg.Catalog.BaseURL,
		PageSize: cfg.Catalog.PageSize,
	}, log.Logger)

	return &CatalogClientHandle{Client: client}, nil
}
