package providers

import (
	"fmt"
	"path/filepath"

	"github.com/samber/do/v2"

	"github.com/playtrackapp/playtrack-server/internal/config"
	"github.com/playtrackapp/playtrack-server/internal/logger"
	"github.com/playtrackapp/playtrack-server/internal/store"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the game store over the configured backend.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var backend store.Backend
	var err error
	switch cfg.Store.Backend {
	case config.BackendFile:
		backend, err = store.NewFileBackend(filepath.Join(cfg.Store.DataPath, "games.json"), log.Logger)
	case config.BackendBadger:
		backend, err = store.NewBadgerBackend(filepath.Join(cfg.Store.DataPath, "db"), log.Logger)
	default:
		err = fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Store initialized", "backend", cfg.Store.Backend, "path", cfg.Store.DataPath)

	return &StoreHandle{Store: store.New(backend, log.Logger)}, nil
}
