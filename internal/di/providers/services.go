package providers

import (
	"github.com/samber/do/v2"

	"github.com/playtrackapp/playtrack-server/internal/logger"
	"github.com/playtrackapp/playtrack-server/internal/service"
)

// ProvideTrackerService provides the game tracking service.
func ProvideTrackerService(i do.Injector) (*service.TrackerService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTrackerService(storeHandle.Store, log.Logger), nil
}
