package worker

import (
	"github.com/spec-kit/restaurant-service/internal/service"
)

// StartActivityWorker registers activity recording handlers.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
