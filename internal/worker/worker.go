package worker

import (
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// Start registers the event-driven side effects: ticket notifications and
// the best-effort directory mirror.
func Start(notifications *service.NotificationService, directory *service.DirectoryService) {
	if notifications != nil {
		notifications.RegisterHandlers()
	}
	if directory != nil {
		directory.RegisterHandlers()
	}
}
