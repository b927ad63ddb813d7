package di

import (
	"ohd/internal/services"
	"ohd/internal/storage/interfaces"
)

// restoredService loads the persisted schedule into service without
// starting the periodic saver.
func restoredService(scheduler interfaces.SchedulerInterface, service services.ScheduleServiceInterface) (services.ScheduleServiceInterface, error) {
	if err := scheduler.Restore(); err != nil {
		return nil, err
	}
	return service, nil
}
