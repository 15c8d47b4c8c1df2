package jobs

import (
	"eventaggregator/config"
	"eventaggregator/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

func RegisterAllJobs(
	schedulerService *services.SchedulerService,
	config config.Config,
	svc services.Service,
) error {
	log := logger.New("jobs").Function("RegisterAllJobs")

	if !config.SchedulerEnabled {
		log.Info("Scheduler disabled, skipping job registration")
		return nil
	}

	rateBudgetReportJob := NewRateBudgetReportJob(svc.RateBudget, services.EveryFifteenMinutes)
	if err := schedulerService.AddJob(rateBudgetReportJob); err != nil {
		return log.Err("failed to register rate budget report job", err)
	}

	return nil
}
