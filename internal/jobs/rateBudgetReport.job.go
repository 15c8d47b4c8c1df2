package jobs

import (
	"context"

	"eventaggregator/internal/metrics"
	"eventaggregator/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// lowBudgetRatio is the share of the allowance below which the report warns.
const lowBudgetRatio = 0.1

type RateBudgetReportJob struct {
	budget   *services.RateBudgetService
	log      logger.Logger
	schedule services.Schedule
}

func NewRateBudgetReportJob(
	budget *services.RateBudgetService,
	schedule services.Schedule,
) *RateBudgetReportJob {
	return &RateBudgetReportJob{
		budget:   budget,
		log:      logger.New("rateBudgetReportJob"),
		schedule: schedule,
	}
}

func (j *RateBudgetReportJob) Name() string {
	return "RateBudgetReport"
}

func (j *RateBudgetReportJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	snapshot := j.budget.Snapshot()
	metrics.RateBudgetRemaining.Set(float64(snapshot.Remaining))

	if j.IsLow(snapshot) {
		log.Warn(
			"Upstream rate budget running low",
			"remaining", snapshot.Remaining,
			"allowance", snapshot.Allowance,
			"resetAt", snapshot.ResetAt,
		)
		return nil
	}

	log.Info(
		"Upstream rate budget",
		"remaining", snapshot.Remaining,
		"allowance", snapshot.Allowance,
		"resetAt", snapshot.ResetAt,
	)
	return nil
}

func (j *RateBudgetReportJob) IsLow(snapshot services.RateBudgetSnapshot) bool {
	if snapshot.Allowance <= 0 {
		return false
	}
	return float64(snapshot.Remaining) < float64(snapshot.Allowance)*lowBudgetRatio
}

func (j *RateBudgetReportJob) Schedule() services.Schedule {
	return j.schedule
}
