package jobs

import (
	"context"
	"testing"
	"time"

	"eventaggregator/config"
	"eventaggregator/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateBudgetReportJob_IsLow(t *testing.T) {
	job := NewRateBudgetReportJob(nil, services.Hourly)

	tests := []struct {
		name      string
		remaining int
		allowance int
		expected  bool
	}{
		{name: "full budget", remaining: 1000, allowance: 1000, expected: false},
		{name: "at threshold", remaining: 100, allowance: 1000, expected: false},
		{name: "below threshold", remaining: 99, allowance: 1000, expected: true},
		{name: "empty", remaining: 0, allowance: 1000, expected: true},
		{name: "no allowance", remaining: 0, allowance: 0, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := services.RateBudgetSnapshot{Remaining: tt.remaining, Allowance: tt.allowance}
			assert.Equal(t, tt.expected, job.IsLow(snapshot))
		})
	}
}

func TestRateBudgetReportJob_Execute(t *testing.T) {
	budget := services.NewRateBudgetService(10, time.Minute, nil)
	job := NewRateBudgetReportJob(budget, services.EveryFifteenMinutes)

	assert.Equal(t, "RateBudgetReport", job.Name())
	assert.Equal(t, services.EveryFifteenMinutes, job.Schedule())
	assert.NoError(t, job.Execute(context.Background()))
}

func TestRegisterAllJobs(t *testing.T) {
	scheduler := services.NewSchedulerService()
	svc := services.Service{RateBudget: services.NewRateBudgetService(10, time.Minute, nil)}

	require.NoError(t, RegisterAllJobs(scheduler, config.Config{SchedulerEnabled: false}, svc))
	assert.Equal(t, 0, scheduler.GetJobCount())

	require.NoError(t, RegisterAllJobs(scheduler, config.Config{SchedulerEnabled: true}, svc))
	assert.Equal(t, 1, scheduler.GetJobCount())
	assert.NoError(t, scheduler.TriggerJobByName(context.Background(), "RateBudgetReport"))
}
