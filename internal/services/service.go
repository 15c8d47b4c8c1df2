package services

import (
	"time"

	"eventaggregator/config"
	"eventaggregator/internal/database"
)

type Service struct {
	Transaction        *TransactionService
	Scheduler          *SchedulerService
	RateBudget         *RateBudgetService
	Ticketmaster       *TicketmasterService
	AggregationTimeout time.Duration
}

func New(db database.DB, config config.Config) Service {
	rateBudget := NewRateBudgetService(
		config.RateBudgetAllowance,
		time.Duration(config.RateBudgetWindowSeconds)*time.Second,
		nil,
	)

	return Service{
		Transaction:        NewTransactionService(db),
		Scheduler:          NewSchedulerService(),
		RateBudget:         rateBudget,
		Ticketmaster:       NewTicketmasterService(TicketmasterOptionsFromConfig(config), rateBudget),
		AggregationTimeout: time.Duration(config.AggregationTimeoutSeconds) * time.Second,
	}
}
