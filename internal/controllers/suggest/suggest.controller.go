package suggestController

import (
	"context"
	"math/rand/v2"
	"net/url"
	"strconv"
	"time"

	"eventaggregator/internal/services"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

const SuggestPageSize = 100

type SuggestControllerInterface interface {
	Suggest(ctx context.Context) ([]types.EventView, error)
}

type SuggestController struct {
	ticketmaster *services.TicketmasterService
	budget       services.BudgetGate
	timeout      time.Duration
	shuffle      func(n int, swap func(i, j int))
	log          logger.Logger
}

func New(svc services.Service) SuggestControllerInterface {
	return &SuggestController{
		ticketmaster: svc.Ticketmaster,
		budget:       svc.RateBudget,
		timeout:      svc.AggregationTimeout,
		shuffle:      rand.Shuffle,
		log:          logger.New("suggestController"),
	}
}

// Suggest returns one page of events in random order.
func (sc *SuggestController) Suggest(ctx context.Context) ([]types.EventView, error) {
	log := sc.log.TraceFromContext(ctx).Function("Suggest")

	events, err := services.Collect(
		ctx,
		sc.budget,
		services.PageSource[types.Event](
			sc.ticketmaster,
			types.ResourceEvents,
			url.Values{"size": {strconv.Itoa(SuggestPageSize)}},
		),
		services.CollectOptions[types.Event]{
			Resource:    types.ResourceEvents,
			TargetCount: SuggestPageSize,
			MaxPages:    1,
			Timeout:     sc.timeout,
		},
	)
	if err != nil {
		return nil, log.Err("failed to load suggestions", err)
	}

	views := services.ProjectAll(events, services.ProjectEvent)
	sc.shuffle(len(views), func(i, j int) {
		views[i], views[j] = views[j], views[i]
	})

	return views, nil
}
