package eventController

import (
	"context"
	"time"

	"eventaggregator/internal/services"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

const (
	ListTargetCount       = 500
	ByArtistTargetCount   = 5000
	ByVenueTargetCount    = 1000
	ByCategoryTargetCount = 1000
)

type EventControllerInterface interface {
	List(ctx context.Context, term string) ([]types.EventView, error)
	Get(ctx context.Context, id string) (types.EventDetailView, error)
	ByArtist(ctx context.Context, artistID string) ([]types.EventView, error)
	ByVenue(ctx context.Context, venueID string) ([]types.EventView, error)
	ByCategory(ctx context.Context, categoryName string) ([]types.EventView, error)
}

type EventController struct {
	ticketmaster *services.TicketmasterService
	budget       services.BudgetGate
	timeout      time.Duration
	maxPages     int
	log          logger.Logger
}

func New(svc services.Service) EventControllerInterface {
	return &EventController{
		ticketmaster: svc.Ticketmaster,
		budget:       svc.RateBudget,
		timeout:      svc.AggregationTimeout,
		maxPages:     services.DefaultMaxPages,
		log:          logger.New("eventController"),
	}
}

// List gathers up to ListTargetCount events and then narrows them by term.
// The term is applied after collection, so a narrow term may match fewer
// events than exist upstream.
func (ec *EventController) List(ctx context.Context, term string) ([]types.EventView, error) {
	log := ec.log.TraceFromContext(ctx).Function("List")

	events, err := ec.collect(ctx, ListTargetCount, nil)
	if err != nil {
		return nil, log.Err("failed to list events", err, "term", term)
	}

	if term != "" {
		matches := services.NameContains(term)
		filtered := events[:0]
		for _, event := range events {
			if matches(event.Name) {
				filtered = append(filtered, event)
			}
		}
		events = filtered
	}

	return services.ProjectAll(events, services.ProjectEvent), nil
}

func (ec *EventController) Get(ctx context.Context, id string) (types.EventDetailView, error) {
	log := ec.log.TraceFromContext(ctx).Function("Get")

	var event types.Event
	if err := ec.ticketmaster.FetchByID(ctx, types.ResourceEvents, id, &event); err != nil {
		return types.EventDetailView{}, log.Err("failed to get event", err, "id", id)
	}

	return services.ProjectEventDetail(event), nil
}

func (ec *EventController) ByArtist(ctx context.Context, artistID string) ([]types.EventView, error) {
	log := ec.log.TraceFromContext(ctx).Function("ByArtist")

	events, err := ec.collect(ctx, ByArtistTargetCount, services.EventHasAttraction(artistID))
	if err != nil {
		return nil, log.Err("failed to list events by artist", err, "artistID", artistID)
	}

	return services.ProjectAll(events, services.ProjectEvent), nil
}

func (ec *EventController) ByVenue(ctx context.Context, venueID string) ([]types.EventView, error) {
	log := ec.log.TraceFromContext(ctx).Function("ByVenue")

	events, err := ec.collect(ctx, ByVenueTargetCount, services.EventAtVenue(venueID))
	if err != nil {
		return nil, log.Err("failed to list events by venue", err, "venueID", venueID)
	}

	return services.ProjectAll(events, services.ProjectEvent), nil
}

func (ec *EventController) ByCategory(
	ctx context.Context,
	categoryName string,
) ([]types.EventView, error) {
	log := ec.log.TraceFromContext(ctx).Function("ByCategory")

	events, err := ec.collect(ctx, ByCategoryTargetCount, services.EventInCategory(categoryName))
	if err != nil {
		return nil, log.Err("failed to list events by category", err, "category", categoryName)
	}

	return services.ProjectAll(events, services.ProjectEvent), nil
}

func (ec *EventController) collect(
	ctx context.Context,
	targetCount int,
	filter func(types.Event) bool,
) ([]types.Event, error) {
	return services.Collect(
		ctx,
		ec.budget,
		services.PageSource[types.Event](ec.ticketmaster, types.ResourceEvents, nil),
		services.CollectOptions[types.Event]{
			Resource:    types.ResourceEvents,
			TargetCount: targetCount,
			MaxPages:    ec.maxPages,
			Filter:      filter,
			Timeout:     ec.timeout,
		},
	)
}
