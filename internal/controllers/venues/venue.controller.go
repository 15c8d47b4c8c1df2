package venueController

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"eventaggregator/internal/services"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

type VenueControllerInterface interface {
	List(ctx context.Context, term string) ([]types.VenueView, error)
	Get(ctx context.Context, id string) (types.VenueView, error)
}

type VenueController struct {
	ticketmaster *services.TicketmasterService
	budget       services.BudgetGate
	timeout      time.Duration
	log          logger.Logger
}

func New(svc services.Service) VenueControllerInterface {
	return &VenueController{
		ticketmaster: svc.Ticketmaster,
		budget:       svc.RateBudget,
		timeout:      svc.AggregationTimeout,
		log:          logger.New("venueController"),
	}
}

func (vc *VenueController) List(ctx context.Context, term string) ([]types.VenueView, error) {
	log := vc.log.TraceFromContext(ctx).Function("List")

	pageSize := vc.ticketmaster.PageSize()
	matches := services.NameContains(term)

	venues, err := services.Collect(
		ctx,
		vc.budget,
		services.PageSource[types.Venue](
			vc.ticketmaster,
			types.ResourceVenues,
			url.Values{"size": {strconv.Itoa(pageSize)}},
		),
		services.CollectOptions[types.Venue]{
			Resource:    types.ResourceVenues,
			TargetCount: pageSize,
			MaxPages:    1,
			Timeout:     vc.timeout,
			Filter:      func(venue types.Venue) bool { return matches(venue.Name) },
		},
	)
	if err != nil {
		return nil, log.Err("failed to list venues", err, "term", term)
	}

	return services.ProjectAll(venues, services.ProjectVenue), nil
}

func (vc *VenueController) Get(ctx context.Context, id string) (types.VenueView, error) {
	log := vc.log.TraceFromContext(ctx).Function("Get")

	var venue types.Venue
	if err := vc.ticketmaster.FetchByID(ctx, types.ResourceVenues, id, &venue); err != nil {
		return types.VenueView{}, log.Err("failed to get venue", err, "id", id)
	}

	return services.ProjectVenue(venue), nil
}
