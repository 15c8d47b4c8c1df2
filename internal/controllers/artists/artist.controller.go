package artistController

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"eventaggregator/internal/services"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

// ListQuery narrows the artist listing. Term is a substring match on the
// name, Name an exact one; both ignore case.
type ListQuery struct {
	Term string
	Name string
}

type ArtistControllerInterface interface {
	List(ctx context.Context, query ListQuery) ([]types.ArtistView, error)
	Get(ctx context.Context, id string) (types.ArtistView, error)
}

type ArtistController struct {
	ticketmaster *services.TicketmasterService
	budget       services.BudgetGate
	timeout      time.Duration
	log          logger.Logger
}

func New(svc services.Service) ArtistControllerInterface {
	return &ArtistController{
		ticketmaster: svc.Ticketmaster,
		budget:       svc.RateBudget,
		timeout:      svc.AggregationTimeout,
		log:          logger.New("artistController"),
	}
}

// List reads a single listing page and filters it in memory.
func (ac *ArtistController) List(ctx context.Context, query ListQuery) ([]types.ArtistView, error) {
	log := ac.log.TraceFromContext(ctx).Function("List")

	pageSize := ac.ticketmaster.PageSize()
	params := url.Values{"size": {strconv.Itoa(pageSize)}}

	term := services.NameContains(query.Term)
	var exact func(*string) bool
	if query.Name != "" {
		exact = services.NameEquals(query.Name)
	}

	attractions, err := services.Collect(
		ctx,
		ac.budget,
		services.PageSource[types.Attraction](ac.ticketmaster, types.ResourceAttractions, params),
		services.CollectOptions[types.Attraction]{
			Resource:    types.ResourceAttractions,
			TargetCount: pageSize,
			MaxPages:    1,
			Timeout:     ac.timeout,
			Filter: func(attraction types.Attraction) bool {
				if !term(attraction.Name) {
					return false
				}
				return exact == nil || exact(attraction.Name)
			},
		},
	)
	if err != nil {
		return nil, log.Err("failed to list artists", err, "term", query.Term, "name", query.Name)
	}

	return services.ProjectAll(attractions, services.ProjectArtist), nil
}

func (ac *ArtistController) Get(ctx context.Context, id string) (types.ArtistView, error) {
	log := ac.log.TraceFromContext(ctx).Function("Get")

	var attraction types.Attraction
	if err := ac.ticketmaster.FetchByID(ctx, types.ResourceAttractions, id, &attraction); err != nil {
		return types.ArtistView{}, log.Err("failed to get artist", err, "id", id)
	}

	return services.ProjectArtist(attraction), nil
}
