package classificationController

import (
	"context"

	"eventaggregator/internal/services"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

type ClassificationControllerInterface interface {
	Categories(ctx context.Context) ([]types.ClassificationView, error)
	Genres(ctx context.Context) ([]types.GenreView, error)
}

type ClassificationController struct {
	ticketmaster *services.TicketmasterService
	log          logger.Logger
}

func New(svc services.Service) ClassificationControllerInterface {
	return &ClassificationController{
		ticketmaster: svc.Ticketmaster,
		log:          logger.New("classificationController"),
	}
}

func (cc *ClassificationController) Categories(ctx context.Context) ([]types.ClassificationView, error) {
	log := cc.log.TraceFromContext(ctx).Function("Categories")

	records, err := cc.ticketmaster.FetchClassifications(ctx)
	if err != nil {
		return nil, log.Err("failed to load categories", err)
	}

	return services.ProjectClassifications(records), nil
}

func (cc *ClassificationController) Genres(ctx context.Context) ([]types.GenreView, error) {
	log := cc.log.TraceFromContext(ctx).Function("Genres")

	records, err := cc.ticketmaster.FetchClassifications(ctx)
	if err != nil {
		return nil, log.Err("failed to load genres", err)
	}

	return services.ProjectGenres(records), nil
}
