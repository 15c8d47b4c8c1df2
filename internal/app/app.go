package app

import (
	"context"
	"reflect"

	"eventaggregator/config"
	"eventaggregator/internal/controllers"
	"eventaggregator/internal/database"
	"eventaggregator/internal/handlers/middleware"
	"eventaggregator/internal/jobs"
	"eventaggregator/internal/repositories"
	"eventaggregator/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	Services     services.Service
	Repositories repositories.Repository
	Controllers  controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	svc := services.New(db, config)
	repos := repositories.New(db)

	if err := jobs.RegisterAllJobs(svc.Scheduler, config, svc); err != nil {
		return &App{}, log.Err("failed to register jobs", err)
	}

	app := &App{
		Database:     db,
		Config:       config,
		Middleware:   middleware.New(config),
		Services:     svc,
		Repositories: repos,
		Controllers:  controllers.New(svc, repos),
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := map[string]any{
		"transactionService":       a.Services.Transaction,
		"schedulerService":         a.Services.Scheduler,
		"rateBudgetService":        a.Services.RateBudget,
		"ticketmasterService":      a.Services.Ticketmaster,
		"userRepository":           a.Repositories.User,
		"favoriteRepository":       a.Repositories.Favorite,
		"reviewRepository":         a.Repositories.Review,
		"artistController":         a.Controllers.Artist,
		"venueController":          a.Controllers.Venue,
		"eventController":          a.Controllers.Event,
		"classificationController": a.Controllers.Classification,
		"suggestController":        a.Controllers.Suggest,
		"favoriteController":       a.Controllers.Favorite,
		"reviewController":         a.Controllers.Review,
	}

	for name, check := range nilChecks {
		if isNil(check) {
			return log.Error("nil check failed", "component", name)
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
