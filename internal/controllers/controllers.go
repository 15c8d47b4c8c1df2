package controllers

import (
	"eventaggregator/internal/repositories"
	"eventaggregator/internal/services"

	artistController "eventaggregator/internal/controllers/artists"
	classificationController "eventaggregator/internal/controllers/classifications"
	eventController "eventaggregator/internal/controllers/events"
	favoriteController "eventaggregator/internal/controllers/favorites"
	reviewController "eventaggregator/internal/controllers/reviews"
	suggestController "eventaggregator/internal/controllers/suggest"
	venueController "eventaggregator/internal/controllers/venues"
)

type Controllers struct {
	Artist         artistController.ArtistControllerInterface
	Venue          venueController.VenueControllerInterface
	Event          eventController.EventControllerInterface
	Classification classificationController.ClassificationControllerInterface
	Suggest        suggestController.SuggestControllerInterface
	Favorite       favoriteController.FavoriteControllerInterface
	Review         reviewController.ReviewControllerInterface
}

func New(services services.Service, repos repositories.Repository) Controllers {
	return Controllers{
		Artist:         artistController.New(services),
		Venue:          venueController.New(services),
		Event:          eventController.New(services),
		Classification: classificationController.New(services),
		Suggest:        suggestController.New(services),
		Favorite:       favoriteController.New(repos, services),
		Review:         reviewController.New(repos, services),
	}
}
