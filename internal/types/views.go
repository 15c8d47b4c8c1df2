package types

import "github.com/shopspring/decimal"

// Projected views. Fields carry no omitempty: an absent upstream value is
// rendered as null so every key is always present.

type ArtistView struct {
	Name        *string `json:"name"`
	ID          *string `json:"id"`
	Images      *string `json:"images"`
	CategoryID  *string `json:"categoryId"`
	Category    *string `json:"category"`
	GenreID     *string `json:"genreId"`
	Genre       *string `json:"genre"`
	URL         *string `json:"url"`
	Youtube     *string `json:"youtube"`
	Twitter     *string `json:"twitter"`
	MusicBrainz *string `json:"musicbrainz"`
	Wiki        *string `json:"wiki"`
	Spotify     *string `json:"spotify"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
}

type VenueView struct {
	Name      *string          `json:"name"`
	ID        *string          `json:"id"`
	Images    *string          `json:"images"`
	Address   *string          `json:"address"`
	City      *string          `json:"city"`
	State     *string          `json:"state"`
	Country   *string          `json:"country"`
	ZipCode   *string          `json:"zipCode"`
	Longitude *decimal.Decimal `json:"longitude"`
	Latitude  *decimal.Decimal `json:"latitude"`
}

type ArtistRef struct {
	Name   *string `json:"name"`
	ID     *string `json:"id"`
	Images *string `json:"images"`
}

// EventVenue is the venue block of an event, taken from its first venue.
type EventVenue struct {
	VenueName *string `json:"venueName"`
	VenueID   *string `json:"venueId"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Country   *string `json:"country"`
	ZipCode   *string `json:"zipCode"`
}

// EventArtist is the headline artist block, taken from the first attraction.
type EventArtist struct {
	ArtistID    *string `json:"artistId"`
	ArtistName  *string `json:"artistName"`
	ArtistURL   *string `json:"artistUrl"`
	ArtistImage *string `json:"artistImage"`
}

type EventCore struct {
	Name       *string `json:"name"`
	ID         *string `json:"id"`
	URL        *string `json:"url"`
	Images     *string `json:"images"`
	StartDate  *string `json:"startDate"`
	StartTime  *string `json:"startTime"`
	CategoryID *string `json:"categoryId"`
	Category   *string `json:"category"`
	GenreID    *string `json:"genreId"`
	Genre      *string `json:"genre"`
}

// EventView is the list shape: artist and venue keys are always present.
type EventView struct {
	EventCore
	EventArtist
	EventVenue
	Artists []ArtistRef `json:"artists"`
}

// EventDetailView only carries the artist and venue blocks when the event
// embeds at least one attraction or venue.
type EventDetailView struct {
	EventCore
	*EventArtist
	*EventVenue
	Artists []ArtistRef `json:"artists,omitempty"`
}

type ClassificationView struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

type GenreView struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}
