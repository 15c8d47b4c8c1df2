package services

import (
	"strings"

	"eventaggregator/internal/types"

	"github.com/shopspring/decimal"
)

// Projections are pure and total: every nested lookup tolerates absence and
// yields nil, which renders as null.

func ProjectAll[T, V any](records []T, project func(T) V) []V {
	views := make([]V, 0, len(records))
	for _, record := range records {
		views = append(views, project(record))
	}
	return views
}

func ProjectArtist(attraction types.Attraction) types.ArtistView {
	segment := firstSegment(attraction.Classifications)
	genre := firstGenre(attraction.Classifications)

	return types.ArtistView{
		Name:        attraction.Name,
		ID:          attraction.ID,
		Images:      firstImage(attraction.Images),
		CategoryID:  segmentField(segment, func(s *types.Segment) *string { return s.ID }),
		Category:    segmentField(segment, func(s *types.Segment) *string { return s.Name }),
		GenreID:     refField(genre, func(r *types.NamedRef) *string { return r.ID }),
		Genre:       refField(genre, func(r *types.NamedRef) *string { return r.Name }),
		URL:         linkURL(attraction.ExternalLinks, types.LinkHomepage),
		Youtube:     linkURL(attraction.ExternalLinks, types.LinkYoutube),
		Twitter:     linkURL(attraction.ExternalLinks, types.LinkTwitter),
		MusicBrainz: linkID(attraction.ExternalLinks, types.LinkMusicBrainz),
		Wiki:        linkURL(attraction.ExternalLinks, types.LinkWiki),
		Spotify:     linkURL(attraction.ExternalLinks, types.LinkSpotify),
		Facebook:    linkURL(attraction.ExternalLinks, types.LinkFacebook),
		Instagram:   linkURL(attraction.ExternalLinks, types.LinkInstagram),
	}
}

func ProjectVenue(venue types.Venue) types.VenueView {
	view := types.VenueView{
		Name:    venue.Name,
		ID:      venue.ID,
		Images:  firstImage(venue.Images),
		City:    named(venue.City),
		State:   named(venue.State),
		Country: named(venue.Country),
		ZipCode: venue.PostalCode,
	}
	if venue.Address != nil {
		view.Address = venue.Address.Line1
	}
	if venue.Location != nil {
		view.Longitude = parseCoordinate(venue.Location.Longitude)
		view.Latitude = parseCoordinate(venue.Location.Latitude)
	}
	return view
}

func ProjectArtistRef(attraction types.Attraction) types.ArtistRef {
	return types.ArtistRef{
		Name:   attraction.Name,
		ID:     attraction.ID,
		Images: firstImage(attraction.Images),
	}
}

func ProjectEvent(event types.Event) types.EventView {
	view := types.EventView{
		EventCore: projectEventCore(event),
		Artists:   []types.ArtistRef{},
	}

	if event.Embedded == nil {
		return view
	}

	if len(event.Embedded.Attractions) > 0 {
		view.EventArtist = projectEventArtist(event.Embedded.Attractions[0])
		view.Artists = ProjectAll(event.Embedded.Attractions, ProjectArtistRef)
	}
	if len(event.Embedded.Venues) > 0 {
		view.EventVenue = projectEventVenue(event.Embedded.Venues[0])
	}

	return view
}

func ProjectEventDetail(event types.Event) types.EventDetailView {
	view := types.EventDetailView{EventCore: projectEventCore(event)}

	if event.Embedded == nil {
		return view
	}

	if len(event.Embedded.Attractions) > 0 {
		artist := projectEventArtist(event.Embedded.Attractions[0])
		view.EventArtist = &artist
		view.Artists = ProjectAll(event.Embedded.Attractions, ProjectArtistRef)
	}
	if len(event.Embedded.Venues) > 0 {
		venue := projectEventVenue(event.Embedded.Venues[0])
		view.EventVenue = &venue
	}

	return view
}

// ProjectClassifications keeps only segment-typed classifications.
func ProjectClassifications(records []types.ClassificationRecord) []types.ClassificationView {
	views := make([]types.ClassificationView, 0, len(records))
	for _, record := range records {
		if record.Segment == nil {
			continue
		}
		views = append(views, types.ClassificationView{
			ID:   record.Segment.ID,
			Name: record.Segment.Name,
		})
	}
	return views
}

// ProjectGenres flattens every segment's embedded genres into one list.
func ProjectGenres(records []types.ClassificationRecord) []types.GenreView {
	views := make([]types.GenreView, 0)
	for _, record := range records {
		if record.Segment == nil || record.Segment.Embedded == nil {
			continue
		}
		for _, genre := range record.Segment.Embedded.Genres {
			views = append(views, types.GenreView{ID: genre.ID, Name: genre.Name})
		}
	}
	return views
}

func projectEventCore(event types.Event) types.EventCore {
	segment := firstSegment(event.Classifications)
	genre := firstGenre(event.Classifications)

	core := types.EventCore{
		Name:       event.Name,
		ID:         event.ID,
		URL:        event.URL,
		Images:     firstImage(event.Images),
		CategoryID: segmentField(segment, func(s *types.Segment) *string { return s.ID }),
		Category:   segmentField(segment, func(s *types.Segment) *string { return s.Name }),
		GenreID:    refField(genre, func(r *types.NamedRef) *string { return r.ID }),
		Genre:      refField(genre, func(r *types.NamedRef) *string { return r.Name }),
	}
	if event.Dates != nil && event.Dates.Start != nil {
		core.StartDate = event.Dates.Start.LocalDate
		core.StartTime = event.Dates.Start.LocalTime
	}
	return core
}

func projectEventArtist(attraction types.Attraction) types.EventArtist {
	return types.EventArtist{
		ArtistID:    attraction.ID,
		ArtistName:  attraction.Name,
		ArtistURL:   linkURL(attraction.ExternalLinks, types.LinkHomepage),
		ArtistImage: firstImage(attraction.Images),
	}
}

func projectEventVenue(venue types.Venue) types.EventVenue {
	view := types.EventVenue{
		VenueName: venue.Name,
		VenueID:   venue.ID,
		City:      named(venue.City),
		State:     named(venue.State),
		Country:   named(venue.Country),
		ZipCode:   venue.PostalCode,
	}
	if venue.Address != nil {
		view.Address = venue.Address.Line1
	}
	return view
}

func firstImage(images []types.Image) *string {
	if len(images) == 0 {
		return nil
	}
	return images[0].URL
}

func firstSegment(classifications []types.Classification) *types.Segment {
	if len(classifications) == 0 {
		return nil
	}
	return classifications[0].Segment
}

func firstGenre(classifications []types.Classification) *types.NamedRef {
	if len(classifications) == 0 {
		return nil
	}
	return classifications[0].Genre
}

func segmentField(segment *types.Segment, field func(*types.Segment) *string) *string {
	if segment == nil {
		return nil
	}
	return field(segment)
}

func refField(ref *types.NamedRef, field func(*types.NamedRef) *string) *string {
	if ref == nil {
		return nil
	}
	return field(ref)
}

func linkURL(links types.ExternalLinks, name string) *string {
	entries := links[name]
	if len(entries) == 0 {
		return nil
	}
	return entries[0].URL
}

// musicbrainz entries carry an id rather than a url.
func linkID(links types.ExternalLinks, name string) *string {
	entries := links[name]
	if len(entries) == 0 {
		return nil
	}
	return entries[0].ID
}

func named(n *types.Named) *string {
	if n == nil {
		return nil
	}
	return n.Name
}

func parseCoordinate(raw *string) *decimal.Decimal {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil
	}
	value, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil
	}
	return &value
}
