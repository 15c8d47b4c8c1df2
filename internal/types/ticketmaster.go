package types

// Ticketmaster Discovery records. Every nested field is a pointer or a
// slice because the provider omits keys freely; nothing here is required.

type Image struct {
	URL    *string `json:"url"`
	Ratio  *string `json:"ratio"`
	Width  *int    `json:"width"`
	Height *int    `json:"height"`
}

type NamedRef struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

type SegmentEmbedded struct {
	Genres []NamedRef `json:"genres"`
}

type Segment struct {
	ID       *string          `json:"id"`
	Name     *string          `json:"name"`
	Embedded *SegmentEmbedded `json:"_embedded"`
}

type Classification struct {
	Primary  *bool     `json:"primary"`
	Segment  *Segment  `json:"segment"`
	Genre    *NamedRef `json:"genre"`
	SubGenre *NamedRef `json:"subGenre"`
}

type ExternalLink struct {
	URL *string `json:"url"`
	ID  *string `json:"id"`
}

// ExternalLinks is keyed by provider name (homepage, youtube, musicbrainz...).
type ExternalLinks map[string][]ExternalLink

const (
	LinkHomepage    = "homepage"
	LinkYoutube     = "youtube"
	LinkTwitter     = "twitter"
	LinkMusicBrainz = "musicbrainz"
	LinkWiki        = "wiki"
	LinkSpotify     = "spotify"
	LinkFacebook    = "facebook"
	LinkInstagram   = "instagram"
)

type Attraction struct {
	ID              *string          `json:"id"`
	Name            *string          `json:"name"`
	URL             *string          `json:"url"`
	Images          []Image          `json:"images"`
	Classifications []Classification `json:"classifications"`
	ExternalLinks   ExternalLinks    `json:"externalLinks"`
}

type Named struct {
	Name *string `json:"name"`
}

type Address struct {
	Line1 *string `json:"line1"`
}

// Location coordinates arrive as decimal strings.
type Location struct {
	Longitude *string `json:"longitude"`
	Latitude  *string `json:"latitude"`
}

type Venue struct {
	ID         *string   `json:"id"`
	Name       *string   `json:"name"`
	URL        *string   `json:"url"`
	PostalCode *string   `json:"postalCode"`
	Images     []Image   `json:"images"`
	Address    *Address  `json:"address"`
	City       *Named    `json:"city"`
	State      *Named    `json:"state"`
	Country    *Named    `json:"country"`
	Location   *Location `json:"location"`
}

type EventStart struct {
	LocalDate *string `json:"localDate"`
	LocalTime *string `json:"localTime"`
}

type EventDates struct {
	Start *EventStart `json:"start"`
}

type EventEmbedded struct {
	Venues      []Venue      `json:"venues"`
	Attractions []Attraction `json:"attractions"`
}

type Event struct {
	ID              *string          `json:"id"`
	Name            *string          `json:"name"`
	URL             *string          `json:"url"`
	Images          []Image          `json:"images"`
	Dates           *EventDates      `json:"dates"`
	Classifications []Classification `json:"classifications"`
	Embedded        *EventEmbedded   `json:"_embedded"`
}

// ClassificationRecord is one entry of /classifications.json. Only
// segment-typed entries carry a Segment.
type ClassificationRecord struct {
	Segment *Segment `json:"segment"`
}

// PageInfo is the provider's pagination block.
type PageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Exhausted reports whether the requested page lies past the last one.
func (p *PageInfo) Exhausted() bool {
	if p == nil {
		return false
	}
	return p.TotalElements == 0 || p.Number >= p.TotalPages
}

// Resource names a provider listing and the key its items are embedded under.
type Resource string

const (
	ResourceEvents          Resource = "events"
	ResourceAttractions     Resource = "attractions"
	ResourceVenues          Resource = "venues"
	ResourceClassifications Resource = "classifications"
)

func (r Resource) Path() string {
	return "/" + string(r) + ".json"
}

func (r Resource) ItemPath(id string) string {
	return "/" + string(r) + "/" + id + ".json"
}

func (r Resource) EmbeddedKey() string {
	return string(r)
}
