package eventController

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"eventaggregator/internal/services"
	"eventaggregator/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstreamEvents serves a fixed listing split into pages of two.
func upstreamEvents(t *testing.T, events []string) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	requests := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if strings.HasPrefix(r.URL.Path, "/events/") {
			if r.URL.Path == "/events/E1.json" {
				_, _ = w.Write([]byte(`{"id": "E1", "name": "Solo Show"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors": []}`))
			return
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		totalPages := (len(events) + 1) / 2
		start := page * 2
		if start >= len(events) {
			fmt.Fprintf(w, `{"page": {"totalElements": %d, "totalPages": %d, "number": %d}}`, len(events), totalPages, page)
			return
		}
		end := min(start+2, len(events))
		fmt.Fprintf(w, `{"_embedded": {"events": [%s]}, "page": {"totalElements": %d, "totalPages": %d, "number": %d}}`,
			strings.Join(events[start:end], ","), len(events), totalPages, page)
	}))
	t.Cleanup(server.Close)

	return server, requests
}

func newController(t *testing.T, server *httptest.Server) *EventController {
	t.Helper()

	budget := services.NewRateBudgetService(100, time.Hour, nil)
	tm := services.NewTicketmasterService(services.TicketmasterOptions{
		BaseURL:           server.URL,
		APIKey:            "test-key",
		CountryCode:       "US",
		PageSize:          2,
		Timeout:           time.Second,
		RequestsPerSecond: 1000,
	}, budget)

	return New(services.Service{
		RateBudget:         budget,
		Ticketmaster:       tm,
		AggregationTimeout: 5 * time.Second,
	}).(*EventController)
}

func event(id, name, artistID, venueID, segment string) string {
	return fmt.Sprintf(`{
		"id": %q, "name": %q,
		"classifications": [{"segment": {"id": "S-%s", "name": %q}}],
		"_embedded": {
			"attractions": [{"id": %q, "name": "Artist %s"}],
			"venues": [{"id": %q, "name": "Venue %s"}]
		}
	}`, id, name, segment, segment, artistID, artistID, venueID, venueID)
}

func ids(views []types.EventView) []string {
	out := make([]string, 0, len(views))
	for _, view := range views {
		out = append(out, *view.ID)
	}
	return out
}

func TestEventController_ByArtistFiltersEachPage(t *testing.T) {
	server, _ := upstreamEvents(t, []string{
		event("E1", "One", "A1", "V1", "Music"),
		event("E2", "Two", "A2", "V1", "Music"),
		event("E3", "Three", "A1", "V2", "Sports"),
		event("E4", "Four", "A3", "V2", "Music"),
		event("E5", "Five", "A1", "V3", "Music"),
	})
	controller := newController(t, server)

	views, err := controller.ByArtist(context.Background(), "A1")

	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E3", "E5"}, ids(views))
	assert.Equal(t, "A1", *views[0].ArtistID)
	assert.Equal(t, "V1", *views[0].VenueID)
}

func TestEventController_ByVenueAndCategory(t *testing.T) {
	server, _ := upstreamEvents(t, []string{
		event("E1", "One", "A1", "V1", "Music"),
		event("E2", "Two", "A2", "V2", "Sports"),
		event("E3", "Three", "A3", "V1", "sports"),
	})
	controller := newController(t, server)

	byVenue, err := controller.ByVenue(context.Background(), "V1")
	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E3"}, ids(byVenue))

	byCategory, err := controller.ByCategory(context.Background(), "Sports")
	require.NoError(t, err)
	assert.Equal(t, []string{"E2"}, ids(byCategory), "segment names match exactly")
}

func TestEventController_MaxPagesBoundsScan(t *testing.T) {
	events := make([]string, 0, 20)
	for i := range 20 {
		events = append(events, event(fmt.Sprintf("E%d", i), "Show", "A-other", "V1", "Music"))
	}
	server, requests := upstreamEvents(t, events)
	controller := newController(t, server)

	views, err := controller.ByArtist(context.Background(), "A-missing")

	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Equal(t, int32(services.DefaultMaxPages), requests.Load())
}

func TestEventController_ListAppliesTerm(t *testing.T) {
	server, _ := upstreamEvents(t, []string{
		event("E1", "Jazz Night", "A1", "V1", "Music"),
		event("E2", "Rock Show", "A2", "V1", "Music"),
		event("E3", "Late JAZZ", "A3", "V1", "Music"),
	})
	controller := newController(t, server)

	views, err := controller.List(context.Background(), "jazz")

	require.NoError(t, err)
	assert.Equal(t, []string{"E1", "E3"}, ids(views))
}

func TestEventController_Get(t *testing.T) {
	server, _ := upstreamEvents(t, nil)
	controller := newController(t, server)

	detail, err := controller.Get(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, "Solo Show", *detail.Name)
	assert.Nil(t, detail.EventVenue)
	assert.Nil(t, detail.EventArtist)

	_, err = controller.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestEventController_UpstreamFailureAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	controller := newController(t, server)

	views, err := controller.List(context.Background(), "")

	assert.Nil(t, views)
	var protocolErr *types.UpstreamProtocolError
	require.ErrorAs(t, err, &protocolErr)
	assert.Equal(t, http.StatusBadGateway, protocolErr.Status)
}
