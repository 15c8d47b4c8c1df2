package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"eventaggregator/internal/metrics"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

const DefaultMaxPages = 5

// PageFunc fetches one page of records. An empty slice ends the listing.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// BudgetGate is consulted once before every page fetch.
type BudgetGate interface {
	Acquire(ctx context.Context) error
}

type CollectOptions[T any] struct {
	Resource    types.Resource
	TargetCount int
	MaxPages    int
	Filter      func(T) bool
	Timeout     time.Duration
}

// Collect walks pages from 0 upward until TargetCount matching records are
// gathered, MaxPages pages were fetched, or a page comes back empty. Any
// page error aborts the walk and nothing gathered so far is returned.
func Collect[T any](
	ctx context.Context,
	gate BudgetGate,
	fetch PageFunc[T],
	opts CollectOptions[T],
) ([]T, error) {
	log := logger.New("Pagination").TraceFromContext(ctx).Function("Collect")

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	results := make([]T, 0)
	page := 0
	for len(results) < opts.TargetCount && page < opts.MaxPages {
		if err := gate.Acquire(ctx); err != nil {
			metrics.AggregationErrors.WithLabelValues(string(opts.Resource)).Inc()
			return nil, log.Err("failed to acquire rate budget", err, "resource", opts.Resource, "page", page)
		}

		records, err := fetch(ctx, page)
		if err != nil {
			metrics.AggregationErrors.WithLabelValues(string(opts.Resource)).Inc()
			return nil, log.Err("page fetch failed", err, "resource", opts.Resource, "page", page)
		}
		page++

		if len(records) == 0 {
			break
		}

		for _, record := range records {
			if opts.Filter == nil || opts.Filter(record) {
				results = append(results, record)
			}
		}
	}

	metrics.AggregationPages.WithLabelValues(string(opts.Resource)).Observe(float64(page))
	log.Debug("Aggregation complete", "resource", opts.Resource, "pages", page, "records", len(results))

	if len(results) > opts.TargetCount {
		results = results[:opts.TargetCount]
	}

	return results, nil
}

// PageSource adapts the Ticketmaster listing for resource into a PageFunc.
func PageSource[T any](
	tm *TicketmasterService,
	resource types.Resource,
	query url.Values,
) PageFunc[T] {
	return func(ctx context.Context, page int) ([]T, error) {
		raw, err := tm.FetchPage(ctx, resource, page, query)
		if err != nil {
			return nil, err
		}

		var records []T
		if err := decodeItems(raw, &records); err != nil {
			return nil, &types.UpstreamProtocolError{Resource: string(resource), Err: err}
		}
		return records, nil
	}
}

func EventHasAttraction(attractionID string) func(types.Event) bool {
	return func(event types.Event) bool {
		if event.Embedded == nil {
			return false
		}
		for _, attraction := range event.Embedded.Attractions {
			if deref(attraction.ID) == attractionID {
				return true
			}
		}
		return false
	}
}

func EventAtVenue(venueID string) func(types.Event) bool {
	return func(event types.Event) bool {
		if event.Embedded == nil {
			return false
		}
		for _, venue := range event.Embedded.Venues {
			if deref(venue.ID) == venueID {
				return true
			}
		}
		return false
	}
}

// EventInCategory matches any classification whose segment name equals
// categoryName exactly.
func EventInCategory(categoryName string) func(types.Event) bool {
	return func(event types.Event) bool {
		for _, classification := range event.Classifications {
			if classification.Segment != nil && deref(classification.Segment.Name) == categoryName {
				return true
			}
		}
		return false
	}
}

// NameContains matches a case-insensitive substring of name. An empty term
// matches everything.
func NameContains(term string) func(name *string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	return func(name *string) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(deref(name)), needle)
	}
}

func NameEquals(want string) func(name *string) bool {
	want = strings.TrimSpace(want)
	return func(name *string) bool {
		return strings.EqualFold(deref(name), want)
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
