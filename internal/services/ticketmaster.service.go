package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"eventaggregator/config"
	"eventaggregator/internal/metrics"
	"eventaggregator/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	RateLimitAvailableHeader = "Rate-Limit-Available"
	RateLimitResetHeader     = "Rate-Limit-Reset"

	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
	maxResponseBytes        = 16 << 20
)

// errUpstreamServer marks responses the breaker should count as failures.
var errUpstreamServer = errors.New("upstream server error")

type TicketmasterOptions struct {
	BaseURL           string
	APIKey            string
	CountryCode       string
	PageSize          int
	Timeout           time.Duration
	RequestsPerSecond int
}

func TicketmasterOptionsFromConfig(cfg config.Config) TicketmasterOptions {
	return TicketmasterOptions{
		BaseURL:           cfg.TicketmasterBaseURL,
		APIKey:            cfg.TicketmasterAPIKey,
		CountryCode:       cfg.TicketmasterCountryCode,
		PageSize:          cfg.TicketmasterPageSize,
		Timeout:           time.Duration(cfg.TicketmasterTimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.UpstreamRequestsPerSecond,
	}
}

type upstreamResponse struct {
	status int
	body   []byte
}

type pageEnvelope struct {
	Embedded map[string]json.RawMessage `json:"_embedded"`
	Page     *types.PageInfo            `json:"page"`
}

// TicketmasterService issues single requests against the Discovery API. It
// never retries; every response feeds the shared rate budget.
type TicketmasterService struct {
	client      *http.Client
	baseURL     string
	apiKey      string
	countryCode string
	pageSize    int
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[*upstreamResponse]
	budget      *RateBudgetService
	log         logger.Logger
}

func NewTicketmasterService(opts TicketmasterOptions, budget *RateBudgetService) *TicketmasterService {
	log := logger.New("TicketmasterService")

	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = config.DefaultUpstreamRequestsPerSecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Duration(config.DefaultTicketmasterTimeout) * time.Second
	}
	if opts.PageSize <= 0 {
		opts.PageSize = config.DefaultTicketmasterPageSize
	}

	breaker := gobreaker.NewCircuitBreaker[*upstreamResponse](gobreaker.Settings{
		Name:        "ticketmaster",
		MaxRequests: 1,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
			metrics.UpstreamCircuitState.Set(float64(to))
		},
	})

	return &TicketmasterService{
		client:      &http.Client{Timeout: opts.Timeout},
		baseURL:     opts.BaseURL,
		apiKey:      opts.APIKey,
		countryCode: opts.CountryCode,
		pageSize:    opts.PageSize,
		limiter:     rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.RequestsPerSecond),
		breaker:     breaker,
		budget:      budget,
		log:         log,
	}
}

func (t *TicketmasterService) PageSize() int {
	return t.pageSize
}

// FetchPage returns the raw embedded array for one listing page. A page past
// the end of the listing yields nil. The caller must already hold a unit of
// rate budget.
func (t *TicketmasterService) FetchPage(
	ctx context.Context,
	resource types.Resource,
	page int,
	query url.Values,
) (json.RawMessage, error) {
	log := t.log.TraceFromContext(ctx).Function("FetchPage")

	params := cloneQuery(query)
	params.Set("page", strconv.Itoa(page))
	if params.Get("size") == "" {
		params.Set("size", strconv.Itoa(t.pageSize))
	}

	resp, err := t.get(ctx, resource, resource.Path(), params)
	if err != nil {
		return nil, err
	}

	var envelope pageEnvelope
	if err := json.Unmarshal(resp.body, &envelope); err != nil {
		return nil, log.Err("failed to decode page", &types.UpstreamProtocolError{
			Resource: string(resource),
			Status:   resp.status,
			Err:      err,
		}, "page", page)
	}

	items, ok := envelope.Embedded[resource.EmbeddedKey()]
	if !ok {
		if envelope.Page.Exhausted() {
			log.Debug("Listing exhausted", "resource", resource, "page", page)
			return nil, nil
		}
		return nil, log.Err("page missing embedded collection", &types.UpstreamProtocolError{
			Resource: string(resource),
			Status:   resp.status,
			Err:      fmt.Errorf("missing _embedded.%s", resource.EmbeddedKey()),
		}, "page", page)
	}

	return items, nil
}

// FetchByID loads a single record into out, consuming one unit of budget.
func (t *TicketmasterService) FetchByID(
	ctx context.Context,
	resource types.Resource,
	id string,
	out any,
) error {
	log := t.log.TraceFromContext(ctx).Function("FetchByID")

	if err := t.budget.Acquire(ctx); err != nil {
		return err
	}

	resp, err := t.get(ctx, resource, resource.ItemPath(url.PathEscape(id)), url.Values{})
	if err != nil {
		var protocolErr *types.UpstreamProtocolError
		if errors.As(err, &protocolErr) && protocolErr.Status == http.StatusNotFound {
			return types.NewNotFoundError(string(resource), id)
		}
		return err
	}

	if err := json.Unmarshal(resp.body, out); err != nil {
		return log.Err("failed to decode record", &types.UpstreamProtocolError{
			Resource: string(resource),
			Status:   resp.status,
			Err:      err,
		}, "id", id)
	}

	return nil
}

// FetchClassifications loads the first page of the classification taxonomy.
func (t *TicketmasterService) FetchClassifications(
	ctx context.Context,
) ([]types.ClassificationRecord, error) {
	log := t.log.TraceFromContext(ctx).Function("FetchClassifications")

	if err := t.budget.Acquire(ctx); err != nil {
		return nil, err
	}

	raw, err := t.FetchPage(ctx, types.ResourceClassifications, 0, nil)
	if err != nil {
		return nil, err
	}

	var records []types.ClassificationRecord
	if err := decodeItems(raw, &records); err != nil {
		return nil, log.Err("failed to decode classifications", &types.UpstreamProtocolError{
			Resource: string(types.ResourceClassifications),
			Err:      err,
		})
	}

	return records, nil
}

func (t *TicketmasterService) get(
	ctx context.Context,
	resource types.Resource,
	path string,
	params url.Values,
) (*upstreamResponse, error) {
	log := t.log.TraceFromContext(ctx).Function("get")

	if err := t.limiter.Wait(ctx); err != nil {
		// Wait fails early when the next token lands past the deadline.
		if _, ok := ctx.Deadline(); ok && ctx.Err() == nil {
			err = fmt.Errorf("%w: %v", context.DeadlineExceeded, err)
		}
		return nil, log.Err("rate limiter wait failed", err, "resource", resource)
	}

	params.Set("apikey", t.apiKey)
	if t.countryCode != "" {
		params.Set("countryCode", t.countryCode)
	}
	endpoint := t.baseURL + path + "?" + params.Encode()

	start := time.Now()
	resp, err := t.breaker.Execute(func() (*upstreamResponse, error) {
		return t.do(ctx, endpoint)
	})
	if resp != nil {
		metrics.RecordUpstreamRequest(string(resource), resp.status, time.Since(start))
	} else {
		metrics.RecordUpstreamRequest(string(resource), 0, time.Since(start))
	}

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, log.Err("circuit breaker rejected request", &types.UpstreamProtocolError{
			Resource: string(resource),
			Status:   http.StatusServiceUnavailable,
			Err:      fmt.Errorf("%w: %v", types.ErrUpstreamUnavailable, err),
		})
	case err != nil && resp == nil:
		if ctx.Err() != nil {
			return nil, log.Err("request cancelled", ctx.Err(), "resource", resource)
		}
		return nil, log.Err("request failed", &types.UpstreamProtocolError{
			Resource: string(resource),
			Err:      err,
		})
	}

	if resp.status < 200 || resp.status >= 300 {
		_ = log.Error("Ticketmaster API error", "resource", resource, "statusCode", resp.status)
		return nil, &types.UpstreamProtocolError{Resource: string(resource), Status: resp.status}
	}

	return resp, nil
}

func (t *TicketmasterService) do(ctx context.Context, endpoint string) (*upstreamResponse, error) {
	log := t.log.Function("do")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	t.observeHeaders(resp.Header)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	result := &upstreamResponse{status: resp.StatusCode, body: body}
	if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
		return result, errUpstreamServer
	}
	return result, nil
}

func (t *TicketmasterService) observeHeaders(header http.Header) {
	if t.budget == nil {
		return
	}

	if raw := header.Get(RateLimitAvailableHeader); raw != "" {
		if available, err := strconv.Atoi(raw); err == nil {
			t.budget.Observe(&available)
		} else {
			t.log.Warn("Ignoring malformed rate limit header", "value", raw)
		}
	}

	if raw := header.Get(RateLimitResetHeader); raw != "" {
		if millis, err := strconv.ParseInt(raw, 10, 64); err == nil {
			t.budget.ObserveReset(time.UnixMilli(millis))
		}
	}
}

func cloneQuery(query url.Values) url.Values {
	params := url.Values{}
	for key, values := range query {
		params[key] = append([]string(nil), values...)
	}
	return params
}

func decodeItems[T any](raw json.RawMessage, out *[]T) error {
	if len(raw) == 0 {
		*out = nil
		return nil
	}
	return json.Unmarshal(raw, out)
}
