package feed

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
	"github.com/fieldcircle/cricket-admin/internal/platform/resilience"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

const defaultBaseURL = "https://feed.fieldcircle.io/v2"

var errFeedTransient = crerr.New("live feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls match state from the upstream scoring feed.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type matchStateEnvelope struct {
	Data struct {
		MatchID        int64  `json:"match_id"`
		Status         string `json:"status"`
		CurrentInnings int    `json:"current_innings"`
		CurrentOver    int    `json:"current_over"`
	} `json:"data"`
}

// FetchMatchState collapses concurrent calls for the same feed match into one
// request; the sweep may ask for the same match from several workers.
func (c *Client) FetchMatchState(ctx context.Context, feedRefID int64) (usecase.FeedMatchState, error) {
	if feedRefID <= 0 {
		return usecase.FeedMatchState{}, crerr.New("feed ref id must be greater than zero")
	}

	key := "match-state:" + strconv.FormatInt(feedRefID, 10)
	value, err, _ := c.flight.Do(key, func() (any, error) {
		return c.fetchMatchState(ctx, feedRefID)
	})
	if err != nil {
		return usecase.FeedMatchState{}, err
	}

	state, _ := value.(usecase.FeedMatchState)
	return state, nil
}

func (c *Client) fetchMatchState(ctx context.Context, feedRefID int64) (usecase.FeedMatchState, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "live feed circuit breaker rejected request", "state", c.breaker.State())
			return usecase.FeedMatchState{}, fmt.Errorf("live feed is temporarily unavailable: %w", err)
		}
	}

	requestURL := fmt.Sprintf("%s/matches/%d/state", c.baseURL, feedRefID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return usecase.FeedMatchState{}, crerr.Wrap(err, "create feed request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: fetch match state feed_ref_id=%d: %v", errFeedTransient, feedRefID, err)
		c.recordCircuitResult(callErr)
		return usecase.FeedMatchState{}, callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		callErr := fmt.Errorf("%w: read match state body feed_ref_id=%d: %v", errFeedTransient, feedRefID, err)
		c.recordCircuitResult(callErr)
		return usecase.FeedMatchState{}, callErr
	}

	if resp.StatusCode/100 != 2 {
		if isRetryableStatus(resp.StatusCode) {
			callErr := fmt.Errorf("%w: fetch match state status=%d feed_ref_id=%d body=%s",
				errFeedTransient, resp.StatusCode, feedRefID, strings.TrimSpace(string(raw)))
			c.recordCircuitResult(callErr)
			return usecase.FeedMatchState{}, callErr
		}
		callErr := fmt.Errorf("fetch match state status=%d feed_ref_id=%d body=%s",
			resp.StatusCode, feedRefID, strings.TrimSpace(string(raw)))
		c.recordCircuitResult(callErr)
		return usecase.FeedMatchState{}, callErr
	}

	var envelope matchStateEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		callErr := crerr.Wrapf(err, "decode match state feed_ref_id=%d", feedRefID)
		c.recordCircuitResult(nil)
		return usecase.FeedMatchState{}, callErr
	}
	c.recordCircuitResult(nil)

	return usecase.FeedMatchState{
		FeedRefID: envelope.Data.MatchID,
		Innings:   envelope.Data.CurrentInnings,
		Over:      envelope.Data.CurrentOver,
		Status:    strings.ToUpper(strings.TrimSpace(envelope.Data.Status)),
	}, nil
}

func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled || c.breaker == nil {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errFeedTransient) {
		c.breaker.RecordFailure()
		return
	}
	c.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
