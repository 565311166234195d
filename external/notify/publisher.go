package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/fieldcircle/cricket-admin/internal/platform/logging"
	"github.com/fieldcircle/cricket-admin/internal/platform/resilience"
	"github.com/fieldcircle/cricket-admin/internal/usecase"
)

var errNotifyTransient = crerr.New("transition webhook transient failure")

type PublisherConfig struct {
	HTTPClient     *http.Client
	WebhookURL     string
	Token          string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Publisher posts powerplay transitions to the platform webhook so the public
// scoreboard picks up fielding-restriction changes without polling.
type Publisher struct {
	httpClient     *http.Client
	webhookURL     string
	token          string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewPublisher(cfg PublisherConfig) *Publisher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 5 * time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Publisher{
		httpClient:     httpClient,
		webhookURL:     strings.TrimSpace(cfg.WebhookURL),
		token:          strings.TrimSpace(cfg.Token),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (p *Publisher) NotifyTransition(ctx context.Context, transition usecase.PowerplayTransition) error {
	if p.webhookURL == "" {
		return nil
	}
	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "transition webhook circuit breaker rejected request", "state", p.breaker.State())
			return fmt.Errorf("transition webhook is temporarily unavailable: %w", err)
		}
	}

	body, err := sonic.Marshal(transition)
	if err != nil {
		return crerr.Wrap(err, "marshal transition payload")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.webhookURL, strings.NewReader(buf.String()))
	if err != nil {
		return crerr.Wrap(err, "create transition webhook request")
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		callErr := fmt.Errorf("%w: post transition match=%s powerplay=%s: %v",
			errNotifyTransient, transition.MatchID, transition.RecordID, err)
		p.recordCircuitResult(callErr)
		return callErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		callErr := fmt.Errorf("%w: post transition status=%d match=%s powerplay=%s body=%s",
			errNotifyTransient, resp.StatusCode, transition.MatchID, transition.RecordID,
			strings.TrimSpace(string(raw)))
		p.recordCircuitResult(callErr)
		return callErr
	}

	p.recordCircuitResult(nil)
	return nil
}

func (p *Publisher) recordCircuitResult(err error) {
	if !p.circuitEnabled || p.breaker == nil {
		return
	}
	if err == nil {
		p.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errNotifyTransient) {
		p.breaker.RecordFailure()
		return
	}
	p.breaker.RecordSuccess()
}
