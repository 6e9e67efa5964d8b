// Package webhook delivers rating activity to an external HTTP consumer.
// Delivery is best effort: the caller treats every error as log-and-continue,
// and a circuit breaker stops hammering a dead endpoint.
package webhook

import (
	"context"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/ballboxd/ballboxd/internal/platform/logging"
	"github.com/ballboxd/ballboxd/internal/platform/resilience"
	"github.com/ballboxd/ballboxd/internal/usecase"
)

type Config struct {
	URL       string
	AuthToken string
	Timeout   time.Duration
}

type Publisher struct {
	client  *fasthttp.Client
	url     string
	token   string
	timeout time.Duration
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewPublisher(cfg Config, breaker *resilience.CircuitBreaker, logger *logging.Logger) *Publisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Publisher{
		client:  &fasthttp.Client{},
		url:     strings.TrimSpace(cfg.URL),
		token:   strings.TrimSpace(cfg.AuthToken),
		timeout: timeout,
		breaker: breaker,
		logger:  logger,
	}
}

// RatingCreated posts the event as JSON. The context is only consulted for
// early cancellation; fasthttp enforces the timeout itself.
func (p *Publisher) RatingCreated(ctx context.Context, event usecase.RatingActivity) error {
	if p.url == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if p.breaker != nil {
		if err := p.breaker.Allow(); err != nil {
			return errors.Wrap(usecase.ErrDependencyUnavailable, "webhook circuit open")
		}
	}

	err := p.post(event)
	if p.breaker != nil {
		if err != nil {
			p.breaker.RecordFailure()
		} else {
			p.breaker.RecordSuccess()
		}
	}
	if err != nil {
		return err
	}

	p.logger.DebugContext(ctx, "rating activity delivered",
		"rating_id", event.RatingID,
		"match_id", event.MatchID,
	)

	return nil
}

func (p *Publisher) post(event usecase.RatingActivity) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(event); err != nil {
		return errors.Wrap(err, "encode rating activity")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.SetBody(buf.Bytes())

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		return errors.Wrap(err, "post rating activity")
	}
	if resp.StatusCode()/100 != 2 {
		return errors.Newf("webhook responded with status %d", resp.StatusCode())
	}

	return nil
}
