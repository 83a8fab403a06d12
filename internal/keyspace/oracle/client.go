// Package oracle is the HTTP client of the remote known-address oracle.
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goodnatureofminers/keyspace-explorer/internal/clock"
	"github.com/sony/gobreaker"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records oracle client activity.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		SetConnecting(connecting bool)
		IncMalformed()
	}
	// Doer executes HTTP requests.
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}
)

// MalformedPolicy decides what a 2xx response with an unreadable body means.
type MalformedPolicy string

var (
	// MalformedFailOpen treats the response as "no matches".
	MalformedFailOpen MalformedPolicy = "fail-open"
	// MalformedRetry treats the response like a transport failure.
	MalformedRetry MalformedPolicy = "retry"
)

// ParseMalformedPolicy validates a policy name.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch p := MalformedPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case MalformedFailOpen, MalformedRetry:
		return p, nil
	case "":
		return MalformedFailOpen, nil
	default:
		return "", fmt.Errorf("unsupported malformed response policy %q", s)
	}
}

const (
	checkPath      = "/check"
	balancesPath   = "/balances"
	storeMatchPath = "/store-match"
	matchesPath    = "/matches"

	maxResponseBytes = 16 << 20
)

var errMalformed = errors.New("malformed oracle response")

// Config configures a Client.
type Config struct {
	BaseURL           string
	Backoff           time.Duration
	RequestTimeout    time.Duration
	RequestsPerSecond int
	MalformedPolicy   MalformedPolicy
	// OnConnectivityChange is called when the connecting signal flips.
	OnConnectivityChange func(connecting bool)
}

// Client talks to the match oracle. CheckMatches never gives up on a batch:
// failures raise the connecting signal and are retried after Backoff.
type Client struct {
	baseURL  *url.URL
	http     Doer
	breaker  *gobreaker.CircuitBreaker
	limiter  ratelimit.Limiter
	sleep    clock.Sleeper
	backoff  time.Duration
	policy   MalformedPolicy
	metrics  Metrics
	logger   *zap.Logger
	onChange func(bool)

	mu      sync.Mutex
	failing int
}

// NewClient builds a Client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("oracle base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse oracle url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("oracle url scheme %q not supported", base.Scheme)
	}
	if base.Host == "" {
		return nil, errors.New("oracle url missing host")
	}
	if metrics == nil {
		return nil, errors.New("oracle metrics is required")
	}
	policy := cfg.MalformedPolicy
	if policy == "" {
		policy = MalformedFailOpen
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}

	return &Client{
		baseURL:  base,
		http:     &http.Client{Timeout: timeout},
		breaker:  newBreaker(),
		limiter:  ratelimit.New(rps),
		sleep:    clock.SleepWithContext,
		backoff:  backoff,
		policy:   policy,
		metrics:  metrics,
		logger:   logger.Named("oracle"),
		onChange: cfg.OnConnectivityChange,
	}, nil
}

// Connecting reports whether any CheckMatches call is currently retrying.
func (c *Client) Connecting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failing > 0
}

type checkRequest struct {
	Addresses []string `json:"addresses"`
}

type checkResponse struct {
	Matches []string `json:"matches"`
}

// CheckMatches returns the subset of the normalized addresses known to the
// oracle. It retries until a response is obtained; the only error it
// returns is the context error.
func (c *Client) CheckMatches(ctx context.Context, addresses []string) (map[string]struct{}, error) {
	if len(addresses) == 0 {
		return map[string]struct{}{}, nil
	}
	body, err := json.Marshal(checkRequest{Addresses: addresses})
	if err != nil {
		return nil, fmt.Errorf("encode check request: %w", err)
	}

	failed := false
	defer func() {
		if failed {
			c.leaveFailing()
		}
	}()

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches, err := c.checkOnce(ctx, body)
		if err == nil {
			return matches, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if !failed {
			failed = true
			c.enterFailing()
		}
		c.logger.Warn("match check failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("addresses", len(addresses)),
			zap.Duration("backoff", c.backoff),
			zap.Error(err),
		)
		if err := c.sleep(ctx, c.backoff); err != nil {
			return nil, err
		}
	}
}

func (c *Client) checkOnce(ctx context.Context, body []byte) (_ map[string]struct{}, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("check", err, started)
	}()

	raw, err := c.do(ctx, http.MethodPost, checkPath, body)
	if err != nil {
		return nil, err
	}

	var resp checkResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		c.metrics.IncMalformed()
		if c.policy == MalformedRetry {
			return nil, fmt.Errorf("%w: %v", errMalformed, err)
		}
		c.logger.Warn("malformed check response treated as no matches", zap.Error(err))
		return map[string]struct{}{}, nil
	}

	matches := make(map[string]struct{}, len(resp.Matches))
	for _, m := range resp.Matches {
		matches[m] = struct{}{}
	}
	return matches, nil
}

// do runs one request through the limiter and the circuit breaker and
// returns the body of a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	c.limiter.Take()

	res, err := c.breaker.Execute(func() (interface{}, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		if err != nil {
			return nil, fmt.Errorf("read %s response: %w", path, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, fmt.Errorf("%s %s: http %d", method, path, resp.StatusCode)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return res.([]byte), nil
}

func (c *Client) enterFailing() {
	c.mu.Lock()
	c.failing++
	flipped := c.failing == 1
	c.mu.Unlock()
	if flipped {
		c.signal(true)
	}
}

func (c *Client) leaveFailing() {
	c.mu.Lock()
	c.failing--
	flipped := c.failing == 0
	c.mu.Unlock()
	if flipped {
		c.signal(false)
	}
}

func (c *Client) signal(connecting bool) {
	c.metrics.SetConnecting(connecting)
	if connecting {
		c.logger.Warn("oracle unreachable, reconnecting")
	} else {
		c.logger.Info("oracle connection restored")
	}
	if c.onChange != nil {
		c.onChange(connecting)
	}
}
