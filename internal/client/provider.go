package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/metrics"
	"github.com/Shuvikm/sonyliv-clone/internal/parser"
)

const (
	providerTMDB = "tmdb"
	providerNews = "news"
)

// provider holds the endpoint and credentials of one upstream API
type provider struct {
	name    string
	baseURL string
	apiKey  string
	breaker circuitbreaker.CircuitBreaker[any]
}

func newTMDBProvider(baseURL, apiKey string, breaker circuitbreaker.CircuitBreaker[any]) provider {
	if baseURL == "" {
		baseURL = "https://api.themoviedb.org/3"
	}
	return provider{name: providerTMDB, baseURL: strings.TrimRight(baseURL, "/"), apiKey: strings.TrimSpace(apiKey), breaker: breaker}
}

func newNewsProvider(baseURL, apiKey string, breaker circuitbreaker.CircuitBreaker[any]) provider {
	if baseURL == "" {
		baseURL = "https://newsapi.org/v2"
	}
	return provider{name: providerNews, baseURL: strings.TrimRight(baseURL, "/"), apiKey: strings.TrimSpace(apiKey), breaker: breaker}
}

func (p provider) configured() bool {
	return p.apiKey != ""
}

// url builds the request URL without credentials, which doubles as the cache key.
func (p provider) url(path string, query url.Values) string {
	u := p.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// authorize attaches credentials. TMDB v4 read tokens are JWTs and go in the
// Authorization header; v3 keys go in the api_key query parameter.
func (p provider) authorize(req *http.Request) {
	switch p.name {
	case providerNews:
		req.Header.Set("X-Api-Key", p.apiKey)
	default:
		if strings.Contains(p.apiKey, ".") {
			req.Header.Set("Authorization", "Bearer "+p.apiKey)
			return
		}
		q := req.URL.Query()
		q.Set("api_key", p.apiKey)
		req.URL.RawQuery = q.Encode()
	}
}

// fetchPage performs an authenticated GET and returns the UTF-8 body bytes.
// Successful bodies are served from and stored in the response cache. Every
// request that passes the provider's breaker records exactly one outcome on it.
func (c *client) fetchPage(ctx context.Context, p provider, path string, query url.Values) ([]byte, error) {
	logger := config.GetLogger()
	target := p.url(path, query)
	cacheKey := p.name + ":" + target

	if c.responseCache != nil {
		if body, ok := c.responseCache.Get(cacheKey); ok {
			metrics.ProviderRequestsTotal.WithLabelValues(p.name, "cached").Inc()
			logger.Debug().Str("url", target).Msg("Provider response served from cache")
			return body, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", config.GetUserAgent())
	req.Header.Set("Accept", "application/json")
	p.authorize(req)

	if p.breaker != nil && !p.breaker.TryAcquirePermit() {
		metrics.ProviderRequestsTotal.WithLabelValues(p.name, "circuit_open").Inc()
		return nil, &apperrors.ErrUnavailable{Dependency: p.name}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ProviderRequestDuration.WithLabelValues(p.name).Observe(time.Since(start).Seconds())
	if err != nil {
		// A cancelled caller says nothing about the provider's health.
		p.record(ctx.Err() == nil)
		metrics.ProviderRequestsTotal.WithLabelValues(p.name, "error").Inc()
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.record(upstreamFailure(resp.StatusCode))
		metrics.ProviderRequestsTotal.WithLabelValues(p.name, "error").Inc()
		return nil, &apperrors.ErrProviderStatus{Provider: p.name, URL: target, StatusCode: resp.StatusCode}
	}

	reader, err := parser.NewUTF8Reader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		p.record(true)
		metrics.ProviderRequestsTotal.WithLabelValues(p.name, "error").Inc()
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		p.record(ctx.Err() == nil)
		metrics.ProviderRequestsTotal.WithLabelValues(p.name, "error").Inc()
		return nil, fmt.Errorf("read body: %w", err)
	}

	p.record(false)
	metrics.ProviderRequestsTotal.WithLabelValues(p.name, "ok").Inc()
	if c.responseCache != nil {
		c.responseCache.Set(cacheKey, body)
	}
	return body, nil
}

// record reports one request outcome to the provider's breaker.
func (p provider) record(failed bool) {
	if p.breaker == nil {
		return
	}
	if failed {
		p.breaker.RecordFailure()
		return
	}
	p.breaker.RecordSuccess()
}
