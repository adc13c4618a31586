package oewn

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/synsetree/pkg/cache"
	"github.com/matzehuels/synsetree/pkg/lexicon"
	"github.com/matzehuels/synsetree/pkg/observability"
)

const httpTimeout = 5 * time.Minute

// Fetcher downloads releases over HTTP, retrying transient failures and
// keeping the raw bytes in a cache.
type Fetcher struct {
	HTTP   *http.Client
	Cache  cache.Cache
	Keyer  cache.Keyer
	TTL    time.Duration // cache entry lifetime, 0 for no expiry
	Logger *log.Logger
}

// NewFetcher returns a Fetcher using c for caching. A nil c disables it.
func NewFetcher(c cache.Cache, ttl time.Duration, logger *log.Logger) *Fetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Fetcher{
		HTTP:   &http.Client{Timeout: httpTimeout},
		Cache:  c,
		Keyer:  cache.NewDefaultKeyer(),
		TTL:    ttl,
		Logger: logger,
	}
}

// Fetch returns the body at rawURL, from cache when possible. When
// refresh is set the cached copy is ignored and replaced.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string, refresh bool) ([]byte, error) {
	key := f.Keyer.SourceKey(rawURL)
	if !refresh {
		data, hit, err := f.Cache.Get(ctx, key)
		if err != nil {
			f.Logger.Warn("cache read failed", "url", rawURL, "error", err)
		}
		if hit {
			observability.Cache().OnCacheHit(ctx, "source")
			f.Logger.Debug("release cache hit", "url", rawURL, "bytes", len(data))
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "source")
	}

	var data []byte
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, err = f.get(ctx, rawURL)
		if err != nil && cache.IsRetryable(err) {
			f.Logger.Warn("download failed, retrying", "url", rawURL, "error", err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := f.Cache.Set(ctx, key, data, f.TTL); err != nil {
		f.Logger.Warn("cache write failed", "url", rawURL, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "source", len(data))
	}
	return data, nil
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	hooks := observability.HTTP()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "synsetree")

	hooks.OnRequest(ctx, req.Method, u.Host, u.Path)
	start := time.Now()
	resp, err := f.HTTP.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, u.Host, u.Path, err)
		return nil, cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, err))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, u.Host, u.Path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, cache.Retryable(fmt.Errorf("%w: read body: %v", cache.ErrNetwork, err))
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return cache.ErrNotFound
	case code == http.StatusTooManyRequests || code >= 500:
		return cache.Retryable(fmt.Errorf("%w: status %d", cache.ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", cache.ErrNetwork, code)
	}
}

// Load reads a release from src, which may be an http(s) URL, a GWN-LMF
// JSON file (optionally gzipped) or an OEWN JSON directory. The fetcher is
// only used for URLs and may be nil otherwise.
func Load(ctx context.Context, src string, f *Fetcher, refresh bool) ([]lexicon.Synset, Stats, error) {
	if isURL(src) {
		if f == nil {
			return nil, Stats{}, fmt.Errorf("load %s: no fetcher configured", src)
		}
		data, err := f.Fetch(ctx, src, refresh)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("fetch %s: %w", src, err)
		}
		return ParseGWN(bytes.NewReader(data))
	}

	info, err := os.Stat(src)
	if err != nil {
		return nil, Stats{}, err
	}
	if info.IsDir() {
		return ParseDir(src)
	}
	file, err := os.Open(src)
	if err != nil {
		return nil, Stats{}, err
	}
	defer file.Close()
	return ParseGWN(file)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
