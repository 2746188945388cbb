// Package fetch is the host-side request layer the extraction core
// delegates to: anti-bot transport, outbound rate limiting and manual
// clearance-cookie injection live here, never in the adapters.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/corvind/mangasrc/internal/markup"
)

var ErrEmptyCookie = errors.New("fetch: cookie value must not be empty")

type Options struct {
	Timeout           time.Duration
	UserAgent         string
	RequestsPerMinute int
	Retries           int
	DebugLogger       interface {
		Debugf(string, ...any)
	}
}

type Client struct {
	http    *http.Client
	retries int
	log     interface{ Debugf(string, ...any) }
}

func NewClient(opts Options) *Client {
	jar, _ := cookiejar.New(nil)

	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.RequestsPerMinute <= 0 {
		opts.RequestsPerMinute = 20
	}
	if opts.Retries <= 0 {
		opts.Retries = 3
	}

	base := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
		MaxIdleConnsPerHost: 100,
		ForceAttemptHTTP2:   true,
	}

	rt := roundTripper{
		base:    cloudflarebp.AddCloudFlareByPass(base),
		ua:      opts.UserAgent,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.RequestsPerMinute)), opts.RequestsPerMinute),
		log:     opts.DebugLogger,
	}

	return &Client{
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: rt,
			Jar:       jar,
		},
		retries: opts.Retries,
		log:     opts.DebugLogger,
	}
}

type roundTripper struct {
	base    http.RoundTripper
	ua      string
	limiter *rate.Limiter
	log     interface{ Debugf(string, ...any) }
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.ua != "" {
		req.Header.Set("User-Agent", rt.ua)
	}

	// Page documents are throttled; image payloads are exempt so a
	// chapter pull is not serialized behind the limiter.
	if !isImageRequest(req) {
		if err := rt.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	if rt.log != nil {
		rt.log.Debugf("HTTP %s %s\n", req.Method, req.URL.String())
	}

	return rt.base.RoundTrip(req)
}

var imageExts = []string{".jpg", ".jpeg", ".png", ".webp", ".gif", ".avif"}

func isImageRequest(req *http.Request) bool {
	p := strings.ToLower(req.URL.Path)
	for _, ext := range imageExts {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}

	return false
}

// Cookie is one manually injected credential, typically cf_clearance.
type Cookie struct {
	Name   string
	Value  string
	Domain string
	Path   string
	Expiry time.Time
}

// SetCookie stores a credential cookie in the client jar. An empty value
// is a rejected precondition, not a silent no-op.
func (c *Client) SetCookie(ck Cookie) error {
	if strings.TrimSpace(ck.Value) == "" {
		return ErrEmptyCookie
	}
	if ck.Name == "" {
		ck.Name = "cf_clearance"
	}
	if ck.Path == "" {
		ck.Path = "/"
	}

	u, err := url.Parse("https://" + strings.TrimPrefix(strings.TrimPrefix(ck.Domain, "https://"), "http://"))
	if err != nil {
		return fmt.Errorf("fetch: bad cookie domain %q: %w", ck.Domain, err)
	}

	c.http.Jar.SetCookies(u, []*http.Cookie{{
		Name:    ck.Name,
		Value:   ck.Value,
		Domain:  u.Hostname(),
		Path:    ck.Path,
		Expires: ck.Expiry,
	}})

	return nil
}

// GetDocument fetches url and parses the body into a document tree.
func (c *Client) GetDocument(ctx context.Context, target string) (*goquery.Document, error) {
	raw, err := c.GetBytes(ctx, target)
	if err != nil {
		return nil, err
	}

	return markup.Load(raw)
}

// GetBytes fetches url with the client's retry policy and returns the
// raw body.
func (c *Client) GetBytes(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doWithRetry(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return io.ReadAll(resp.Body)
}

// Get issues a plain request (used for image payloads); the caller owns
// the response body.
func (c *Client) Get(ctx context.Context, target, referer string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	if referer != "" {
		req.Header.Set("Referer", referer)
	}

	return c.http.Do(req)
}

func (c *Client) doWithRetry(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	backoff := 500 * time.Millisecond
	for i := 1; i <= c.retries; i++ {
		resp, err = c.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff * time.Duration(i)):
		}
	}

	if err == nil && resp != nil {
		return nil, fmt.Errorf("HTTP %d after %d attempts", resp.StatusCode, c.retries)
	}

	return nil, err
}

// PickUserAgent falls back to a stable desktop UA when no override is
// configured.
func PickUserAgent(override string) string {
	if override != "" {
		return override
	}

	return "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
}
