package client

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/xether-ai/apidocs/cache"
)

const (
	SpecCacheTTL      = 1 * time.Hour
	ChangelogCacheTTL = 24 * time.Hour
)

// ChangelogEntry is one released version in the backend changelog feed.
type ChangelogEntry struct {
	Version string            `json:"version"`
	Date    string            `json:"date"`
	Changes []ChangelogChange `json:"changes"`
}

type ChangelogChange struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	PR          int    `json:"pr,omitempty"`
	Issue       int    `json:"issue,omitempty"`
}

// Client fetches the OpenAPI document and the changelog feed of one
// backend. Successful fetches are cached (1h spec, 24h changelog) keyed
// by URL, and at most one fetch per URL is in flight at a time; callers
// hitting the same cold key wait and read the cached result.
type Client struct {
	backend Backend
	http    *http.Client
	cache   cache.Cacher

	mu       sync.Mutex
	inflight map[string]*sync.Mutex
}

func New(backend Backend, httpClient *http.Client, cacher cache.Cacher) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if cacher == nil {
		cacher = cache.NewNoopCacher()
	}
	return &Client{
		backend:  backend,
		http:     httpClient,
		cache:    cacher,
		inflight: map[string]*sync.Mutex{},
	}
}

func (c *Client) Backend() Backend {
	return c.backend
}

func (c *Client) SpecURL() string {
	return c.backend.BaseUrl + c.backend.OpenApiPath
}

func (c *Client) ChangelogURL() (string, error) {
	if c.backend.ChangelogPath == "" {
		return "", ErrChangelogNotConfigured
	}
	return c.backend.BaseUrl + c.backend.ChangelogPath, nil
}

// FetchOpenAPISpec returns the raw OpenAPI document. The document is
// loosely typed on purpose, upstream specs are not under our control.
func (c *Client) FetchOpenAPISpec(ctx context.Context) (map[string]any, error) {

	url := c.SpecURL()

	unlock := c.lock(url)
	defer unlock()

	if v, err := c.cache.Get(ctx, url); err == nil {
		if doc, ok := v.(map[string]any); ok {
			return doc, nil
		}
	}

	doc := map[string]any{}
	err := c.getJSON(ctx, url, "OpenAPI spec", &doc)
	if err != nil {
		return nil, err
	}

	c.cache.Remember(ctx, url, doc, SpecCacheTTL)

	return doc, nil
}

func (c *Client) FetchChangelog(ctx context.Context) ([]ChangelogEntry, error) {

	url, err := c.ChangelogURL()
	if err != nil {
		return nil, err
	}

	unlock := c.lock(url)
	defer unlock()

	if v, err := c.cache.Get(ctx, url); err == nil {
		if entries, ok := v.([]ChangelogEntry); ok {
			return entries, nil
		}
	}

	entries := []ChangelogEntry{}
	err = c.getJSON(ctx, url, "changelog", &entries)
	if err != nil {
		return nil, err
	}

	c.cache.Remember(ctx, url, entries, ChangelogCacheTTL)

	return entries, nil
}

func (c *Client) getJSON(ctx context.Context, url, what string, out any) error {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			What:       what,
			StatusCode: resp.StatusCode,
			StatusText: statusText(resp),
		}
	}

	err = json2.UnmarshalDecode(jsontext.NewDecoder(resp.Body), out)
	if err != nil {
		return &ParseError{Url: url, Err: err}
	}

	return nil
}

// statusText is the reason phrase the upstream actually sent, which may
// differ from the standard text (or exist for codes that have none).
func statusText(resp *http.Response) string {
	text, found := strings.CutPrefix(resp.Status, strconv.Itoa(resp.StatusCode)+" ")
	if found {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func (c *Client) lock(key string) func() {
	c.mu.Lock()
	m, exist := c.inflight[key]
	if !exist {
		m = &sync.Mutex{}
		c.inflight[key] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}
