// Package sanity is the content fetch adapter: GROQ queries over HTTP
// against the Sanity data API, with perspective selection from the
// preview options and a cache in front of published-only reads.
package sanity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/tidwall/gjson"

	"github.com/darko-kalany/studio/internal/cache"
	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/preview"
)

var ErrQueryFailed = errors.New("sanity: query failed")

type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string

	// BaseURL overrides the API host, for tests. When empty the
	// project's api.sanity.io host is used.
	BaseURL string

	CacheTTL time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	kv   cache.KV
	log  *slog.Logger
}

func NewClient(cfg Config, kv cache.KV, log *slog.Logger) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01-01"
	}
	if kv == nil {
		kv = cache.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
		kv:   kv,
		log:  log,
	}
}

func (c *Client) queryURL(query string, params map[string]any, opts preview.Options) (string, error) {
	base := c.cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", c.cfg.ProjectID)
	}

	values := url.Values{}
	values.Set("query", query)
	values.Set("perspective", opts.Perspective)

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		encoded, err := json.Marshal(params[name])
		if err != nil {
			return "", fmt.Errorf("encode param %s: %w", name, err)
		}
		values.Set("$"+name, string(encoded))
	}

	return fmt.Sprintf("%s/v%s/data/query/%s?%s", base, c.cfg.APIVersion, c.cfg.Dataset, values.Encode()), nil
}

func cacheKey(u string) string {
	sum := sha256.Sum256([]byte(u))
	return "sanity:query:" + hex.EncodeToString(sum[:])
}

// query runs one GROQ query and returns the raw `result` JSON from the
// response envelope. Published-perspective results pass through the
// cache; preview results never do.
func (c *Client) query(ctx context.Context, query string, params map[string]any, opts preview.Options) ([]byte, error) {
	u, err := c.queryURL(query, params, opts)
	if err != nil {
		return nil, err
	}

	cacheable := !opts.Preview && c.cfg.CacheTTL > 0
	key := cacheKey(u)

	if cacheable {
		if cached, err := c.kv.Get(ctx, key); err == nil {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		description := gjson.GetBytes(body, "error.description").String()
		if description == "" {
			description = resp.Status
		}
		return nil, fmt.Errorf("%w: %s", ErrQueryFailed, description)
	}

	result := []byte(gjson.GetBytes(body, "result").Raw)

	if cacheable {
		if err := c.kv.Set(ctx, key, result, c.cfg.CacheTTL); err != nil {
			c.log.Warn("content cache write failed", "error", err)
		}
	}

	return result, nil
}

func isNull(raw []byte) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// one decodes a single-document result, mapping a null result to
// content.ErrNotFound.
func one[T any](raw []byte, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, content.ErrNotFound
	}

	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrQueryFailed, err)
	}
	return v, nil
}

// many decodes a list result, mapping null to an empty slice.
func many[T any](raw []byte, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, nil
	}

	var v []T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrQueryFailed, err)
	}
	return v, nil
}

func count(raw []byte, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	if isNull(raw) {
		return 0, nil
	}

	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: decode count: %v", ErrQueryFailed, err)
	}
	return n, nil
}

// Page fetches one page document by slug ("/" for the index).
func (c *Client) Page(ctx context.Context, slug string, opts preview.Options) (*content.Document, error) {
	return one[content.Document](c.query(ctx, pageQuery, map[string]any{"slug": slug}, opts))
}

func (c *Client) Post(ctx context.Context, slug string, opts preview.Options) (*content.Post, error) {
	return one[content.Post](c.query(ctx, postQuery, map[string]any{"slug": slug}, opts))
}

func (c *Client) Posts(ctx context.Context, opts preview.Options) ([]content.PostSummary, error) {
	return many[content.PostSummary](c.query(ctx, postsQuery, nil, opts))
}

func (c *Client) PostsPage(ctx context.Context, start, end int, opts preview.Options) ([]content.PostSummary, error) {
	return many[content.PostSummary](c.query(ctx, postsPaginatedQuery, map[string]any{"start": start, "end": end}, opts))
}

func (c *Client) PostsCount(ctx context.Context, opts preview.Options) (int, error) {
	return count(c.query(ctx, postsCountQuery, nil, opts))
}

func (c *Client) Project(ctx context.Context, slug string, opts preview.Options) (*content.Project, error) {
	return one[content.Project](c.query(ctx, projectQuery, map[string]any{"slug": slug}, opts))
}

func (c *Client) ProjectsPage(ctx context.Context, start, end int, opts preview.Options) ([]content.ProjectSummary, error) {
	return many[content.ProjectSummary](c.query(ctx, projectsPaginatedQuery, map[string]any{"start": start, "end": end}, opts))
}

func (c *Client) ProjectsCount(ctx context.Context, opts preview.Options) (int, error) {
	return count(c.query(ctx, projectsCountQuery, nil, opts))
}

func (c *Client) Layout(ctx context.Context, opts preview.Options) (*content.Layout, error) {
	layout, err := one[content.Layout](c.query(ctx, layoutQuery, nil, opts))
	if errors.Is(err, content.ErrNotFound) {
		// The singletons may not exist yet; the chrome has defaults.
		return &content.Layout{}, nil
	}
	return layout, err
}
