package sanity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/sjson"

	"github.com/darko-kalany/studio/internal/cache"
	"github.com/darko-kalany/studio/internal/content"
	"github.com/darko-kalany/studio/internal/preview"
)

func envelope(t *testing.T, result any) []byte {
	t.Helper()
	body, err := sjson.SetBytes([]byte(`{"ms":3}`), "result", result)
	require.NoError(t, err)
	return body
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		ProjectID: "2gj8du3t",
		Dataset:   "production",
		BaseURL:   srv.URL,
	}, nil, nil)
}

func TestPagePropagatesSlugAndPerspective(t *testing.T) {
	var gotSlug, gotPerspective string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotSlug = r.URL.Query().Get("$slug")
		gotPerspective = r.URL.Query().Get("perspective")
		w.Write(envelope(t, map[string]any{"_id": "page-1", "title": "Home"}))
	})

	doc, err := client.Page(context.Background(), "/", preview.Published())
	require.NoError(t, err)

	assert.Equal(t, `"/"`, gotSlug, "slug param is JSON-encoded")
	assert.Equal(t, "published", gotPerspective)
	assert.Equal(t, "page-1", doc.ID)
}

func TestDraftOptionsSelectDraftPerspective(t *testing.T) {
	var gotPerspective string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPerspective = r.URL.Query().Get("perspective")
		w.Write(envelope(t, map[string]any{"_id": "drafts.page-1", "title": "Home"}))
	})

	_, err := client.Page(context.Background(), "/", preview.Drafts())
	require.NoError(t, err)
	assert.Equal(t, "drafts", gotPerspective)
}

func TestPageNullResultIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ms":1,"result":null}`))
	})

	_, err := client.Page(context.Background(), "/missing", preview.Published())
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestQueryErrorSurfacesDescription(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"expected '}' following object body"}}`))
	})

	_, err := client.Page(context.Background(), "/", preview.Published())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQueryFailed)
	assert.Contains(t, err.Error(), "expected '}'")
}

func TestProjectsCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ms":1,"result":14}`))
	})

	n, err := client.ProjectsCount(context.Background(), preview.Published())
	require.NoError(t, err)
	assert.Equal(t, 14, n)
}

func TestPostsPageSendsRange(t *testing.T) {
	var gotStart, gotEnd string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotStart = r.URL.Query().Get("$start")
		gotEnd = r.URL.Query().Get("$end")
		w.Write([]byte(`{"ms":1,"result":[]}`))
	})

	posts, err := client.PostsPage(context.Background(), 6, 12, preview.Published())
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, "6", gotStart)
	assert.Equal(t, "12", gotEnd)
}

func TestPublishedQueriesUseCache(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"ms":1,"result":{"_id":"page-1","title":"Home"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		ProjectID: "2gj8du3t",
		Dataset:   "production",
		BaseURL:   srv.URL,
		CacheTTL:  time.Minute,
	}, cache.NewMemory(), nil)

	ctx := context.Background()
	for range 3 {
		_, err := client.Page(ctx, "/", preview.Published())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load(), "published reads should hit the cache")
}

func TestPreviewQueriesBypassCache(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"ms":1,"result":{"_id":"page-1","title":"Home"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		ProjectID: "2gj8du3t",
		Dataset:   "production",
		BaseURL:   srv.URL,
		CacheTTL:  time.Minute,
	}, cache.NewMemory(), nil)

	ctx := context.Background()
	for range 2 {
		_, err := client.Page(ctx, "/", preview.Drafts())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(2), calls.Load(), "draft reads must never be cached")
}

func TestContextCancellationAbandonsFetch(t *testing.T) {
	started := make(chan struct{})

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := client.Page(ctx, "/", preview.Published())
		errCh <- err
	}()

	<-started
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrQueryFailed)
		assert.True(t, errors.Is(ctx.Err(), context.Canceled))
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled fetch did not return")
	}
}

func TestTokenSentAsBearer(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ms":1,"result":null}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		ProjectID: "2gj8du3t",
		Dataset:   "production",
		BaseURL:   srv.URL,
		Token:     "sk-read-token",
	}, nil, nil)

	client.Layout(context.Background(), preview.Published())
	assert.Equal(t, "Bearer sk-read-token", gotAuth)
}

func TestFeaturedProjectsArriveResolved(t *testing.T) {
	page := map[string]any{
		"_id":   "page-1",
		"title": "Home",
		"pageBuilder": []map[string]any{
			{
				"_key":    "fp1",
				"_type":   "featuredProjectsBlock",
				"heading": "Selected Works",
				"projects": []map[string]any{
					{"_id": "pr1", "title": "Neon City", "slug": map[string]any{"current": "neon-city"}},
				},
			},
		},
	}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(envelope(t, page))
	})

	doc, err := client.Page(context.Background(), "/", preview.Published())
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	require.NotNil(t, doc.Blocks[0].FeaturedProjects)
	require.Len(t, doc.Blocks[0].FeaturedProjects.Projects, 1)
	assert.Equal(t, "neon-city", doc.Blocks[0].FeaturedProjects.Projects[0].Slug.Current)
}

func TestLayoutMissingSingletonsYieldEmptyLayout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ms":1,"result":null}`))
	})

	layout, err := client.Layout(context.Background(), preview.Published())
	require.NoError(t, err)
	require.NotNil(t, layout)
	assert.Nil(t, layout.Settings)
}

func TestQueryURLEncodesParamsDeterministically(t *testing.T) {
	client := NewClient(Config{ProjectID: "p", Dataset: "production", BaseURL: "http://example"}, nil, nil)

	u1, err := client.queryURL("q", map[string]any{"b": 2, "a": 1}, preview.Published())
	require.NoError(t, err)
	u2, err := client.queryURL("q", map[string]any{"a": 1, "b": 2}, preview.Published())
	require.NoError(t, err)

	assert.Equal(t, u1, u2)
}

func TestEnvelopeFixtureShape(t *testing.T) {
	// Guard the fixture helper itself: the result must land under the
	// envelope's result key, where the client reads it.
	body := envelope(t, map[string]any{"title": "x"})

	var parsed struct {
		Result map[string]any `json:"result"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "x", parsed.Result["title"])
}
