package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gan0622/DevForFun/internal/config"
	"github.com/gan0622/DevForFun/internal/domain/github"
	"github.com/gan0622/DevForFun/pkg/apperror"
	"github.com/gan0622/DevForFun/pkg/logger"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]github.Repo
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]github.Repo)}
}

func (c *fakeCache) Get(_ context.Context, username string) ([]github.Repo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	repos, ok := c.entries[username]
	return repos, ok
}

func (c *fakeCache) Set(_ context.Context, username string, repos []github.Repo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[username] = repos
}

func newTestClient(baseURL string, cache RepoCache) github.Service {
	cfg := config.Config{}
	cfg.Github.APIBase = baseURL
	cfg.Github.ClientID = "test-client-id"
	cfg.Github.ClientSecret = "test-client-secret"
	cfg.Github.RequestTimeout = 2 * time.Second
	return NewClient(cfg, cache, logger.NewNop())
}

func TestListByUsername_Success(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string
	var gotUserAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		gotUserAgent = r.Header.Get("user-agent")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "devforfun", "full_name": "octocat/devforfun", "html_url": "https://github.com/octocat/devforfun", "stargazers_count": 3, "watchers_count": 3, "forks_count": 1, "created_at": "2024-05-01T10:00:00Z"},
			{"id": 2, "name": "dotfiles", "full_name": "octocat/dotfiles", "html_url": "https://github.com/octocat/dotfiles", "created_at": "2024-06-01T10:00:00Z"}
		]`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, newFakeCache())

	repos, err := client.ListByUsername(context.Background(), "octocat")

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "devforfun", repos[0].Name)
	assert.Equal(t, 3, repos[0].StargazersCount)

	assert.Equal(t, "/users/octocat/repos", gotPath)
	assert.Equal(t, "5", gotQuery["per_page"])
	assert.Equal(t, "created:asc", gotQuery["sort"])
	assert.Equal(t, "test-client-id", gotQuery["client_id"])
	assert.Equal(t, "test-client-secret", gotQuery["client_secret"])
	assert.Equal(t, userAgent, gotUserAgent)
}

func TestListByUsername_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, newFakeCache())

	_, err := client.ListByUsername(context.Background(), "nonexistent-user-xyz")

	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListByUsername_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := newTestClient(srv.URL, newFakeCache())

	_, err := client.ListByUsername(context.Background(), "octocat")

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestListByUsername_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, newFakeCache())

	_, err := client.ListByUsername(context.Background(), "octocat")

	assert.ErrorIs(t, err, apperror.ErrUnavailable)
}

func TestListByUsername_CacheHitSkipsHTTP(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cache := newFakeCache()
	cache.Set(context.Background(), "octocat", []github.Repo{{ID: 1, Name: "cached"}})

	client := newTestClient(srv.URL, cache)

	repos, err := client.ListByUsername(context.Background(), "octocat")

	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "cached", repos[0].Name)
	assert.Zero(t, calls)
}

func TestListByUsername_PopulatesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 7, "name": "repo", "created_at": "2024-01-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	cache := newFakeCache()
	client := newTestClient(srv.URL, cache)

	_, err := client.ListByUsername(context.Background(), "octocat")
	require.NoError(t, err)

	cached, ok := cache.Get(context.Background(), "octocat")
	require.True(t, ok)
	assert.Equal(t, int64(7), cached[0].ID)
}
