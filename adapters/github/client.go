package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/gan0622/DevForFun/internal/config"
	"github.com/gan0622/DevForFun/internal/domain/github"
	"github.com/gan0622/DevForFun/pkg/apperror"
	"github.com/gan0622/DevForFun/pkg/logger"
)

const userAgent = "devforfun-api"

type client struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	cache        RepoCache
	logger       logger.Logger
}

// NewClient builds the GitHub lookup service. Credentials and the request
// timeout come from configuration; results are served from the cache when
// present.
func NewClient(cfg config.Config, cache RepoCache, log logger.Logger) github.Service {
	return &client{
		httpClient:   &http.Client{Timeout: cfg.Github.RequestTimeout},
		baseURL:      cfg.Github.APIBase,
		clientID:     cfg.Github.ClientID,
		clientSecret: cfg.Github.ClientSecret,
		cache:        cache,
		logger:       log,
	}
}

func (c *client) ListByUsername(ctx context.Context, username string) ([]github.Repo, error) {
	if repos, ok := c.cache.Get(ctx, username); ok {
		return repos, nil
	}

	reqURL := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperror.NewInternal("failed to build github request", err)
	}

	q := url.Values{}
	q.Set("per_page", "5")
	q.Set("sort", "created:asc")
	q.Set("client_id", c.clientID)
	q.Set("client_secret", c.clientSecret)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("user-agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("github repo lookup transport failure", err, zap.String("username", username))
		return nil, apperror.NewUnavailable("github", "repository lookup failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperror.NewNotFound("github profile", username)
	}

	var repos []github.Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		c.logger.Error("github repo lookup returned malformed body", err, zap.String("username", username))
		return nil, apperror.NewUnavailable("github", "malformed repository listing", err)
	}

	c.cache.Set(ctx, username, repos)
	return repos, nil
}
