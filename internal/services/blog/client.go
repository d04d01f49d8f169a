// Package blog provides the client for the publication's GraphQL API.
package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pratyay/profile-service/internal/core/cache"
	"github.com/pratyay/profile-service/internal/domain/models"
)

// Defaults for the Hashnode publication.
const (
	DefaultEndpoint = "https://gql.hashnode.com"
	DefaultHost     = "pratyaywrites.hashnode.dev"
	DefaultTimeout  = 15 * time.Second
	DefaultCacheTTL = 5 * time.Minute
)

const postsQuery = `query Publication($host: String!, $first: Int!) {
  publication(host: $host) {
    posts(first: $first) {
      edges {
        node {
          id
          coverImage {
            url
          }
          title
          brief
          url
        }
      }
    }
  }
}`

// Client fetches recent posts.
type Client interface {
	GetPosts(ctx context.Context, num int) ([]models.BlogPost, error)
}

// ClientConfig holds the configuration for the GraphQL client.
type ClientConfig struct {
	Endpoint   string
	Host       string
	Timeout    time.Duration
	HTTPClient *http.Client
	// Cache is optional. When set, results are stored for CacheTTL.
	Cache    cache.Client
	CacheTTL time.Duration
}

// GraphQLClient implements Client against the Hashnode GraphQL API.
type GraphQLClient struct {
	endpoint   string
	host       string
	httpClient *http.Client
	cache      cache.Client
	cacheTTL   time.Duration
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type postsResponse struct {
	Data *struct {
		Publication *struct {
			Posts *struct {
				Edges []struct {
					Node *models.BlogPost `json:"node"`
				} `json:"edges"`
			} `json:"posts"`
		} `json:"publication"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// NewClient creates a new GraphQLClient.
func NewClient(config *ClientConfig) *GraphQLClient {
	if config == nil {
		config = &ClientConfig{}
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	c := &GraphQLClient{
		endpoint:   config.Endpoint,
		host:       config.Host,
		httpClient: httpClient,
		cache:      config.Cache,
		cacheTTL:   config.CacheTTL,
	}
	if c.endpoint == "" {
		c.endpoint = DefaultEndpoint
	}
	if c.host == "" {
		c.host = DefaultHost
	}
	if c.cacheTTL <= 0 {
		c.cacheTTL = DefaultCacheTTL
	}
	return c
}

func (c *GraphQLClient) cacheKey(num int) string {
	return fmt.Sprintf("blogs:%s:%d", c.host, num)
}

// GetPosts returns up to num recent posts of the publication.
func (c *GraphQLClient) GetPosts(ctx context.Context, num int) ([]models.BlogPost, error) {
	key := c.cacheKey(num)
	if c.cache != nil {
		var cached []models.BlogPost
		found, err := c.cache.GetJSON(ctx, key, &cached)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("blog cache read failed")
		} else if found {
			return cached, nil
		}
	}

	posts, err := c.fetch(ctx, num)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.SetJSON(ctx, key, posts, c.cacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("blog cache write failed")
		}
	}
	return posts, nil
}

func (c *GraphQLClient) fetch(ctx context.Context, num int) ([]models.BlogPost, error) {
	payload, err := json.Marshal(graphQLRequest{
		Query:     postsQuery,
		Variables: map[string]interface{}{"host": c.host, "first": num},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status code: %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var result postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Errors) > 0 {
		messages := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			messages = append(messages, e.Message)
		}
		return nil, fmt.Errorf("graphql error: %s", strings.Join(messages, "; "))
	}

	if result.Data == nil || result.Data.Publication == nil || result.Data.Publication.Posts == nil ||
		result.Data.Publication.Posts.Edges == nil {
		return nil, fmt.Errorf("unexpected response format: missing data.publication.posts.edges")
	}

	posts := make([]models.BlogPost, 0, len(result.Data.Publication.Posts.Edges))
	for _, edge := range result.Data.Publication.Posts.Edges {
		if edge.Node != nil {
			posts = append(posts, *edge.Node)
		}
	}
	return posts, nil
}
