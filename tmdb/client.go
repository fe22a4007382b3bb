package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/hellodash/hellodash/apierror"
	"github.com/hellodash/hellodash/health"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	searchEndpoint = "/search/movie"
	configEndpoint = "/configuration"

	posterSize       = "w500"
	overviewMaxChars = 200
)

// Client wraps the TMDB API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     zerolog.Logger

	configMu     sync.Mutex
	imageBaseURL string
}

// NewClient creates a new TMDB client. The connection is not probed here;
// use Validate for an explicit health check.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}
	client.baseURL = strings.TrimRight(client.baseURL, "/")

	return client, nil
}

// Validate performs one bounded GET against the configuration endpoint and
// classifies the outcome. It never retries.
func (c *Client) Validate(ctx context.Context) health.Result {
	if c.apiKey == "" {
		return health.TransientError
	}

	params := url.Values{"api_key": {c.apiKey}}
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, configEndpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return health.TransientError
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Msg("TMDB validation transport failure")
		return health.ClassifyTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		c.logger.Debug().Err(err).Msg("TMDB validation read failure")
		return health.TransientError
	}

	return health.ClassifyResponse(resp.StatusCode, body)
}

// Search searches movies by title. It issues exactly one outbound call;
// pagination is repeated calls with an incrementing page.
//
// Empty or whitespace-only queries are rejected locally without network I/O.
func (c *Client) Search(ctx context.Context, query string, page int) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}

	params := url.Values{
		"api_key":       {c.apiKey},
		"query":         {query},
		"page":          {strconv.Itoa(page)},
		"include_adult": {"false"},
	}

	body, err := c.doGet(ctx, searchEndpoint, params)
	if err != nil {
		return nil, err
	}

	var raw searchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	result := &SearchResult{
		Movies:       make([]Movie, 0, len(raw.Results)),
		Page:         raw.Page,
		TotalPages:   raw.TotalPages,
		TotalResults: raw.TotalResults,
	}
	if result.Page == 0 {
		result.Page = page
	}

	for _, m := range raw.Results {
		result.Movies = append(result.Movies, c.normalizeMovie(ctx, m))
	}

	c.logger.Debug().
		Str("query", query).
		Int("page", result.Page).
		Int("total_results", result.TotalResults).
		Msg("Retrieved movie search results from TMDB")

	return result, nil
}

// normalizeMovie converts a raw result into the fixed display shape,
// filling documented defaults for missing optional fields.
func (c *Client) normalizeMovie(ctx context.Context, m movieResult) Movie {
	movie := Movie{
		ID:          m.ID,
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseYear: "Unknown",
		VoteAverage: m.VoteAverage,
		VoteCount:   m.VoteCount,
	}

	if movie.Title == "" {
		movie.Title = "Unknown Title"
	}

	if movie.Overview == "" {
		movie.Overview = "No overview available"
	} else if len(movie.Overview) > overviewMaxChars {
		movie.Overview = movie.Overview[:overviewMaxChars] + "..."
	}

	if m.ReleaseDate != "" {
		if year, _, found := strings.Cut(m.ReleaseDate, "-"); found || year != "" {
			movie.ReleaseYear = year
		}
	}

	if m.PosterPath != "" {
		movie.PosterURL = c.posterURL(ctx, m.PosterPath)
	}

	return movie
}

// posterURL builds the full poster image URL, fetching the image base URL
// from the configuration endpoint on first use. Failures yield an empty URL
// rather than an error; a missing poster never fails a search.
func (c *Client) posterURL(ctx context.Context, posterPath string) string {
	c.configMu.Lock()
	defer c.configMu.Unlock()

	if c.imageBaseURL == "" {
		params := url.Values{"api_key": {c.apiKey}}
		body, err := c.doGet(ctx, configEndpoint, params)
		if err != nil {
			c.logger.Debug().Err(err).Msg("Failed to get TMDB configuration")
			return ""
		}

		var cfg configResponse
		if err := json.Unmarshal(body, &cfg); err != nil {
			c.logger.Debug().Err(err).Msg("Failed to decode TMDB configuration")
			return ""
		}

		base := cfg.Images.SecureBaseURL
		if base == "" {
			base = cfg.Images.BaseURL
		}
		c.imageBaseURL = base
	}

	if c.imageBaseURL == "" {
		return ""
	}
	return c.imageBaseURL + posterSize + posterPath
}

// doGet performs a single GET request and returns the body. Non-2xx
// responses become *apierror.StatusError; transport errors pass through for
// classification at the caller.
func (c *Client) doGet(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apierror.StatusError{
			Service:    "tmdb",
			StatusCode: resp.StatusCode,
			Body:       string(body[:min(len(body), 4096)]),
		}
	}

	return body, nil
}
