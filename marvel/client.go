package marvel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public Marvel gateway.
	DefaultBaseURL = "https://gateway.marvel.com"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// Client talks to the Marvel Comics API. Credentials and base URL are fixed
// at construction; everything per-call lives on the stack, so a single Client
// is safe for concurrent use.
type Client struct {
	baseURL    string
	signer     *signer
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	logger     zerolog.Logger

	// Characters, Comics, Creators, Events, Series and Stories expose the
	// six gateway resource collections.
	Characters *CharactersService
	Comics     *ComicsService
	Creators   *CreatorsService
	Events     *EventsService
	Series     *SeriesService
	Stories    *StoriesService
}

// NewClient creates a new Marvel API client.
func NewClient(publicKey, privateKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if publicKey == "" {
		return nil, fmt.Errorf("%w: public key is required", ErrInvalidConfig)
	}
	if privateKey == "" {
		return nil, fmt.Errorf("%w: private key is required", ErrInvalidConfig)
	}

	options := clientOptions{
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(&options)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}
	httpClient.Timeout = options.timeout

	sgn := newSigner(publicKey, privateKey)
	if options.clock != nil {
		sgn.now = options.clock
	}
	if options.hash != nil {
		sgn.hash = options.hash
	}

	baseURL := options.baseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		signer:     sgn,
		httpClient: httpClient,
		maxRetries: options.maxRetries,
		retryDelay: options.retryDelay,
		logger:     logger,
	}
	client.Characters = &CharactersService{client: client}
	client.Comics = &ComicsService{client: client}
	client.Creators = &CreatorsService{client: client}
	client.Events = &EventsService{client: client}
	client.Series = &SeriesService{client: client}
	client.Stories = &StoriesService{client: client}

	return client, nil
}

// BaseURL returns the normalized gateway URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle transport connections. The client must not be used
// after Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Do performs a signed request against the gateway with retry on transient
// failures and returns the raw response body. Query params from the caller
// are merged with fresh auth params; auth wins on key collision.
func (c *Client) Do(ctx context.Context, method, path string, params url.Values) ([]byte, error) {
	requestURL := c.baseURL + path

	var body []byte
	err := c.doWithRetry(ctx, requestURL, func() error {
		b, err := c.attempt(ctx, method, requestURL, params)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// GetJSON performs a GET and returns the parsed body without binding it to a
// model.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values) (map[string]any, error) {
	body, err := c.Do(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, newDecodeError(0, body, []string{fmt.Sprintf("invalid JSON: %v", err)})
	}
	return parsed, nil
}

// attempt executes one HTTP round trip, signing it with a fresh timestamp.
// Every failure comes back classified.
func (c *Client) attempt(ctx context.Context, method, requestURL string, params url.Values) ([]byte, error) {
	auth := c.signer.Sign()

	query := url.Values{}
	for key, values := range params {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("ts", auth.Timestamp)
	query.Set("apikey", auth.APIKey)
	query.Set("hash", auth.Hash)

	req, err := http.NewRequestWithContext(ctx, method, requestURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Msg("Making Marvel API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err, requestURL)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err, requestURL)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyStatus(resp.StatusCode, body, requestURL, resp.Header.Get("Retry-After"))
	}

	return body, nil
}

// getOne fetches a single entity and annotates not-found errors with the
// resource that was asked for.
func getOne[T any](ctx context.Context, c *Client, basePath, resource string, id int) (*Response[T], error) {
	body, err := c.Do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", basePath, id), nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Kind == KindNotFound {
			apiErr.ResourceType = resource
			apiErr.ResourceID = fmt.Sprintf("%d", id)
		}
		return nil, err
	}
	return decodeResponse[T](body)
}

// getList fetches a resource collection filtered by params.
func getList[T any](ctx context.Context, c *Client, path string, filter any) (*ListResponse[T], error) {
	params, err := filterValues(filter)
	if err != nil {
		return nil, err
	}
	body, err := c.Do(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	return decodeListResponse[T](body)
}

// getRelated fetches a cross-reference collection, e.g. a character's comics.
func getRelated[T any](ctx context.Context, c *Client, basePath string, id int, related string, filter any) (*ListResponse[T], error) {
	return getList[T](ctx, c, fmt.Sprintf("%s/%d/%s", basePath, id, related), filter)
}
