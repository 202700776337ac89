package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/precoscan/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the SerpAPI google_shopping engine
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new SerpAPI client. limit is outbound requests per
// second toward the API, burst the limiter's bucket size; both come from
// configuration so the plan quota stays adjustable.
func NewClient(apiKey, baseURL string, limit float64, burst int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(limit), burst),
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// searchResponse mirrors the slice of the SerpAPI payload this service
// consumes. Fields absent from the response decode to empty values.
type searchResponse struct {
	ShoppingResults []shoppingResult `json:"shopping_results"`
}

type shoppingResult struct {
	Title  string `json:"title"`
	Price  string `json:"price"`
	Source string `json:"source"`
	Link   string `json:"link"`
}

// Search performs a single google_shopping search. One request per call,
// no retries; callers decide what a failed lookup means for them. An
// empty or missing shopping_results array is a successful empty result.
func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Offer, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/search.json", c.baseURL)
	params := url.Values{}
	params.Add("engine", "google_shopping")
	params.Add("q", query.Query)
	params.Add("api_key", c.apiKey)
	if query.Category != "" {
		params.Add("product_category", query.Category)
	}

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	if c.debug {
		log.Printf("[SERPAPI] GET /search.json q=%q category=%q", query.Query, query.Category)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "precoscan/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrSearchAPIFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[SERPAPI] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchAPIFailure, resp.StatusCode)
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[SERPAPI] JSON decode error: %v", err)
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrSearchAPIFailure, err)
	}

	offers := mapOffers(searchResp.ShoppingResults)

	if c.debug {
		log.Printf("[SERPAPI] %d offers for query %q", len(offers), query.Query)
	}

	return offers, nil
}
