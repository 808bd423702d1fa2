package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is an HTTP client for the upstream market-news feed. The feed is a
// paid aggregator exposed to us as a single JSON endpoint; when it is not
// configured the news service serves generated headlines instead.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new news feed client
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetHeadlines fetches the latest market headlines
func (c *Client) GetHeadlines(ctx context.Context, limit int) ([]ParsedHeadline, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("apikey", c.apiKey)

	resp, err := c.doRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var feedResp HeadlinesResponse
	if err := json.Unmarshal(body, &feedResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	var headlines []ParsedHeadline
	for _, item := range feedResp.Articles {
		published, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			continue
		}

		headlines = append(headlines, ParsedHeadline{
			ID:          item.ID,
			Headline:    item.Title,
			Summary:     item.Summary,
			Source:      item.Source,
			URL:         item.URL,
			Symbols:     item.Tickers,
			PublishedAt: published,
		})
	}

	return headlines, nil
}

func (c *Client) doRequest(ctx context.Context, params url.Values) (*http.Response, error) {
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("news feed returned status %d", resp.StatusCode)
	}

	return resp, nil
}
