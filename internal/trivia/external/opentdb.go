// Package external holds clients for third-party question sources.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultOpenTDBURL = "https://opentdb.com"

// OpenTDBClient fetches questions from the Open Trivia DB (no API key).
type OpenTDBClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOpenTDBClient(baseURL string, httpClient *http.Client) *OpenTDBClient {
	if baseURL == "" {
		baseURL = defaultOpenTDBURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &OpenTDBClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// OpenTDBQuestion is one raw result. Text fields carry HTML entities (&quot;, &#039;)
// exactly as the API sends them.
type OpenTDBQuestion struct {
	Category        string   `json:"category"`
	Type            string   `json:"type"`
	Difficulty      string   `json:"difficulty"`
	Question        string   `json:"question"`
	CorrectAnswer   string   `json:"correct_answer"`
	IncorrectAnswer []string `json:"incorrect_answers"`
}

// FetchParams narrows a Fetch call. Empty fields are left to the API defaults.
type FetchParams struct {
	Amount     int
	Difficulty string
	Type       string
}

type openTDBResponse struct {
	ResponseCode int               `json:"response_code"`
	Results      []OpenTDBQuestion `json:"results"`
}

// ResponseCodeError is a non-zero response_code from the API.
type ResponseCodeError struct {
	Code int
}

func (e *ResponseCodeError) Error() string {
	return fmt.Sprintf("opentdb response code %d", e.Code)
}

func (c *OpenTDBClient) Fetch(ctx context.Context, params FetchParams) ([]OpenTDBQuestion, error) {
	if params.Amount <= 0 {
		return nil, fmt.Errorf("opentdb amount must be positive, got %d", params.Amount)
	}

	values := url.Values{}
	values.Set("amount", fmt.Sprint(params.Amount))
	if params.Difficulty != "" {
		values.Set("difficulty", params.Difficulty)
	}
	if params.Type != "" {
		values.Set("type", params.Type)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/api.php?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opentdb request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("opentdb non-200: %d", resp.StatusCode)
	}

	var payload openTDBResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode opentdb response: %w", err)
	}
	if payload.ResponseCode != 0 {
		return nil, &ResponseCodeError{Code: payload.ResponseCode}
	}
	return payload.Results, nil
}
