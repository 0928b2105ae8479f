// Package social posts short status updates to an external social network
// over its JSON API. Delivery is best-effort by contract: the caller
// swallows every error this client returns.
package social

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// MaxPostLen is the network's hard length limit.
const MaxPostLen = 280

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		logger:  logger.With("component", "social"),
	}
}

type postRequest struct {
	Text string `json:"text"`
}

type postResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Post submits text as a new status and returns the created post id. Text
// over MaxPostLen is truncated rather than rejected; callers compose within
// the limit and the cap only guards against drift.
func (c *Client) Post(ctx context.Context, text string) (string, error) {
	if runes := []rune(text); len(runes) > MaxPostLen {
		text = string(runes[:MaxPostLen])
	}

	payload, err := json.Marshal(postRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("marshal post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp postResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("posted status", "post_id", apiResp.Data.ID)
	return apiResp.Data.ID, nil
}
