package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dhruv-958/TaskMaster-Backend/internal/core/ports"
	"github.com/Dhruv-958/TaskMaster-Backend/internal/infrastructure/logger"
)

// scoringClient talks to the external scoring model over HTTP. The model is
// an untrusted boundary: the response is schema-checked and range-checked
// before a score is accepted.
type scoringClient struct {
	endpoint string
	client   *http.Client
	logger   *logger.Logger
}

type scoreRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	TimeTaken   int64  `json:"timeTaken"`
}

type scoreResponse struct {
	Score *int `json:"score"`
}

func NewScoringClient(endpoint string, timeout time.Duration, log *logger.Logger) ports.ScoringClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &scoringClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   log,
	}
}

func (c *scoringClient) Score(ctx context.Context, title, description string, timeTaken int64) (int, error) {
	payload, err := json.Marshal(scoreRequest{
		Title:       title,
		Description: description,
		TimeTaken:   timeTaken,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("score request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read score response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnw("scoring_model_non_ok", "status", resp.StatusCode, "body_len", len(body))
		return 0, fmt.Errorf("scoring model returned status %d", resp.StatusCode)
	}

	var sr scoreResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return 0, fmt.Errorf("malformed score response: %w", err)
	}
	if sr.Score == nil {
		return 0, fmt.Errorf("score missing from response")
	}
	if *sr.Score < 0 || *sr.Score > 100 {
		return 0, fmt.Errorf("score %d out of range [0,100]", *sr.Score)
	}

	return *sr.Score, nil
}
