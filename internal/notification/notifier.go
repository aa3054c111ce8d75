package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"go.uber.org/zap"
)

// Notifier delivers fire-and-forget notifications. Implementations must
// never fail the state transition that triggered the notification; callers
// ignore errors beyond logging.
type Notifier interface {
	Notify(ctx context.Context, userID int64, ntype, title, message, link string)
}

type payload struct {
	UserID  int64  `json:"user_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 3 * time.Second},
	}
}

func (c *Client) Notify(ctx context.Context, userID int64, ntype, title, message, link string) {
	if c.baseURL == "" {
		logger.Log.Info("notification",
			zap.Int64("user_id", userID), zap.String("type", ntype), zap.String("title", title))
		return
	}

	body, err := json.Marshal(payload{UserID: userID, Type: ntype, Title: title, Message: message, Link: link})
	if err != nil {
		logger.Log.Error("failed to marshal notification", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/notifications", c.baseURL), bytes.NewReader(body))
	if err != nil {
		logger.Log.Error("failed to build notification request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Warn("notification delivery failed", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Log.Error("failed to close notifier response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		logger.Log.Warn("notification rejected",
			zap.Int64("user_id", userID), zap.Int("status", resp.StatusCode))
	}
}
