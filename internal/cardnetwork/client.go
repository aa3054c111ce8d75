package cardnetwork

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Stratton1/futurepreneurs-sub002/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProviderInterface is the card network provider: it holds the real PANs and
// performs freeze/unfreeze. Both calls must be idempotent on the provider
// side.
type ProviderInterface interface {
	UnfreezeCard(ctx context.Context, cardRef string) error
	FreezeCard(ctx context.Context, cardRef string) error
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *Client) UnfreezeCard(ctx context.Context, cardRef string) error {
	return c.setCardState(ctx, cardRef, "unfreeze")
}

func (c *Client) FreezeCard(ctx context.Context, cardRef string) error {
	return c.setCardState(ctx, cardRef, "freeze")
}

func (c *Client) setCardState(ctx context.Context, cardRef, action string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/cards/%s/%s", c.baseURL, cardRef, action), nil)
	if err != nil {
		return err
	}
	// Idempotency key lets the provider dedupe retried sweep calls.
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			logger.Log.Error("failed to close provider response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("provider %s returned status %d", action, resp.StatusCode)
	}
	return nil
}
