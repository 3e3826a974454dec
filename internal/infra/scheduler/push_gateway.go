package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/stroma-app/care-engine/internal/observability/logging"
	"github.com/stroma-app/care-engine/internal/observability/tracing"
)

// PushGatewayClient schedules device notifications through the push gateway
// service over HTTP.
type PushGatewayClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPushGatewayClient(baseURL string) *PushGatewayClient {
	return &PushGatewayClient{
		baseURL:    baseURL,
		httpClient: newHTTPClient(baseURL),
	}
}

func (c *PushGatewayClient) Schedule(ctx context.Context, notification *Notification) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = "/api/v1/notifications"

	body, err := json.Marshal(notification)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification: %w", err)
	}

	slog.DebugContext(ctx, "scheduling notification via push gateway",
		slog.String("url", u.String()),
		slog.Time("fires_at", notification.FiresAt),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send schedule request to push gateway",
			slog.String("url", u.String()),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		slog.ErrorContext(ctx, "unexpected status code from push gateway",
			slog.String("url", u.String()),
			slog.Int("status_code", resp.StatusCode),
		)
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var scheduled scheduleResponse
	if err := json.Unmarshal(respBody, &scheduled); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	slog.DebugContext(ctx, "notification scheduled",
		slog.String("notification_id", scheduled.ID),
		slog.Time("scheduled_for", scheduled.ScheduledFor),
	)

	return scheduled.ID, nil
}

func (c *PushGatewayClient) Cancel(ctx context.Context, id string) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u.Path = fmt.Sprintf("/api/v1/notifications/%s", id)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := logging.ValidateAndExtractRequestID(logging.RequestIDFromContext(ctx))
	req.Header.Set("x-request-id", requestID)
	tracing.InjectToHTTPRequest(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to send cancel request to push gateway",
			slog.String("notification_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Already fired or already cancelled: treat as success.
	if resp.StatusCode == http.StatusNotFound {
		slog.DebugContext(ctx, "notification not found on push gateway, treating cancel as no-op",
			slog.String("notification_id", id),
		)
		return nil
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		slog.ErrorContext(ctx, "unexpected status code when cancelling notification",
			slog.String("notification_id", id),
			slog.Int("status_code", resp.StatusCode),
		)
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	slog.DebugContext(ctx, "notification cancelled",
		slog.String("notification_id", id),
	)

	return nil
}
