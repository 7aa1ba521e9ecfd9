package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fulfilmenthub/notify-adapter/internal/domain"
)

const (
	emailPath = "/notifications/email"
	userAgent = "fulfilment-notify-adapter/1.0"
)

// Hooks receives dispatch outcome callbacks so the client stays free of
// metrics imports. Either function may be nil.
type Hooks struct {
	OnSuccess func(status int, elapsed time.Duration)
	OnFailure func(status int)
}

// Client dispatches templated email requests to the notification
// provider. The base URL is injected from config so tests can point to a
// local stub. Headers are built fresh per call from a per-call token;
// nothing on the shared client is mutated between requests.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
	logger     *zap.Logger
	hooks      Hooks
}

// NewClient decomposes the composite API key and builds the client.
// A malformed key is returned as an error so the caller can refuse to
// start; a service that cannot sign tokens must never come up.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zap.Logger, hooks Hooks) (*Client, error) {
	creds, err := DecomposeAPIKey(apiKey)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		creds:      creds,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		hooks:      hooks,
	}, nil
}

// emailRequest is the JSON body posted to the provider.
type emailRequest struct {
	TemplateID      string          `json:"template_id"`
	Personalisation personalisation `json:"personalisation"`
	EmailAddress    string          `json:"email_address"`
}

type personalisation struct {
	Address string `json:"address"`
}

// errorResponse maps the provider's 4xx/5xx body.
type errorResponse struct {
	Errors []any `json:"errors"`
}

// SendEmail performs exactly one outbound call and normalizes every
// outcome, including transport failures, to a Result. It never returns
// an error; the Result status code is the whole story.
func (c *Client) SendEmail(ctx context.Context, data domain.FulfilmentData, templateID string, logCtx domain.LogContext) domain.Result {
	start := time.Now()

	token, err := SignToken(c.creds.SecretKey, c.creds.ServiceID)
	if err != nil {
		return c.failure(http.StatusServiceUnavailable, logCtx, zap.Error(err))
	}

	body, err := json.Marshal(emailRequest{
		TemplateID:      templateID,
		Personalisation: personalisation{Address: data.DisplayAddress},
		EmailAddress:    data.EmailAddress,
	})
	if err != nil {
		return c.failure(http.StatusServiceUnavailable, logCtx, zap.Error(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+emailPath, bytes.NewReader(body))
	if err != nil {
		return c.failure(http.StatusServiceUnavailable, logCtx, zap.Error(err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeout, refused connection, cancelled context: no upstream
		// status exists, so report a service-level failure.
		return c.failure(http.StatusServiceUnavailable, logCtx, zap.Error(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errBody errorResponse
		var fields []zap.Field
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && len(errBody.Errors) > 0 {
			fields = append(fields, zap.Any("error", errBody.Errors[0]))
		}
		return c.failure(resp.StatusCode, logCtx, fields...)
	}

	if resp.StatusCode == http.StatusNoContent {
		c.logger.Info("notify email requested",
			append(logCtx.Fields(), zap.Int("status_code", http.StatusNoContent))...)
		c.observeSuccess(http.StatusNoContent, start)
		return domain.Result{Message: "No content", StatusCode: http.StatusNoContent}
	}

	var respFields map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&respFields); err != nil {
		return c.failureWithMessage("Notify JSON response object failed decoding",
			http.StatusServiceUnavailable, logCtx, zap.Error(err))
	}

	// The rendered email body is verbose and may contain personal data;
	// keep it out of the logs.
	delete(respFields, "content")
	c.logger.Info("notify email requested",
		append(logCtx.Fields(),
			zap.Int("status_code", resp.StatusCode),
			zap.Any("response", respFields))...)
	c.observeSuccess(resp.StatusCode, start)
	return domain.Result{Message: "Notify request successful", StatusCode: resp.StatusCode}
}

func (c *Client) failure(status int, logCtx domain.LogContext, fields ...zap.Field) domain.Result {
	return c.failureWithMessage("Notify request failed", status, logCtx, fields...)
}

func (c *Client) failureWithMessage(msg string, status int, logCtx domain.LogContext, fields ...zap.Field) domain.Result {
	c.logger.Error("notify request failed",
		append(append(logCtx.Fields(), zap.Int("status_code", status)), fields...)...)
	if c.hooks.OnFailure != nil {
		c.hooks.OnFailure(status)
	}
	return domain.Result{Message: msg, StatusCode: status}
}

func (c *Client) observeSuccess(status int, start time.Time) {
	if c.hooks.OnSuccess != nil {
		c.hooks.OnSuccess(status, time.Since(start))
	}
}
