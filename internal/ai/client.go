package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"mood_forge/internal/metrics"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultRateLimit = 10
	defaultBurst     = 5
	maxResponseBytes = 1 << 20

	CapabilityChat               = "chat"
	CapabilityWeeklySummary      = "weekly_summary"
	CapabilityMoodReflection     = "mood_reflection"
	CapabilityReflectionFeedback = "reflection_feedback"
)

type Config struct {
	ChatURL               string
	SummaryURL            string
	MoodReflectionURL     string
	ReflectionFeedbackURL string

	Timeout   time.Duration
	RateLimit float64
	RateBurst int

	// HTTPClient overrides the instrumented default client.
	HTTPClient *http.Client
}

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// MoodReflectionRequest follows the gateway's field names: Reason carries the
// stored keyword and TextReason carries the stored reason.
type MoodReflectionRequest struct {
	UserID     string `json:"user_id"`
	Mood       string `json:"mood"`
	Reason     string `json:"reason"`
	TextReason string `json:"text_reason"`
}

type reflectionFeedbackRequest struct {
	UserID string `json:"user_id"`
}

// Client talks to the external inference service. It never retries.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = defaultRateLimit
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = defaultBurst
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		}
	}

	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// Chat returns the gateway reply; a payload without "reply" is ErrInvalidResponse.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	body, err := c.call(ctx, CapabilityChat, http.MethodPost, c.cfg.ChatURL, req)
	if err != nil {
		return "", err
	}
	return requiredField(body, "reply")
}

// WeeklySummary asks the gateway for the user's summary. The gateway builds
// its own context, only the user id is sent.
func (c *Client) WeeklySummary(ctx context.Context, userID string) (string, error) {
	target, err := url.Parse(c.cfg.SummaryURL)
	if err != nil {
		return "", fmt.Errorf("%s: bad summary url: %w", CapabilityWeeklySummary, err)
	}
	q := target.Query()
	q.Set("user_id", userID)
	target.RawQuery = q.Encode()

	body, err := c.call(ctx, CapabilityWeeklySummary, http.MethodGet, target.String(), nil)
	if err != nil {
		return "", err
	}
	return requiredField(body, "summary")
}

// MoodReflection returns "" when the gateway answered without "refleksi".
func (c *Client) MoodReflection(ctx context.Context, req MoodReflectionRequest) (string, error) {
	body, err := c.call(ctx, CapabilityMoodReflection, http.MethodPost, c.cfg.MoodReflectionURL, req)
	if err != nil {
		return "", err
	}
	return optionalField(body, "refleksi")
}

// ReflectionFeedback returns "" when the gateway answered without "feedback".
func (c *Client) ReflectionFeedback(ctx context.Context, userID string) (string, error) {
	body, err := c.call(ctx, CapabilityReflectionFeedback, http.MethodPost, c.cfg.ReflectionFeedbackURL, reflectionFeedbackRequest{UserID: userID})
	if err != nil {
		return "", err
	}
	return optionalField(body, "feedback")
}

func (c *Client) call(ctx context.Context, capability, method, target string, payload any) ([]byte, error) {
	start := time.Now()
	body, err := c.send(ctx, capability, method, target, payload)
	metrics.ObserveGatewayCall(capability, Outcome(err), time.Since(start))
	return body, err
}

func (c *Client) send(ctx context.Context, capability, method, target string, payload any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: rate limiter: %w: %w", capability, ErrUnavailable, err)
	}

	var reader io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal failed: %w", capability, err)
		}
		reader = bytes.NewReader(jsonData)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: request create failed: %w", capability, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID(ctx))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", capability, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: reading body: %w", capability, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Capability: capability, StatusCode: resp.StatusCode}
	}

	return body, nil
}

type requestIDKey struct{}

// WithRequestID attaches the inbound request id that outbound gateway calls
// forward as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the id set by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func requestID(ctx context.Context) string {
	if id := RequestIDFrom(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
