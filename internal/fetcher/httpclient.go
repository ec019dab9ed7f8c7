package fetcher

import (
	"log/slog"
	"time"

	"resty.dev/v3"
)

const (
	// Default retry configuration
	defaultRetryCount       = 3
	defaultRetryWaitTime    = 1 * time.Second
	defaultRetryMaxWaitTime = 10 * time.Second

	// DefaultTimeout bounds a single request including retries
	DefaultTimeout = 10 * time.Second
)

type clientOptions struct {
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	timeout          time.Duration
}

// Option configures the HTTP client built by NewHTTPClient
type Option func(*clientOptions)

// WithRetries overrides the retry count and backoff bounds
func WithRetries(count int, wait, maxWait time.Duration) Option {
	return func(o *clientOptions) {
		o.retryCount = count
		o.retryWaitTime = wait
		o.retryMaxWaitTime = maxWait
	}
}

// WithTimeout sets the overall request timeout; zero keeps the default
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// NewHTTPClient creates a new HTTP client with retry logic and exponential backoff
func NewHTTPClient(baseURL string, opts ...Option) *resty.Client {
	o := clientOptions{
		retryCount:       defaultRetryCount,
		retryWaitTime:    defaultRetryWaitTime,
		retryMaxWaitTime: defaultRetryMaxWaitTime,
		timeout:          DefaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(o.timeout).
		SetRetryCount(o.retryCount).
		SetRetryWaitTime(o.retryWaitTime).
		SetRetryMaxWaitTime(o.retryMaxWaitTime).
		AddRetryConditions(retryCondition).
		AddRetryHooks(retryHook)

	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	return client
}

// retryCondition determines whether a request should be retried based on the response and error
func retryCondition(r *resty.Response, err error) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	switch code := r.StatusCode(); {
	case code >= 500:
		return true
	case code == 429, code == 408:
		return true
	default:
		// Other 4xx responses will not improve on retry
		return false
	}
}

// retryHook logs retry attempts
func retryHook(r *resty.Response, err error) {
	if err != nil {
		slog.Debug("retrying request due to error",
			"url", r.Request.URL,
			"attempt", r.Request.Attempt,
			"error", err.Error())
		return
	}

	slog.Debug("retrying request due to status code",
		"url", r.Request.URL,
		"attempt", r.Request.Attempt,
		"status_code", r.StatusCode())
}
