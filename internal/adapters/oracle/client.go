// Package oracle provides a resilient client for the external text oracle
// (a Gemini style generateContent endpoint). The oracle is latent and
// occasionally refuses or emits malformed output; callers are expected to
// repair its answers, this client only guarantees transport
package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	perr "resumail/internal/platform/errors"
	"resumail/internal/platform/logger"
)

const (
	baseURLDefault  = "https://generativelanguage.googleapis.com/v1beta"
	modelDefault    = "gemini-2.0-flash"
	defaultTimeout  = 90 * time.Second
	defaultMaxRetry = 3

	// low temperature keeps classification runs deterministic-leaning
	defaultTemperature = 0.1
	defaultMaxTokens   = 2048
)

// Options configures the Client
type Options struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration

	Temperature     float64
	MaxOutputTokens int

	// Retry config for transient and rate limited responses
	MaxRetries int
}

// Client talks to the generateContent endpoint with retries and a bounded
// per call timeout
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Temperature <= 0 {
		o.Temperature = defaultTemperature
	}
	if o.MaxOutputTokens <= 0 {
		o.MaxOutputTokens = defaultMaxTokens
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("oracle"),
		sleep: time.Sleep,
	}
}

// Complete sends a system instruction plus user payload and returns the raw
// text answer. Any transport failure, non-2xx status after retries, or empty
// answer surfaces as an Unavailable error; the caller decides how to degrade
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	body := request{
		Contents: []content{{Role: "user", Parts: []part{{Text: user}}}},
		GenerationConfig: generationConfig{
			Temperature:      c.opts.Temperature,
			MaxOutputTokens:  c.opts.MaxOutputTokens,
			ResponseMimeType: "application/json",
		},
	}
	if strings.TrimSpace(system) != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "oracle marshal request failed")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.opts.BaseURL, c.opts.Model, c.opts.APIKey)

	var lastErr error
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			c.sleep(time.Duration(1<<uint(attempt-1)) * 500 * time.Millisecond)
		}
		select {
		case <-ctx.Done():
			return "", perr.Wrap(ctx.Err(), perr.ErrorCodeUnavailable, "oracle call cancelled")
		default:
		}

		text, retryable, err := c.once(ctx, url, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			break
		}
		c.log.Warn().Err(err).Int("attempt", attempt+1).Msg("oracle call retrying")
	}
	return "", perr.Wrap(lastErr, perr.ErrorCodeUnavailable, "oracle unavailable")
}

// once performs a single request; retryable reports whether another attempt
// could plausibly succeed
func (c *Client) once(ctx context.Context, url string, payload []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", true, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, err
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", true, fmt.Errorf("oracle rate limited (429)")
	case resp.StatusCode >= 500:
		return "", true, fmt.Errorf("oracle server error (%d)", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", false, fmt.Errorf("oracle request failed (%d): %s", resp.StatusCode, snippet(raw))
	}

	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", false, fmt.Errorf("oracle response unparseable: %w", err)
	}
	if out.Error != nil {
		return "", false, fmt.Errorf("oracle api error: %s", out.Error.Message)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("oracle returned no completion")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", false, fmt.Errorf("oracle returned empty completion")
	}
	return answer, false, nil
}

// snippet bounds an error body for log friendliness
func snippet(b []byte) string {
	const n = 256
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
