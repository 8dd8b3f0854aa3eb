// Package gtranslate talks to the public translate_a/single endpoint for both
// language detection and translation.
package gtranslate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/rpggio/polyglot/internal/langcode"
)

// DefaultBaseURL is the public endpoint used when none is configured.
const DefaultBaseURL = "https://translate.googleapis.com/translate_a/single"

const (
	// MsgDistinctLanguages is returned when the source/target pair is unusable.
	MsgDistinctLanguages = "Please select two distinct languages."
	// MsgTranslationError is returned when the endpoint fails or answers garbage.
	MsgTranslationError = "Translation error!"
)

var (
	errMalformed = errors.New("malformed response")
	errNoResult  = errors.New("no translated segments")
)

// Client detects and translates text. Both operations always return a value.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithLogger sets the logger used for failure reports.
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		if logger != nil {
			cl.logger = logger
		}
	}
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Detect returns the detected language code of text, or langcode.Default on
// any failure.
func (c *Client) Detect(ctx context.Context, text string) string {
	if strings.TrimSpace(text) == "" {
		return langcode.Default
	}

	payload, err := c.fetch(ctx, "auto", langcode.Default, text)
	if err != nil {
		c.logger.Warn("language detection failed, falling back", "fallback", langcode.Default, "error", err)
		return langcode.Default
	}

	code, err := parseDetected(payload)
	if err != nil {
		c.logger.Warn("language detection failed, falling back", "fallback", langcode.Default, "error", err)
		return langcode.Default
	}

	c.logger.Debug("language detected", "language", code)
	return code
}

// Translate translates text from source to target. Invalid pairs and failures
// are reported through the returned string.
func (c *Client) Translate(ctx context.Context, text, source, target string) string {
	source = langcode.NormalizeOr(source, strings.TrimSpace(source))
	target = langcode.NormalizeOr(target, strings.TrimSpace(target))
	if text == "" || source == "" || target == "" || source == target {
		return MsgDistinctLanguages
	}

	payload, err := c.fetch(ctx, source, target, text)
	if err != nil {
		c.logger.Error("translation request failed", "source", source, "target", target, "error", err)
		return MsgTranslationError
	}

	translated, err := parseTranslation(payload)
	if err != nil {
		c.logger.Error("translation response unusable", "source", source, "target", target, "error", err)
		return MsgTranslationError
	}

	return translated
}

func (c *Client) fetch(ctx context.Context, source, target, text string) ([]byte, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// parseDetected reads the language code at index 2 of the top-level array.
func parseDetected(payload []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return "", fmt.Errorf("%w: %v", errMalformed, err)
	}
	if len(top) < 3 {
		return "", fmt.Errorf("%w: missing language field", errMalformed)
	}
	var raw string
	if err := json.Unmarshal(top[2], &raw); err != nil {
		return "", fmt.Errorf("%w: language field: %v", errMalformed, err)
	}
	code, ok := langcode.Normalize(raw)
	if !ok {
		return "", fmt.Errorf("%w: unusable language %q", errMalformed, raw)
	}
	return code, nil
}

// parseTranslation joins the first element of every segment at index 0.
func parseTranslation(payload []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(payload, &top); err != nil {
		return "", fmt.Errorf("%w: %v", errMalformed, err)
	}
	if len(top) == 0 {
		return "", errNoResult
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", fmt.Errorf("%w: segments: %v", errMalformed, err)
	}

	parts := make([]string, 0, len(segments))
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var fragment *string
		if err := json.Unmarshal(segment[0], &fragment); err != nil {
			return "", fmt.Errorf("%w: fragment: %v", errMalformed, err)
		}
		if fragment == nil {
			continue
		}
		if trimmed := strings.TrimSpace(*fragment); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	if len(parts) == 0 {
		return "", errNoResult
	}
	return strings.Join(parts, " "), nil
}
