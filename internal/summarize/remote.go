package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultRemoteURL is the hosted inference endpoint used when none is configured.
const DefaultRemoteURL = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

// RemoteModel calls a hosted inference endpoint that accepts {"inputs": text}
// and answers [{"summary_text": "..."}].
type RemoteModel struct {
	url   string
	token string
	http  *http.Client
}

// NewRemoteModel creates a RemoteModel. A nil client uses a default one.
func NewRemoteModel(url, token string, client *http.Client) *RemoteModel {
	if url == "" {
		url = DefaultRemoteURL
	}
	if client == nil {
		client = &http.Client{}
	}
	return &RemoteModel{url: url, token: token, http: client}
}

type remoteRequest struct {
	Inputs string `json:"inputs"`
}

type remoteSummary struct {
	SummaryText string `json:"summary_text"`
}

// Summarize posts text to the endpoint and returns the first summary_text.
func (m *RemoteModel) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(remoteRequest{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	resp, err := m.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var out []remoteSummary
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out) == 0 || out[0].SummaryText == "" {
		return "", fmt.Errorf("response has no summary_text")
	}
	return out[0].SummaryText, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
