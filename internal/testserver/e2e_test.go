package testserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/transport"
)

// fakeGoogle answers detection with the configured code and translation
// with a fixed segment list.
func fakeGoogle(t *testing.T, detected, translated string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		if q.Get("sl") == "auto" {
			_ = json.NewEncoder(w).Encode([]any{nil, nil, detected})
			return
		}
		_ = json.NewEncoder(w).Encode([]any{
			[]any{[]any{translated, q.Get("q"), nil, nil, 1}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestE2E_DetectAndTranslate(t *testing.T) {
	google := fakeGoogle(t, "fr", "Hello world")
	ts := New(t, Options{TranslateURL: google.URL})

	resp := post(t, ts.URL("/api/messages"), `{"text":"Bonjour le monde"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[message.View](t, resp)
	require.Equal(t, "fr", created.Language)
	require.False(t, created.CanSummarize)

	resp = post(t, ts.URL("/api/messages/1/translate"), `{"target":"en"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	translated := decode[message.View](t, resp)
	require.Equal(t, "Hello world", *translated.Translation)
	require.Nil(t, translated.Error)
	require.Equal(t, "en", ts.Messages.SelectedLanguage())
}

func TestE2E_SameLanguageTranslation(t *testing.T) {
	google := fakeGoogle(t, "en", "unused")
	ts := New(t, Options{TranslateURL: google.URL})

	post(t, ts.URL("/api/messages"), `{"text":"hello"}`)
	resp := post(t, ts.URL("/api/messages/1/translate"), `{}`)
	translated := decode[message.View](t, resp)
	require.Equal(t, "Please select two distinct languages.", *translated.Translation)
}

func TestE2E_UpstreamDown(t *testing.T) {
	google := fakeGoogle(t, "fr", "unused")
	google.Close()
	ts := New(t, Options{TranslateURL: google.URL})

	resp := post(t, ts.URL("/api/messages"), `{"text":"Bonjour"}`)
	created := decode[message.View](t, resp)
	require.Equal(t, "en", created.Language)

	resp = post(t, ts.URL("/api/messages/1/translate"), `{"target":"de"}`)
	translated := decode[message.View](t, resp)
	require.Equal(t, "Translation error!", *translated.Translation)
}

func TestE2E_SummarizeTiers(t *testing.T) {
	google := fakeGoogle(t, "en", "unused")
	remoteCalls := 0
	remote := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		remoteCalls++
		if r.Header.Get("Authorization") != "Bearer token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[{"summary_text":"A remote summary."}]`))
	}))
	t.Cleanup(remote.Close)

	ts := New(t, Options{
		TranslateURL:    google.URL,
		SummarizerURL:   remote.URL,
		SummarizerToken: "token",
	})

	long := strings.Repeat("This sentence is long enough. ", 8)
	body, err := json.Marshal(map[string]string{"text": long})
	require.NoError(t, err)
	created := decode[message.View](t, post(t, ts.URL("/api/messages"), string(body)))
	require.True(t, created.CanSummarize)

	summarized := decode[message.View](t, post(t, ts.URL("/api/messages/1/summarize"), ""))
	require.Equal(t, "A remote summary.", *summarized.Summary)
	require.Equal(t, 1, remoteCalls)

	post(t, ts.URL("/api/messages"), `{"text":"tiny"}`)
	tiny := decode[message.View](t, post(t, ts.URL("/api/messages/2/summarize"), ""))
	require.Equal(t, "tiny", *tiny.Summary)
	require.Equal(t, 1, remoteCalls)
}

func TestE2E_SummarizeExtractFallback(t *testing.T) {
	google := fakeGoogle(t, "en", "unused")
	ts := New(t, Options{TranslateURL: google.URL})

	text := "One. Two! Three? Four." + strings.Repeat(" ", 150)
	body, err := json.Marshal(map[string]string{"text": text})
	require.NoError(t, err)
	post(t, ts.URL("/api/messages"), string(body))

	summarized := decode[message.View](t, post(t, ts.URL("/api/messages/1/summarize"), ""))
	require.Equal(t, "One. Two! Three?", *summarized.Summary)
}

func TestE2E_ActivityLog(t *testing.T) {
	google := fakeGoogle(t, "fr", "Hi")
	ts := New(t, Options{TranslateURL: google.URL})

	post(t, ts.URL("/api/messages"), `{"text":"Salut"}`)
	post(t, ts.URL("/api/messages/1/translate"), `{"target":"en"}`)

	req, err := http.NewRequest(http.MethodPut, ts.URL("/api/language"), bytes.NewBufferString(`{"language":"es"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL("/api/activity"))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	body := decode[transport.ActivityResponse](t, resp)
	require.Len(t, body.Entries, 3)

	types := make([]activity.ActivityType, 0, len(body.Entries))
	for _, entry := range body.Entries {
		require.Equal(t, ts.Session.ID, entry.SessionID)
		types = append(types, entry.ActivityType)
	}
	require.ElementsMatch(t, []activity.ActivityType{
		activity.TypeMessageSubmitted,
		activity.TypeTranslationProduced,
		activity.TypeLanguageSelected,
	}, types)

	resp, err = http.Get(ts.URL("/api/activity?message_id=1&type=translation_produced"))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	filtered := decode[transport.ActivityResponse](t, resp)
	require.Len(t, filtered.Entries, 1)
	require.Equal(t, int64(1), *filtered.Entries[0].MessageID)
}

func TestE2E_MCPOverHTTP(t *testing.T) {
	google := fakeGoogle(t, "fr", "Hello world")
	ts := New(t, Options{TranslateURL: google.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.StreamableClientTransport{Endpoint: ts.URL("/mcp")}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "submit_text",
		Arguments: map[string]any{"text": "Bonjour le monde"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	result, err = session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "translate_message",
		Arguments: map[string]any{"id": 1, "target": "en"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	msg, err := ts.Messages.Get(1)
	require.NoError(t, err)
	require.Equal(t, "Hello world", *msg.Translation)

	// HTTP and MCP share the one session.
	resp, err := http.Get(ts.URL("/api/messages"))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	list := decode[transport.ListMessagesResponse](t, resp)
	require.Len(t, list.Messages, 1)
	require.Equal(t, "en", list.SelectedLanguage)
}
