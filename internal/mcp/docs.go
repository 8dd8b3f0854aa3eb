package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `polyglot keeps one chat-style session of messages. Each message gets its language detected on submit and can be summarized or translated on request.

Core concepts:
- Message: submitted text with a detected language code and optional summary, translation and error fields. Ids start at 1 and never change.
- Selected language: the session-wide translation target. translate_message updates it; select_language sets it directly.
- Summary eligibility: can_summarize is true for English text longer than 150 characters. Shorter text summarizes to itself.

Workflow:
1) submit_text for each new piece of text.
2) list_messages or get_message to read state.
3) summarize_message / translate_message to fill in the optional fields.
4) get_recent_activity to see what happened, newest first.

Failures never raise: a failed summary or translation sets the message's error field, and translation problems come back as the translation text itself ("Please select two distinct languages.", "Translation error!").

Docs:
- polyglot://docs/index
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "polyglot://docs/index",
		Name:        "docs_index",
		Title:       "polyglot docs index",
		Description: "Tools, message fields and fallback behavior.",
		Content: `# polyglot

## Tools

- submit_text(text) appends a message; blank text is ignored (created=false).
- list_messages() returns every message plus revision and selected_language.
- get_message(id)
- summarize_message(id, text?) stores a summary on the message.
- translate_message(id, text?, target?) stores a translation and selects target.
- select_language(language)
- list_languages()
- get_recent_activity(message_id?, type?, limit?, offset?)

## Summaries

Text of 150 characters or fewer is returned as is. Longer text tries the
on-device model, then the remote model, then the first three sentences.

## Translation results

- Same source and target, or empty text: "Please select two distinct languages."
- Upstream failure: "Translation error!"

Both are stored as the translation. Unexpected failures set the message's
error field to "Summarization failed." or "Translation failed." and that
error stays until replaced by another failure.

## Concurrency

Actions on one message are not ordered; when two summaries or two
translations overlap, the one that finishes last is kept.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
