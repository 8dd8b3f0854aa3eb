package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/langcode"
)

// registerTools adds every polyglot tool to server.
func registerTools(server *sdkmcp.Server, services Services) {
	h := &toolHandlers{messages: services.Messages, activity: services.Activity}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_text",
		Description: "Submit a new message. Its language is detected automatically; blank text is ignored",
	}, h.submitText)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_messages",
		Description: "List all messages of the session in submission order, with the selected target language",
	}, h.listMessages)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_message",
		Description: "Get one message with its summary, translation and error, if any",
	}, h.getMessage)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "summarize_message",
		Description: "Summarize a message and store the summary on it. Short texts come back unchanged",
	}, h.summarizeMessage)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "translate_message",
		Description: "Translate a message into a target language and make that language the selected one",
	}, h.translateMessage)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "select_language",
		Description: "Set the session-wide target language used when translate_message gets no target",
	}, h.selectLanguage)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_languages",
		Description: "List the selectable target languages and the current selection",
	}, h.listLanguages)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get recent activity entries for the session, newest first, optionally for one message or type",
	}, h.getRecentActivity)
}

type toolHandlers struct {
	messages MessageService
	activity ActivityService
}

func (h *toolHandlers) submitText(ctx context.Context, _ *sdkmcp.CallToolRequest, in SubmitTextParams) (*sdkmcp.CallToolResult, any, error) {
	msg, ok := h.messages.Submit(ctx, in.Text)
	if !ok {
		return nil, SubmitTextResponse{Created: false}, nil
	}
	view := msg.View()
	return nil, SubmitTextResponse{Created: true, Message: &view}, nil
}

func (h *toolHandlers) listMessages(_ context.Context, _ *sdkmcp.CallToolRequest, _ ListMessagesParams) (*sdkmcp.CallToolResult, any, error) {
	snap := h.messages.List()
	return nil, ListMessagesResponse{
		Messages:         message.Views(snap.Messages),
		Revision:         snap.Revision,
		SelectedLanguage: h.messages.SelectedLanguage(),
	}, nil
}

func (h *toolHandlers) getMessage(_ context.Context, _ *sdkmcp.CallToolRequest, in GetMessageParams) (*sdkmcp.CallToolResult, any, error) {
	msg, err := h.messages.Get(in.ID)
	if err != nil {
		return nil, nil, toolError(err)
	}
	return nil, msg.View(), nil
}

func (h *toolHandlers) summarizeMessage(ctx context.Context, _ *sdkmcp.CallToolRequest, in SummarizeMessageParams) (*sdkmcp.CallToolResult, any, error) {
	msg, err := h.messages.RequestSummary(ctx, in.ID, in.Text)
	if err != nil {
		return nil, nil, toolError(err)
	}
	return nil, msg.View(), nil
}

func (h *toolHandlers) translateMessage(ctx context.Context, _ *sdkmcp.CallToolRequest, in TranslateMessageParams) (*sdkmcp.CallToolResult, any, error) {
	msg, err := h.messages.RequestTranslation(ctx, in.ID, in.Text, in.Target)
	if err != nil {
		return nil, nil, toolError(err)
	}
	return nil, msg.View(), nil
}

func (h *toolHandlers) selectLanguage(ctx context.Context, _ *sdkmcp.CallToolRequest, in SelectLanguageParams) (*sdkmcp.CallToolResult, any, error) {
	lang, err := h.messages.SelectLanguage(ctx, in.Language)
	if err != nil {
		return nil, nil, toolError(err)
	}
	return nil, SelectLanguageResponse{Language: lang}, nil
}

func (h *toolHandlers) listLanguages(_ context.Context, _ *sdkmcp.CallToolRequest, _ ListLanguagesParams) (*sdkmcp.CallToolResult, any, error) {
	return nil, ListLanguagesResponse{
		Languages: langcode.Supported(),
		Selected:  h.messages.SelectedLanguage(),
	}, nil
}

func (h *toolHandlers) getRecentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, in GetRecentActivityParams) (*sdkmcp.CallToolResult, any, error) {
	if h.activity == nil {
		return nil, GetRecentActivityResponse{Activity: []activity.ActivityEntry{}}, nil
	}

	opts := activity.ListActivityOptions{
		SessionID: getSessionID(ctx),
		MessageID: in.MessageID,
		Limit:     in.Limit,
		Offset:    in.Offset,
	}
	if in.Type != "" {
		typ := in.Type
		opts.ActivityType = &typ
	}

	entries, err := h.activity.GetRecentActivity(ctx, opts)
	if err != nil {
		return nil, nil, toolError(err)
	}
	if entries == nil {
		entries = []activity.ActivityEntry{}
	}
	return nil, GetRecentActivityResponse{Activity: entries}, nil
}
