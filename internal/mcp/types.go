package mcp

import (
	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/message"
	"github.com/rpggio/polyglot/internal/langcode"
)

type SubmitTextParams struct {
	Text string `json:"text" jsonschema:"text to submit; blank text is ignored"`
}

type ListMessagesParams struct{}

type GetMessageParams struct {
	ID int64 `json:"id" jsonschema:"message id"`
}

type SummarizeMessageParams struct {
	ID   int64  `json:"id" jsonschema:"message id"`
	Text string `json:"text,omitempty" jsonschema:"text to summarize; defaults to the message text"`
}

type TranslateMessageParams struct {
	ID     int64  `json:"id" jsonschema:"message id"`
	Text   string `json:"text,omitempty" jsonschema:"text to translate; defaults to the message text"`
	Target string `json:"target,omitempty" jsonschema:"target language code; defaults to the selected language"`
}

type SelectLanguageParams struct {
	Language string `json:"language" jsonschema:"language code such as en, fr or zh"`
}

type ListLanguagesParams struct{}

type GetRecentActivityParams struct {
	MessageID *int64                `json:"message_id,omitempty" jsonschema:"only entries for this message"`
	Type      activity.ActivityType `json:"type,omitempty" jsonschema:"only entries of this type"`
	Limit     int                   `json:"limit,omitempty" jsonschema:"maximum number of entries (default 50)"`
	Offset    int                   `json:"offset,omitempty" jsonschema:"entries to skip"`
}

type SubmitTextResponse struct {
	Created bool          `json:"created"`
	Message *message.View `json:"message,omitempty"`
}

type ListMessagesResponse struct {
	Messages         []message.View `json:"messages"`
	Revision         int64          `json:"revision"`
	SelectedLanguage string         `json:"selected_language"`
}

type SelectLanguageResponse struct {
	Language string `json:"language"`
}

type ListLanguagesResponse struct {
	Languages []langcode.Language `json:"languages"`
	Selected  string              `json:"selected"`
}

type GetRecentActivityResponse struct {
	Activity []activity.ActivityEntry `json:"activity"`
}
