package message

import (
	"context"

	"github.com/rpggio/polyglot/internal/domain/activity"
)

// Detector infers the language of text. It always returns a code.
type Detector interface {
	Detect(ctx context.Context, text string) string
}

// Summarizer shortens text. It always returns a string.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// Translator translates text between two languages. Failures come back as
// diagnostic strings, not errors.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) string
}

// ActivityRecorder logs action outcomes.
type ActivityRecorder interface {
	Record(ctx context.Context, sessionID string, messageID *int64, typ activity.ActivityType, summary string, details map[string]any)
}
