package message

import (
	"time"
	"unicode/utf8"
)

// SummaryEligibleLength is the length a text must exceed before a summary is
// worth offering.
const SummaryEligibleLength = 150

// Message is the per-submission unit of state. Text, Language and ID never
// change after creation; the optional fields are patched in place.
type Message struct {
	ID          int64     `json:"id"`
	Text        string    `json:"text"`
	Language    string    `json:"language"`
	Summary     *string   `json:"summary,omitempty"`
	Translation *string   `json:"translation,omitempty"`
	Error       *string   `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CanSummarize reports whether a summary should be offered for the message:
// English text longer than SummaryEligibleLength characters.
func (m Message) CanSummarize() bool {
	return m.Language == "en" && utf8.RuneCountInString(m.Text) > SummaryEligibleLength
}

// View is the outward shape of a message, with the derived summary flag.
type View struct {
	Message
	CanSummarize bool `json:"can_summarize"`
}

// View returns the outward shape of m.
func (m Message) View() View {
	return View{Message: m, CanSummarize: m.CanSummarize()}
}

// Views converts msgs to their outward shape.
func Views(msgs []Message) []View {
	out := make([]View, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.View())
	}
	return out
}

// Patch names the optional fields to overwrite. Nil fields are left as they are.
type Patch struct {
	Summary     *string
	Translation *string
	Error       *string
}

// Apply returns m with the patch's named fields replaced.
func (p Patch) Apply(m Message) Message {
	if p.Summary != nil {
		m.Summary = p.Summary
	}
	if p.Translation != nil {
		m.Translation = p.Translation
	}
	if p.Error != nil {
		m.Error = p.Error
	}
	return m
}

// Snapshot is one consistent revision of the message list.
type Snapshot struct {
	Revision int64     `json:"revision"`
	Messages []Message `json:"messages"`
}

func stringPtr(s string) *string {
	return &s
}
