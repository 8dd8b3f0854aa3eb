package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/domain/session"
	"github.com/rpggio/polyglot/internal/langcode"
)

// Service runs the submit, summarize and translate actions against the
// session's message store.
//
// Actions on different messages run concurrently without coordination.
// Two in-flight actions on the same message field are not ordered either:
// whichever completes last is what the store keeps.
type Service struct {
	store      *Store
	session    *session.Session
	detector   Detector
	summarizer Summarizer
	translator Translator
	activities ActivityRecorder
	logger     *slog.Logger
}

// NewService creates a new message service.
func NewService(
	store *Store,
	sess *session.Session,
	detector Detector,
	summarizer Summarizer,
	translator Translator,
	activities ActivityRecorder,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:      store,
		session:    sess,
		detector:   detector,
		summarizer: summarizer,
		translator: translator,
		activities: activities,
		logger:     logger,
	}
}

// Submit detects the language of text and appends a new message. Blank text
// is ignored and reported as false.
func (s *Service) Submit(ctx context.Context, text string) (Message, bool) {
	if strings.TrimSpace(text) == "" {
		return Message{}, false
	}

	lang, err := guard(func() string { return s.detector.Detect(ctx, text) })
	if err != nil {
		s.logger.Error("language detection panicked", "error", err)
	}
	lang = langcode.NormalizeOr(lang, langcode.Default)

	msg := s.store.Append(Message{Text: text, Language: lang})
	s.logger.Info("message submitted", "message_id", msg.ID, "language", msg.Language)
	s.record(ctx, &msg.ID, activity.TypeMessageSubmitted, fmt.Sprintf("submitted message %d", msg.ID), map[string]any{
		"language": msg.Language,
	})
	return msg, true
}

// RequestSummary summarizes text (the message's own text when empty) and
// stores the result on message id.
func (s *Service) RequestSummary(ctx context.Context, id int64, text string) (Message, error) {
	current, ok := s.store.Get(id)
	if !ok {
		return Message{}, ErrMessageNotFound
	}
	if text == "" {
		text = current.Text
	}

	summary, err := guard(func() string { return s.summarizer.Summarize(ctx, text) })
	if err != nil {
		s.logger.Error("summarization failed", "message_id", id, "error", err)
		s.record(ctx, &id, activity.TypeSummaryFailed, fmt.Sprintf("summary of message %d failed", id), map[string]any{
			"error": err.Error(),
		})
		return s.store.Patch(id, Patch{Error: stringPtr(MsgSummarizationFailed)})
	}

	s.record(ctx, &id, activity.TypeSummaryProduced, fmt.Sprintf("summarized message %d", id), map[string]any{
		"length": len(summary),
	})
	return s.store.Patch(id, Patch{Summary: &summary})
}

// RequestTranslation translates text (the message's own text when empty)
// from the message's language into target (the selected language when
// empty), stores the result and makes target the selected language.
// A message without a language is left untouched.
func (s *Service) RequestTranslation(ctx context.Context, id int64, text, target string) (Message, error) {
	current, ok := s.store.Get(id)
	if !ok {
		return Message{}, ErrMessageNotFound
	}
	if current.Language == "" {
		return current, nil
	}
	if text == "" {
		text = current.Text
	}
	if target == "" {
		target = s.session.Target.Get()
	}
	target = langcode.NormalizeOr(target, strings.TrimSpace(target))

	translation, err := guard(func() string {
		return s.translator.Translate(ctx, text, current.Language, target)
	})
	if err != nil {
		s.logger.Error("translation failed", "message_id", id, "target", target, "error", err)
		s.record(ctx, &id, activity.TypeTranslationFailed, fmt.Sprintf("translation of message %d failed", id), map[string]any{
			"target": target,
			"error":  err.Error(),
		})
		return s.store.Patch(id, Patch{Error: stringPtr(MsgTranslationFailed)})
	}

	updated, err := s.store.Patch(id, Patch{Translation: &translation})
	if err != nil {
		return Message{}, err
	}
	s.session.Target.Set(target)

	s.record(ctx, &id, activity.TypeTranslationProduced, fmt.Sprintf("translated message %d", id), map[string]any{
		"source": current.Language,
		"target": target,
	})
	return updated, nil
}

// SelectLanguage sets the session-wide target language.
func (s *Service) SelectLanguage(ctx context.Context, lang string) (string, error) {
	normalized, ok := langcode.Normalize(lang)
	if !ok {
		return "", session.ErrInvalidLanguage
	}
	prev := s.session.Target.Set(normalized)
	s.record(ctx, nil, activity.TypeLanguageSelected, fmt.Sprintf("selected %s", normalized), map[string]any{
		"previous": prev,
		"language": normalized,
	})
	return normalized, nil
}

// SelectedLanguage returns the session-wide target language.
func (s *Service) SelectedLanguage() string {
	return s.session.Target.Get()
}

// Get returns message id.
func (s *Service) Get(id int64) (Message, error) {
	msg, ok := s.store.Get(id)
	if !ok {
		return Message{}, ErrMessageNotFound
	}
	return msg, nil
}

// List returns the current revision of the message list.
func (s *Service) List() Snapshot {
	return s.store.Snapshot()
}

// Session returns the session the service works for.
func (s *Service) Session() session.Info {
	return s.session.Info()
}

func (s *Service) record(ctx context.Context, messageID *int64, typ activity.ActivityType, summary string, details map[string]any) {
	if s.activities == nil {
		return
	}
	s.activities.Record(ctx, s.session.ID, messageID, typ, summary, details)
}

// guard runs fn and turns a panic into an error.
func guard(fn func() string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errActionPanicked, r)
		}
	}()
	return fn(), nil
}
