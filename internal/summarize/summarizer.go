// Package summarize shortens text through an ordered chain of strategies:
// an optional on-device capability, a remote model, and a local extractive
// fallback that cannot fail.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// PassthroughLimit is the longest text (in characters) returned unchanged.
const PassthroughLimit = 150

// Tier names the strategy that produced a summary.
type Tier string

const (
	TierPassthrough Tier = "passthrough"
	TierOnDevice    Tier = "on_device"
	TierRemote      Tier = "remote"
	TierExtract     Tier = "extract"
)

var errEmptySummary = errors.New("empty summary")

// Result is what the on-device capability hands back.
type Result struct {
	Summary string
}

// Capability is an environment-provided summarizer. Availability is not
// guaranteed; a nil Capability means it is absent.
type Capability interface {
	Summarize(ctx context.Context, text string) (Result, error)
}

// Model is a remote summarization endpoint.
type Model interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Outcome is a summary together with the tier that produced it.
type Outcome struct {
	Summary string
	Tier    Tier
}

// Summarizer runs the tier chain. The zero value only uses extraction.
type Summarizer struct {
	capability Capability
	model      Model
	logger     *slog.Logger
}

// New creates a Summarizer. capability and model may be nil.
func New(capability Capability, model Model, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Summarizer{
		capability: capability,
		model:      model,
		logger:     logger,
	}
}

// Summarize returns a shortened version of text. It never fails.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	return s.Run(ctx, text).Summary
}

// Run is Summarize that also reports which tier answered.
func (s *Summarizer) Run(ctx context.Context, text string) Outcome {
	if utf8.RuneCountInString(text) <= PassthroughLimit {
		return Outcome{Summary: text, Tier: TierPassthrough}
	}

	logger := s.log()

	if s.capability != nil {
		summary, err := s.fromCapability(ctx, text)
		if err == nil {
			return Outcome{Summary: summary, Tier: TierOnDevice}
		}
		logger.Warn("on-device summarizer failed, falling back", "error", err)
	}

	if s.model != nil {
		summary, err := s.fromModel(ctx, text)
		if err == nil {
			return Outcome{Summary: summary, Tier: TierRemote}
		}
		logger.Warn("remote summarizer failed, falling back", "error", err)
	} else {
		logger.Debug("remote summarizer not configured")
	}

	return Outcome{Summary: Extract(text), Tier: TierExtract}
}

func (s *Summarizer) fromCapability(ctx context.Context, text string) (summary string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("capability panicked: %v", r)
		}
	}()

	res, err := s.capability.Summarize(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(res.Summary) == "" {
		return "", errEmptySummary
	}
	return res.Summary, nil
}

func (s *Summarizer) fromModel(ctx context.Context, text string) (summary string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	summary, err = s.model.Summarize(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(summary) == "" {
		return "", errEmptySummary
	}
	return summary, nil
}

func (s *Summarizer) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}
