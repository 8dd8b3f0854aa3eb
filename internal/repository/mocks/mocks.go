package mocks

import (
	"context"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/stretchr/testify/mock"
)

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRecorder is a mock for message.ActivityRecorder.
type ActivityRecorder struct {
	mock.Mock
}

func (m *ActivityRecorder) Record(ctx context.Context, sessionID string, messageID *int64, typ activity.ActivityType, summary string, details map[string]any) {
	m.Called(ctx, sessionID, messageID, typ, summary, details)
}

// Detector is a mock for message.Detector.
type Detector struct {
	mock.Mock
}

func (m *Detector) Detect(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

// Summarizer is a mock for message.Summarizer.
type Summarizer struct {
	mock.Mock
}

func (m *Summarizer) Summarize(ctx context.Context, text string) string {
	args := m.Called(ctx, text)
	return args.String(0)
}

// Translator is a mock for message.Translator.
type Translator struct {
	mock.Mock
}

func (m *Translator) Translate(ctx context.Context, text, source, target string) string {
	args := m.Called(ctx, text, source, target)
	return args.String(0)
}
