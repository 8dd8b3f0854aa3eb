package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/polyglot/internal/domain/activity"
	"github.com/rpggio/polyglot/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	messageID := int64(1)
	entry1 := &activity.ActivityEntry{
		SessionID:    "s1",
		MessageID:    &messageID,
		ActivityType: activity.TypeMessageSubmitted,
		Summary:      "submitted message 1",
		Details:      `{"language":"en"}`,
	}
	entry2 := &activity.ActivityEntry{
		SessionID:    "s1",
		ActivityType: activity.TypeLanguageSelected,
		Summary:      "selected fr",
	}

	require.NoError(t, repo.Log(ctx, entry1))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Log(ctx, entry2))
	require.NotZero(t, entry1.ID)
	require.False(t, entry1.CreatedAt.IsZero())

	entries, err := repo.List(ctx, activity.ListActivityOptions{SessionID: "s1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entry2.ActivityType, entries[0].ActivityType)
	require.Nil(t, entries[0].MessageID)
	require.Equal(t, entry1.ActivityType, entries[1].ActivityType)
	require.Equal(t, messageID, *entries[1].MessageID)
	require.Equal(t, `{"language":"en"}`, entries[1].Details)
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	one, two := int64(1), int64(2)
	for _, entry := range []*activity.ActivityEntry{
		{SessionID: "s1", MessageID: &one, ActivityType: activity.TypeSummaryProduced, Summary: "a"},
		{SessionID: "s1", MessageID: &one, ActivityType: activity.TypeTranslationProduced, Summary: "b"},
		{SessionID: "s1", MessageID: &two, ActivityType: activity.TypeTranslationProduced, Summary: "c"},
		{SessionID: "s2", MessageID: &one, ActivityType: activity.TypeTranslationProduced, Summary: "d"},
	} {
		require.NoError(t, repo.Log(ctx, entry))
	}

	translated := activity.TypeTranslationProduced
	entries, err := repo.List(ctx, activity.ListActivityOptions{
		SessionID:    "s1",
		MessageID:    &one,
		ActivityType: &translated,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "b", entries[0].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{SessionID: "s3"})
	require.NoError(t, err)
	require.NotNil(t, entries)
	require.Empty(t, entries)
}

func TestActivityRepository_LimitOffset(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Now()
	for i, summary := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
			SessionID:    "s1",
			ActivityType: activity.TypeLanguageSelected,
			Summary:      summary,
			CreatedAt:    base.Add(time.Duration(i) * time.Second),
		}))
	}

	entries, err := repo.List(ctx, activity.ListActivityOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "third", entries[0].Summary)
	require.Equal(t, "second", entries[1].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Offset: 2})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "first", entries[0].Summary)
}

func TestActivityRepository_LogNil(t *testing.T) {
	repo := NewActivityRepository(NewTestDB(t))
	require.ErrorIs(t, repo.Log(context.Background(), nil), repository.ErrInvalidInput)
}
