package message

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_AppendAssignsOrderedIDs(t *testing.T) {
	store := NewStore()
	first := store.Append(Message{Text: "one", Language: "en"})
	second := store.Append(Message{Text: "two", Language: "fr"})

	require.Equal(t, int64(1), first.ID)
	require.Equal(t, int64(2), second.ID)
	require.False(t, first.CreatedAt.IsZero())

	snap := store.Snapshot()
	require.Equal(t, int64(2), snap.Revision)
	require.Equal(t, []string{"one", "two"}, texts(snap.Messages))
}

func TestStore_PatchMergesNamedFields(t *testing.T) {
	store := NewStore()
	msg := store.Append(Message{Text: "hello", Language: "en"})

	_, err := store.Patch(msg.ID, Patch{Error: stringPtr("boom")})
	require.NoError(t, err)
	patched, err := store.Patch(msg.ID, Patch{Summary: stringPtr("hi")})
	require.NoError(t, err)

	require.Equal(t, "hello", patched.Text)
	require.Equal(t, "en", patched.Language)
	require.Equal(t, "hi", *patched.Summary)
	require.Equal(t, "boom", *patched.Error)
	require.Nil(t, patched.Translation)
}

func TestStore_PatchUnknownID(t *testing.T) {
	store := NewStore()
	store.Append(Message{Text: "hello", Language: "en"})

	for _, id := range []int64{0, -1, 2} {
		_, err := store.Patch(id, Patch{Summary: stringPtr("x")})
		require.ErrorIs(t, err, ErrMessageNotFound)
	}
	require.Equal(t, int64(1), store.Snapshot().Revision)
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	store := NewStore()
	msg := store.Append(Message{Text: "hello", Language: "en"})

	before := store.Snapshot()
	_, err := store.Patch(msg.ID, Patch{Translation: stringPtr("bonjour")})
	require.NoError(t, err)
	store.Append(Message{Text: "second", Language: "en"})

	require.Len(t, before.Messages, 1)
	require.Nil(t, before.Messages[0].Translation)

	before.Messages[0].Text = "mutated"
	got, ok := store.Get(msg.ID)
	require.True(t, ok)
	require.Equal(t, "hello", got.Text)
	require.Equal(t, "bonjour", *got.Translation)
}

func TestStore_EmptySnapshot(t *testing.T) {
	snap := NewStore().Snapshot()
	require.NotNil(t, snap.Messages)
	require.Empty(t, snap.Messages)
	require.Zero(t, snap.Revision)
}

func TestStore_ConcurrentWriters(t *testing.T) {
	store := NewStore()
	target := store.Append(Message{Text: "shared", Language: "en"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Append(Message{Text: "x", Language: "en"})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Patch(target.ID, Patch{Summary: stringPtr("s")})
		}()
	}
	wg.Wait()

	snap := store.Snapshot()
	require.Len(t, snap.Messages, 51)
	require.Equal(t, int64(101), snap.Revision)
	for i, msg := range snap.Messages {
		require.Equal(t, int64(i+1), msg.ID)
	}
}

func TestMessage_CanSummarize(t *testing.T) {
	long := make([]byte, SummaryEligibleLength+1)
	for i := range long {
		long[i] = 'a'
	}

	require.True(t, Message{Language: "en", Text: string(long)}.CanSummarize())
	require.False(t, Message{Language: "fr", Text: string(long)}.CanSummarize())
	require.False(t, Message{Language: "en", Text: string(long[:SummaryEligibleLength])}.CanSummarize())
}

func texts(msgs []Message) []string {
	out := make([]string, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.Text)
	}
	return out
}
