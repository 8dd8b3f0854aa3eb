package session_test

import (
	"sync"
	"testing"

	"github.com/rpggio/polyglot/internal/domain/session"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	sess := session.New()
	require.NotEmpty(t, sess.ID)
	require.False(t, sess.StartedAt.IsZero())

	info := sess.Info()
	require.Equal(t, sess.ID, info.ID)
	require.Equal(t, "en", info.SelectedLanguage)
}

func TestSelection_LastWriteWins(t *testing.T) {
	sel := session.NewSelection("en")
	require.Equal(t, "en", sel.Set("fr"))
	require.Equal(t, "fr", sel.Set("de"))
	require.Equal(t, "de", sel.Get())
}

func TestSelection_ConcurrentWriters(t *testing.T) {
	sel := session.NewSelection("en")
	langs := []string{"fr", "de", "es", "zh"}

	var wg sync.WaitGroup
	for _, lang := range langs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sel.Set(lang)
		}()
	}
	wg.Wait()

	require.Contains(t, langs, sel.Get())
}
