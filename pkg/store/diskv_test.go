package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
)

func TestStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	base := time.Date(2025, time.September, 11, 9, 0, 0, 0, time.UTC)
	older := entry.New("first day", base)
	newer := entry.New("second day", base.Add(26*time.Hour))
	same := entry.New("second day again", base.Add(26*time.Hour))
	for _, e := range []*entry.Entry{older, newer, same} {
		require.NoError(t, p.Store(e))
	}

	all := p.ListAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, same.ID, all[0].ID)
	assert.Equal(t, newer.ID, all[1].ID)
	assert.Equal(t, older.ID, all[2].ID)
	assert.Equal(t, "first day", all[2].Text)
	assert.Equal(t, 2, all[2].WordCount)
}

func TestStoreGetAndDelete(t *testing.T) {
	ctx := context.Background()
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	e := entry.New("keep this", time.Now())
	require.NoError(t, p.Store(e))

	got, err := p.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.Text, got.Text)
	assert.True(t, e.Date.Equal(got.Date.Time))

	require.NoError(t, p.Delete(got))
	_, err = p.Get(ctx, e.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(p.Delete(got), ErrNotFound))
	assert.Empty(t, p.ListAll(ctx))
}

func TestDraftStorage(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)
	drafts := p.Drafts()

	_, err = drafts.Get(draft.DraftKey)
	assert.True(t, errors.Is(err, draft.ErrNotFound))

	require.NoError(t, drafts.Set(draft.DraftKey, "half a thought"))
	got, err := drafts.Get(draft.DraftKey)
	require.NoError(t, err)
	assert.Equal(t, "half a thought", got)

	require.NoError(t, drafts.Remove(draft.DraftKey))
	require.NoError(t, drafts.Remove(draft.DraftKey), "removing twice is fine")
	_, err = drafts.Get(draft.DraftKey)
	assert.True(t, errors.Is(err, draft.ErrNotFound))

	// Drafts never show up as entries.
	require.NoError(t, drafts.Set(draft.DraftKey, "pending"))
	assert.Empty(t, p.ListAll(context.Background()))
}

func TestDraftStorageSurvivesReload(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, NewDraftStorage(base).Set(draft.DraftKey, "after restart"))

	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	got, err := p.Drafts().Get(draft.DraftKey)
	require.NoError(t, err)
	assert.Equal(t, "after restart", got)
}

func TestSessionWithDiskDrafts(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	require.NoError(t, err)

	s := draft.NewSession(draft.Options{Storage: p.Drafts()})
	s.Initialize("")
	s.ProposeEdit("typed before the crash")
	sched := draft.NewScheduler(s, p.Drafts(), draft.SchedulerOptions{})
	sched.Persist()
	require.NoError(t, sched.PersistErr())

	restored := draft.NewSession(draft.Options{Storage: p.Drafts()})
	text, err := restored.Restore()
	require.NoError(t, err)
	assert.Equal(t, "typed before the crash", text)
}

func TestKeyTransformRoundTrip(t *testing.T) {
	e := &entry.Entry{ID: "01J7ZK5W3V", Date: entry.Timestamp{Time: time.Date(2025, 9, 11, 0, 0, 0, 0, time.UTC)}}
	key := toKey(e)
	assert.Equal(t, "entries-2025-09-11-01J7ZK5W3V", key)

	pk := keyToPathTransform(key)
	assert.Equal(t, []string{"entries", "2025", "09", "11"}, pk.Path)
	assert.Equal(t, "01J7ZK5W3V", pk.FileName)
	assert.Equal(t, key, pathToKeyTransform(pk))
}
