package store

import (
	"context"
	"testing"
	"time"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string                { return t.path }
func (t testConfig) AutosaveInterval() time.Duration { return draft.DefaultAutosaveInterval }
func (t testConfig) LogLevel() string                { return "warn" }
func (t testConfig) LogFile() string                 { return "" }
func (t testConfig) ConfigFile() string              { return "" }

func TestPersistenceWatchEmitsEntryChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe to directories before storing.
	time.Sleep(50 * time.Millisecond)

	e := entry.New("hello world", time.Now())
	if err := p.Store(e); err != nil {
		t.Fatalf("store entry: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventEntriesChanged || evt.Type == EventInvalidated {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for entries change event")
		}
	}
}

func TestPersistenceWatchClosesOnCancel(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("watch channel not closed after cancel")
		}
	}
}
