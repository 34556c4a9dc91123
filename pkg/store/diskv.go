package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("store: entry not found")

// Persistence defines the persistence contract for journal entries.
type Persistence interface {
	// ListAll returns every stored entry, newest first.
	ListAll(ctx context.Context) []*entry.Entry
	Get(ctx context.Context, id string) (*entry.Entry, error)
	Store(e *entry.Entry) error
	Delete(e *entry.Entry) error
	// Drafts exposes the draft slot kept next to the entries.
	Drafts() draft.Storage
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	layoutISO = "2006-01-02"

	entriesBucket = "entries"
	draftsBucket  = "drafts"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	return LoadWithLogger(cfg, nil)
}

// LoadWithLogger is Load with a logger for unreadable records.
func LoadWithLogger(cfg Config, log *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath, log: log}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := entry.Entry{}
	if err := json.Unmarshal(val, &e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = keyToPathTransform(key).FileName
	}
	if e.WordCount == 0 && e.Text != "" {
		e.WordCount = entry.CountWords(e.Text)
	}
	return &e, nil
}

func (p *persistence) ListAll(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for key := range p.d.KeysPrefix(entriesBucket+"-", ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			p.log.Warn("skipping unreadable entry", zap.String("key", key), zap.Error(err))
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*entry.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	suffix := "-" + id
	for key := range p.d.KeysPrefix(entriesBucket+"-", ctx.Done()) {
		if strings.HasSuffix(key, suffix) {
			return p.read(key)
		}
	}
	return nil, ErrNotFound
}

func (p *persistence) Store(e *entry.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	key := toKey(e)
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", e.ID, err)
	}
	return nil
}

func (p *persistence) Delete(e *entry.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	key := toKey(e)
	if !p.d.Has(key) {
		return ErrNotFound
	}
	return p.d.Erase(key)
}

func (p *persistence) Drafts() draft.Storage {
	return &DraftStorage{d: p.d}
}

// DraftStorage keeps draft text in the drafts bucket of a diskv store.
type DraftStorage struct {
	d *diskv.Diskv
}

// NewDraftStorage opens draft storage rooted at basePath.
func NewDraftStorage(basePath string) *DraftStorage {
	return &DraftStorage{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
	})}
}

func (s *DraftStorage) Get(key string) (string, error) {
	val, err := s.d.Read(draftKey(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", draft.ErrNotFound
		}
		return "", fmt.Errorf("store: read draft: %w", err)
	}
	return string(val), nil
}

func (s *DraftStorage) Set(key, value string) error {
	if err := s.d.WriteString(draftKey(key), value); err != nil {
		return fmt.Errorf("store: write draft: %w", err)
	}
	return nil
}

func (s *DraftStorage) Remove(key string) error {
	k := draftKey(key)
	if !s.d.Has(k) {
		return nil
	}
	if err := s.d.Erase(k); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: remove draft: %w", err)
	}
	return nil
}

// draftKey hex encodes the key so it never contains the path separator "-".
func draftKey(key string) string {
	return fmt.Sprintf("%s-%s", draftsBucket, hex.EncodeToString([]byte(key)))
}

// sortEntries orders newest first; ties fall back to id, which sorts by
// creation time as well.
func sortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Date.Time
		rt := right.Date.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID > right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID > right.ID
			}
			return lt.After(rt)
		}
	})
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `entries-yyyy-mm-dd-id`, bucketing entries by day on disk.
func toKey(e *entry.Entry) string {
	if e.ID == "" {
		e.ID = entry.NewID(e.Date.Time)
	}
	then := e.Date.UTC().Format(layoutISO)
	return fmt.Sprintf("%s-%s-%s", entriesBucket, then, e.ID)
}
