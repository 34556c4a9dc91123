package draft

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/draft"
)

func init() {
	color.NoColor = true
}

func TestShowDraft(t *testing.T) {
	storage := draft.NewMemoryStorage()
	_ = storage.Set(draft.DraftKey, "three words here")

	var out bytes.Buffer
	d := Draft{Drafts: storage, Out: &out}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "3 words") || !strings.Contains(out.String(), "three words here") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestDiscardDraft(t *testing.T) {
	storage := draft.NewMemoryStorage()
	_ = storage.Set(draft.DraftKey, "never mind")

	var out bytes.Buffer
	d := Draft{Drafts: storage, Discard: true, Out: &out}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if storage.Has(draft.DraftKey) {
		t.Fatalf("draft should be removed")
	}
	if !strings.Contains(out.String(), "draft discarded") {
		t.Fatalf("unexpected output %q", out.String())
	}

	out.Reset()
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "no draft to discard") {
		t.Fatalf("unexpected output %q", out.String())
	}
}
