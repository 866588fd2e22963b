package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/phrasey/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "phrasey.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestImportSkipsDuplicates(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	batch := []model.Phrase{
		{Original: "cat", Translation: "chat"},
		{Original: "dog", Translation: "chien"},
		{Original: "cat", Translation: "chat"},
	}
	n, err := st.ImportPhrases(ctx, batch)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 inserted rows, got %d", n)
	}

	n, err = st.ImportPhrases(ctx, batch[:1])
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected no new rows, got %d", n)
	}

	count, err := st.CountPhrases(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 phrases, got %d", count)
	}
}

func TestSampleLimits(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.ImportPhrases(ctx, []model.Phrase{
		{Original: "cat", Translation: "chat"},
		{Original: "dog", Translation: "chien"},
		{Original: "sun", Translation: "soleil"},
	}); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, err := st.Sample(ctx, 2)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 phrases, got %d", len(got))
	}
	if got[0] == got[1] {
		t.Fatalf("expected distinct phrases, got %+v", got)
	}

	got, err = st.Sample(ctx, 10)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected whole collection, got %d", len(got))
	}

	got, err = st.Sample(ctx, 0)
	if err != nil {
		t.Fatalf("sample zero: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sample, got %d", len(got))
	}
}
