package phrases

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/phrasey/internal/model"
)

func TestReadCSVSkipsMalformedRows(t *testing.T) {
	input := strings.Join([]string{
		"cat,chat",
		"dog, chien",
		"only-one-column",
		"a,b,c",
		",empty",
		`"hello, friend","salut, l'ami"`,
	}, "\n")
	records, err := ReadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	expected := []model.Phrase{
		{Original: "cat", Translation: "chat"},
		{Original: "dog", Translation: "chien"},
		{Original: "hello, friend", Translation: "salut, l'ami"},
	}
	if len(records) != len(expected) {
		t.Fatalf("expected %d records, got %d: %+v", len(expected), len(records), records)
	}
	for i, want := range expected {
		if records[i] != want {
			t.Fatalf("record %d: expected %+v, got %+v", i, want, records[i])
		}
	}
}

func TestCSVSample(t *testing.T) {
	st := NewCSVStore([]model.Phrase{
		{Original: "cat", Translation: "chat"},
		{Original: "dog", Translation: "chien"},
		{Original: "sun", Translation: "soleil"},
	})
	ctx := context.Background()

	got, err := st.Sample(ctx, 2)
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 2 || got[0] == got[1] {
		t.Fatalf("expected 2 distinct phrases, got %+v", got)
	}

	got, _ = st.Sample(ctx, 5)
	if len(got) != 3 {
		t.Fatalf("expected sample capped at 3, got %d", len(got))
	}

	got, err = st.Sample(ctx, 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty sample without error, got %v %v", got, err)
	}

	empty := NewCSVStore(nil)
	got, err = empty.Sample(ctx, 3)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty sample from empty store, got %v %v", got, err)
	}
}

func TestOpenResolvesScheme(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "phrases.csv")
	if err := os.WriteFile(csvPath, []byte("cat,chat\ndog,chien\n"), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	ctx := context.Background()

	for _, uri := range []string{"file://" + csvPath, csvPath} {
		src, err := Open(uri)
		if err != nil {
			t.Fatalf("open %s: %v", uri, err)
		}
		n, err := src.Count(ctx)
		if err != nil || n != 2 {
			t.Fatalf("expected 2 phrases from %s, got %d %v", uri, n, err)
		}
		_ = src.Close()
	}

	dbPath := filepath.Join(dir, "phrasey.db")
	src, err := Open("sqlite://" + dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = src.Close()
	})
	n, err := src.Count(ctx)
	if err != nil || n != 0 {
		t.Fatalf("expected empty db, got %d %v", n, err)
	}

	if _, err := Open("http://example.com/p.csv"); err == nil {
		t.Fatalf("expected error for unsupported scheme")
	}
	if _, err := Open("file://" + filepath.Join(dir, "missing.csv")); err == nil {
		t.Fatalf("expected error for missing csv")
	}
}

func TestSQLitePath(t *testing.T) {
	cases := map[string]string{
		"sqlite:///tmp/p.db": "/tmp/p.db",
		"/tmp/p.db":          "/tmp/p.db",
	}
	for uri, want := range cases {
		got, err := SQLitePath(uri)
		if err != nil || got != want {
			t.Fatalf("SQLitePath(%q) = %q, %v; want %q", uri, got, err, want)
		}
	}
	for _, uri := range []string{"file:///tmp/p.csv", "/tmp/p.CSV", "", "s3://bucket/p"} {
		if _, err := SQLitePath(uri); err == nil {
			t.Fatalf("expected error for %q", uri)
		}
	}
}
