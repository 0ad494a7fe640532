package resumelog

import (
	"os"
	"path/filepath"
	"testing"

	"primecount/wideint"
)

func TestStoreAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	l := Open(path)

	rec := Record{X: "100", Y: "10", Z: "10", Sum: "42", Percent: 100, Seconds: 1.5}
	if err := l.Store("S2_trivial", rec); err != nil {
		t.Fatalf("Store: %v", err)
	}

	reopened := Open(path)
	got, ok := reopened.Load("S2_trivial")
	if !ok {
		t.Fatalf("Load: record not found after reopen")
	}
	if got != rec {
		t.Fatalf("Load: got %+v, want %+v", got, rec)
	}
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	l := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if _, ok := l.Load("anything"); ok {
		t.Fatalf("Load on empty document returned a record")
	}
}

func TestOpenMalformedFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := Open(path)
	if _, ok := l.Load("anything"); ok {
		t.Fatalf("Load on malformed document returned a record")
	}
}

func TestIsResumeRequiresExactMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.json")
	l := Open(path)

	x, y, z := wideint.FromInt64(100), wideint.FromInt64(10), wideint.FromInt64(10)
	rec := Record{X: x.String(), Y: y.String(), Z: z.String(), Sum: "7", Percent: 50, Seconds: 0.2}
	if err := l.Store("P2", rec); err != nil {
		t.Fatal(err)
	}

	if _, ok := l.IsResume("P2", x, y, z); !ok {
		t.Fatalf("IsResume: expected match for identical key")
	}
	if _, ok := l.IsResume("P2", x, y, wideint.FromInt64(11)); ok {
		t.Fatalf("IsResume: expected no match for different z")
	}
	if _, ok := l.IsResume("P3", x, y, z); ok {
		t.Fatalf("IsResume: expected no match for different formula name")
	}
}
