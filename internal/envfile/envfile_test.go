// Where: cli/internal/envfile/envfile_test.go
// What: Tests for the ordered env record and file persistence.
// Why: The written .env must keep keys in collection order across updates.
package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRecordPreservesInsertionOrder(t *testing.T) {
	r := NewRecord()
	r.Set("B", "2")
	r.Set("A", "1")
	r.Set("C", "3")

	keys := r.Keys()
	want := []string{"B", "A", "C"}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("key %d: expected %q, got %q", i, key, keys[i])
		}
	}
}

func TestRecordUpdateKeepsPosition(t *testing.T) {
	r := NewRecord()
	r.Set("A", "1")
	r.Set("B", "2")
	r.Set("A", "updated")

	if r.Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", r.Len())
	}
	if r.Keys()[0] != "A" {
		t.Fatalf("updated key must keep its position, got %v", r.Keys())
	}
	if r.Get("A") != "updated" {
		t.Fatalf("expected updated value, got %q", r.Get("A"))
	}
}

func TestWriteFormat(t *testing.T) {
	r := NewRecord()
	r.Set("POSTGRES_URL", "file:./dev.db")
	r.Set("BASE_URL", "http://localhost:3000")

	path := filepath.Join(t.TempDir(), ".env")
	if err := Write(path, r); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "POSTGRES_URL=file:./dev.db\nBASE_URL=http://localhost:3000\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, data)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OLD=1\nSTALE=2\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := NewRecord()
	r.Set("NEW", "3")
	if err := Write(path, r); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "NEW=3\n" {
		t.Fatalf("expected old content replaced, got %q", data)
	}
}

func TestLoadMissingFile(t *testing.T) {
	values, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if values != nil {
		t.Fatalf("expected nil map for missing file, got %v", values)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	r := NewRecord()
	r.Set("STRIPE_SECRET_KEY", "sk_test_abc")
	r.Set("AUTH_SECRET", "deadbeef")

	path := filepath.Join(t.TempDir(), ".env")
	if err := Write(path, r); err != nil {
		t.Fatalf("write: %v", err)
	}

	values, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if values["STRIPE_SECRET_KEY"] != "sk_test_abc" || values["AUTH_SECRET"] != "deadbeef" {
		t.Fatalf("unexpected values: %v", values)
	}
}
