// Where: cli/internal/envfile/envfile.go
// What: Ordered environment record and .env file persistence.
// Why: Keep the generated .env deterministic, with keys in the order they were collected.
package envfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Record is an insertion-ordered mapping from variable name to value.
// Values are opaque strings; they must not contain line breaks because
// serialization does no escaping.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{values: map[string]string{}}
}

// Set stores a value. A new key is appended; an existing key keeps its
// original position.
func (r *Record) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value for key, or "" if unset.
func (r *Record) Get(key string) string {
	return r.values[key]
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len returns the number of keys in the record.
func (r *Record) Len() int {
	return len(r.keys)
}

// Write serializes the record as KEY=VALUE lines and overwrites path.
// The write is not atomic; a crash mid-write can leave a truncated
// file. Acceptable for a one-shot setup tool that can simply be re-run.
func Write(path string, r *Record) error {
	var b strings.Builder
	for _, key := range r.keys {
		fmt.Fprintf(&b, "%s=%s\n", key, r.values[key])
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write env file: %w", err)
	}
	return nil
}

// Load reads an existing env file. It returns nil with no error when
// the file does not exist, so callers can treat absence as a fresh
// setup.
func Load(path string) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}
	return values, nil
}
