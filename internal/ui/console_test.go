// Where: cli/internal/ui/console_test.go
// What: Tests for console formatting helpers.
// Why: Keep the setup output layout stable.
package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleFormatting(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Header("🐘", "Database")
	c.Item("POSTGRES_URL", "file:./dev.db")
	c.ItemPlain("plain line")
	c.Success("done")
	c.Info("note")
	c.Warn("careful")

	out := buf.String()
	for _, want := range []string{
		"🐘 Database\n",
		"   POSTGRES_URL:",
		"file:./dev.db",
		"   plain line\n",
		"✅ done\n",
		"➜ note\n",
		"careful",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}
