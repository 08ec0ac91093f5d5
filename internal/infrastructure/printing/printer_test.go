package printing

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSpoolPrinter_Print(t *testing.T) {
	t.Run("emits the rendered document into the spool", func(t *testing.T) {
		dir := t.TempDir()
		p := NewSpoolPrinter(NewHTMLRenderer(), dir)

		if err := p.Print(context.Background(), snapshotFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read spool dir: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("expected 1 spooled file, got %d", len(entries))
		}

		name := entries[0].Name()
		if !strings.HasPrefix(name, "quote-o-1-") || !strings.HasSuffix(name, ".html") {
			t.Fatalf("unexpected spool file name: %s", name)
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("failed to read spooled file: %v", err)
		}
		if !strings.Contains(string(data), "ORÇAMENTO DE PEDIDO") {
			t.Fatalf("spooled document missing header")
		}
	})

	t.Run("creates the spool directory on demand", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "spool")
		p := NewSpoolPrinter(NewHTMLRenderer(), dir)

		if err := p.Print(context.Background(), snapshotFixture()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(dir); err != nil {
			t.Fatalf("spool dir not created: %v", err)
		}
	})

	t.Run("consecutive prints do not collide", func(t *testing.T) {
		dir := t.TempDir()
		p := NewSpoolPrinter(NewHTMLRenderer(), dir)

		for range 3 {
			if err := p.Print(context.Background(), snapshotFixture()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		entries, _ := os.ReadDir(dir)
		if len(entries) != 3 {
			t.Fatalf("expected 3 spooled files, got %d", len(entries))
		}
	})
}
