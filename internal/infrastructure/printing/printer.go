package printing

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"imagine_hub/internal/domain/quote"
	"imagine_hub/internal/usecase/interfaces"
)

// SpoolPrinter emits the rendered document into a spool directory
// where the actual print/PDF pipeline picks it up. The caller treats
// Print as fire-and-forget; nothing here reports back to the core.

type SpoolPrinter struct {
	renderer interfaces.IDocumentRenderer
	dir      string
}

var _ interfaces.IDocumentPrinter = (*SpoolPrinter)(nil)

func NewSpoolPrinter(renderer interfaces.IDocumentRenderer, dir string) *SpoolPrinter {
	return &SpoolPrinter{renderer: renderer, dir: dir}
}

func (p *SpoolPrinter) Print(_ context.Context, s quote.Snapshot) error {
	doc, err := p.renderer.Render(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("quote-%s-%d.html", s.Order.ID, time.Now().UTC().UnixNano())
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return err
	}

	log.Printf("[printing][spool] document emitted order_id=%s path=%s", s.Order.ID, path)
	return nil
}
