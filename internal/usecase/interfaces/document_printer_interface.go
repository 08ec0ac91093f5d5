package interfaces

import (
	"context"

	"imagine_hub/internal/domain/quote"
)

// IDocumentRenderer turns a snapshot into printable document bytes for
// screen preview. Layout and styling are entirely the renderer's
// concern; the core only hands over the view-model.
type IDocumentRenderer interface {
	Render(s quote.Snapshot) ([]byte, error)
}

// IDocumentPrinter abstracts the "emit current snapshot as a
// physical/PDF document" collaborator. Print is dispatched
// fire-and-forget: the core never waits for or observes completion.
type IDocumentPrinter interface {
	Print(ctx context.Context, s quote.Snapshot) error
}
