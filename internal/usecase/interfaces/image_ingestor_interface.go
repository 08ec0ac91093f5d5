package interfaces

import (
	"context"
	"errors"

	"imagine_hub/internal/domain/entities"
)

// ErrUnsupportedFile is the only failure ingestion may signal. The
// order's image slot is left untouched when it surfaces.
var ErrUnsupportedFile = errors.New("unsupported image file")

// IImageIngestor abstracts the external image ingestion collaborator:
// given raw uploaded bytes it produces a displayable handle or fails
// with ErrUnsupportedFile. The core never inspects the handle content.
type IImageIngestor interface {
	Ingest(ctx context.Context, data []byte, filename string) (entities.ImageHandle, error)
}
