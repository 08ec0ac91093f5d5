// Package imaging is the image ingestion collaborator: raw uploaded
// bytes in, displayable handle out. The core stores the handle without
// ever looking inside it.
package imaging

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"log"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"imagine_hub/internal/domain/entities"
	"imagine_hub/internal/usecase/interfaces"
)

// Ingestor validates uploaded bytes against the registered decoders
// (png, jpeg, gif, bmp, webp) and produces a data-URI handle the
// document can embed directly. Any undecodable or oversized upload
// fails with the single unsupported-file signal the contract allows.

type Ingestor struct {
	maxBytes int64
}

var _ interfaces.IImageIngestor = (*Ingestor)(nil)

func NewIngestor(maxBytes int64) *Ingestor {
	return &Ingestor{maxBytes: maxBytes}
}

func (i *Ingestor) Ingest(_ context.Context, data []byte, filename string) (entities.ImageHandle, error) {
	if len(data) == 0 {
		return entities.ImageHandle{}, interfaces.ErrUnsupportedFile
	}
	if i.maxBytes > 0 && int64(len(data)) > i.maxBytes {
		log.Printf("[imaging][ingestor] upload too large file=%q size=%d max=%d", filename, len(data), i.maxBytes)
		return entities.ImageHandle{}, interfaces.ErrUnsupportedFile
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Printf("[imaging][ingestor] decode failed file=%q err=%v", filename, err)
		return entities.ImageHandle{}, interfaces.ErrUnsupportedFile
	}

	contentType := "image/" + format
	return entities.ImageHandle{
		DataURI:     "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
