package imaging

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"imagine_hub/internal/usecase/interfaces"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture png: %v", err)
	}
	return buf.Bytes()
}

func TestIngestor_Ingest(t *testing.T) {
	t.Run("png upload produces a data uri handle", func(t *testing.T) {
		ing := NewIngestor(8 << 20)
		data := pngBytes(t, 3, 2)

		handle, err := ing.Ingest(context.Background(), data, "art.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if handle.ContentType != "image/png" {
			t.Fatalf("unexpected content type: %s", handle.ContentType)
		}
		if handle.Width != 3 || handle.Height != 2 {
			t.Fatalf("unexpected dimensions: %dx%d", handle.Width, handle.Height)
		}
		if !strings.HasPrefix(handle.DataURI, "data:image/png;base64,") {
			t.Fatalf("unexpected data uri prefix: %.40s", handle.DataURI)
		}
	})

	t.Run("empty upload", func(t *testing.T) {
		ing := NewIngestor(8 << 20)
		if _, err := ing.Ingest(context.Background(), nil, "x.png"); !errors.Is(err, interfaces.ErrUnsupportedFile) {
			t.Fatalf("expected ErrUnsupportedFile, got %v", err)
		}
	})

	t.Run("undecodable upload", func(t *testing.T) {
		ing := NewIngestor(8 << 20)
		if _, err := ing.Ingest(context.Background(), []byte("definitely not an image"), "x.txt"); !errors.Is(err, interfaces.ErrUnsupportedFile) {
			t.Fatalf("expected ErrUnsupportedFile, got %v", err)
		}
	})

	t.Run("oversized upload", func(t *testing.T) {
		data := pngBytes(t, 3, 2)
		ing := NewIngestor(int64(len(data)) - 1)
		if _, err := ing.Ingest(context.Background(), data, "big.png"); !errors.Is(err, interfaces.ErrUnsupportedFile) {
			t.Fatalf("expected ErrUnsupportedFile, got %v", err)
		}
	})

	t.Run("no limit when maxBytes is zero", func(t *testing.T) {
		ing := NewIngestor(0)
		if _, err := ing.Ingest(context.Background(), pngBytes(t, 1, 1), "x.png"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
