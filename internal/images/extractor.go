// Package images extracts embedded media from a DOCX package and renders
// image references for the markdown output.
package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// MediaReader reads media entries from the document container.
type MediaReader interface {
	ReadMedia(target string) ([]byte, error)
}

// Mode selects how extracted images are emitted.
type Mode int

const (
	// ModeInline embeds images as base64 data URIs.
	ModeInline Mode = iota
	// ModeSaveToDir writes images to a directory and links them by path.
	ModeSaveToDir
	// ModeSkip drops images entirely.
	ModeSkip
)

// Extractor pulls media out of a document and renders inline
// markdown/HTML image references.
type Extractor struct {
	mode    Mode
	dir     string
	media   MediaReader
	counter int
}

// NewInline creates an extractor that embeds images as base64 data URIs.
func NewInline(media MediaReader) *Extractor {
	return &Extractor{mode: ModeInline, media: media}
}

// NewSaveToDir creates an extractor that writes images into dir.
func NewSaveToDir(media MediaReader, dir string) (*Extractor, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &Extractor{mode: ModeSaveToDir, media: media, dir: dir}, nil
}

// NewSkip creates an extractor that drops all images.
func NewSkip() *Extractor {
	return &Extractor{mode: ModeSkip}
}

// Extract reads the media entry behind a relationship target and returns
// the markdown or HTML to embed, or "" when images are skipped.
func (e *Extractor) Extract(target string) (string, error) {
	if e.mode == ModeSkip || e.media == nil {
		return "", nil
	}

	data, err := e.media.ReadMedia(target)
	if err != nil {
		return "", err
	}

	e.counter++
	ext := extension(target, data)

	switch e.mode {
	case ModeSaveToDir:
		filename := fmt.Sprintf("image_%d.%s", e.counter, ext)
		outPath := filepath.Join(e.dir, filename)
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return "", fmt.Errorf("failed to write image: %w", err)
		}
		return fmt.Sprintf("![image](%s)", outPath), nil
	default:
		encoded := base64.StdEncoding.EncodeToString(data)
		return fmt.Sprintf("<img src=\"data:%s;base64,%s\" alt=\"image\" />", mimeType(ext), encoded), nil
	}
}

// extension resolves the file extension from the target path, sniffing
// the content when the path has none.
func extension(target string, data []byte) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(target)), ".")
	if ext != "" {
		return ext
	}
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.Extension
	}
	return "png"
}

func mimeType(ext string) string {
	switch ext {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "bmp":
		return "image/bmp"
	case "svg":
		return "image/svg+xml"
	case "emf":
		return "image/emf"
	case "wmf":
		return "image/wmf"
	default:
		return "application/octet-stream"
	}
}
