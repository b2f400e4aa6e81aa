package docx

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/richardlehane/mscfb"
)

// Format represents a detected input format.
type Format int

const (
	FormatUnknown Format = iota
	FormatDocx
	FormatDoc // legacy binary Word format (OLE compound file)
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatDocx:
		return "docx"
	case FormatDoc:
		return "doc"
	default:
		return "unknown"
	}
}

// DetectFormat detects the document format from the file path.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx", ".docm":
		return FormatDocx
	case ".doc", ".dot":
		return FormatDoc
	default:
		return FormatUnknown
	}
}

// DetectFormatFromReader detects the format by reading magic bytes. OLE
// compound files are only reported as FormatDoc when they actually carry a
// WordDocument stream; other OLE containers (HWP, XLS) stay unknown.
func DetectFormatFromReader(r io.ReaderAt) (Format, error) {
	buf := make([]byte, 8)
	n, err := r.ReadAt(buf, 0)
	if err != nil && err != io.EOF {
		return FormatUnknown, fmt.Errorf("failed to read magic bytes: %w", err)
	}
	if n < 4 {
		return FormatUnknown, fmt.Errorf("file too small to detect format")
	}

	// ZIP magic number (OOXML)
	if buf[0] == 'P' && buf[1] == 'K' {
		return FormatDocx, nil
	}

	// OLE/CFBF magic number
	if buf[0] == 0xD0 && buf[1] == 0xCF && buf[2] == 0x11 && buf[3] == 0xE0 {
		doc, err := mscfb.New(r)
		if err != nil {
			return FormatUnknown, nil
		}
		for _, entry := range doc.File {
			if entry.Name == "WordDocument" {
				return FormatDoc, nil
			}
		}
		return FormatUnknown, nil
	}

	return FormatUnknown, nil
}
