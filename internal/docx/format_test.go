package docx

import (
	"bytes"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"계약서.docx", FormatDocx},
		{"macro.docm", FormatDocx},
		{"REPORT.DOCX", FormatDocx},
		{"legacy.doc", FormatDoc},
		{"template.dot", FormatDoc},
		{"readme.txt", FormatUnknown},
		{"noext", FormatUnknown},
	}

	for _, tc := range tests {
		if got := DetectFormat(tc.path); got != tc.want {
			t.Errorf("DetectFormat(%q): expected %s, got %s", tc.path, tc.want, got)
		}
	}
}

func TestDetectFormatFromReader(t *testing.T) {
	docx := samplePackage(t)
	format, err := DetectFormatFromReader(bytes.NewReader(docx))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatDocx {
		t.Errorf("expected docx for ZIP magic, got %s", format)
	}
}

func TestDetectFormatFromReader_Unknown(t *testing.T) {
	format, err := DetectFormatFromReader(bytes.NewReader([]byte("plain text content here")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatUnknown {
		t.Errorf("expected unknown, got %s", format)
	}
}

func TestDetectFormatFromReader_TruncatedOLE(t *testing.T) {
	// A bare OLE magic number without a valid compound file behind it
	// must not be mistaken for a Word document.
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...)
	format, err := DetectFormatFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if format != FormatUnknown {
		t.Errorf("expected unknown for truncated OLE, got %s", format)
	}
}

func TestDetectFormatFromReader_TooSmall(t *testing.T) {
	if _, err := DetectFormatFromReader(bytes.NewReader([]byte("PK"))); err == nil {
		t.Error("expected an error for an undersized file")
	}
}

func TestFormatString(t *testing.T) {
	if FormatDocx.String() != "docx" || FormatDoc.String() != "doc" || FormatUnknown.String() != "unknown" {
		t.Error("unexpected format names")
	}
}
