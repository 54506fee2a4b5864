package compression

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/a11ykit/internal/security"
)

const payload = "elements:\n  - class: button\n"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"snapshot.yaml", FormatNone},
		{"snapshot.yaml.gz", FormatGzip},
		{"snapshot.json.BZ2", FormatBzip2},
		{"snapshot.yaml.xz", FormatXz},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.name); got != tt.want {
				t.Errorf("DetectFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	if _, err := io.WriteString(xw, payload); err != nil {
		t.Fatalf("xz write error = %v", err)
	}
	if err := xw.Close(); err != nil {
		t.Fatalf("xz close error = %v", err)
	}

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	if _, err := io.WriteString(gw, payload); err != nil {
		t.Fatalf("gzip write error = %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close error = %v", err)
	}

	files := map[string][]byte{
		"plain.yaml":   []byte(payload),
		"dump.yaml.xz": xzBuf.Bytes(),
		"dump.yaml.gz": gzBuf.Bytes(),
	}

	for name, data := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0o600); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			if string(got) != payload {
				t.Errorf("ReadFile() = %q, want %q", got, payload)
			}
		})
	}
}

func TestReadFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml.xz")
	if err := os.WriteFile(path, []byte("not xz"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := ReadFile(path); err == nil {
		t.Error("ReadFile() expected error for corrupt xz data")
	}
}

func TestReadFileGzipChecksum(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(gw, payload); err != nil {
		t.Fatalf("gzip write error = %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close error = %v", err)
	}

	// The trailer is CRC-32 then size; flipping a CRC byte must fail the read.
	data := buf.Bytes()
	data[len(data)-8] ^= 0xff

	path := filepath.Join(t.TempDir(), "dump.yaml.gz")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := ReadFile(path); !errors.Is(err, gzip.ErrChecksum) {
		t.Errorf("ReadFile() error = %v, want gzip.ErrChecksum", err)
	}
}

func TestNewReaderClose(t *testing.T) {
	for _, format := range []Format{FormatNone, FormatBzip2} {
		r, err := NewReader(strings.NewReader(payload), format)
		if err != nil {
			t.Fatalf("NewReader(%s) error = %v", format, err)
		}
		if format == FormatNone {
			if got, err := io.ReadAll(r); err != nil || string(got) != payload {
				t.Errorf("ReadAll() = %q, %v", got, err)
			}
		}
		if err := r.Close(); err != nil {
			t.Errorf("Close(%s) error = %v", format, err)
		}
	}
}

func TestLimitedReader(t *testing.T) {
	r := security.NewLimitedReader(strings.NewReader("0123456789"), 4)

	_, err := io.ReadAll(r)
	if !errors.Is(err, security.ErrSizeLimit) {
		t.Errorf("ReadAll() error = %v, want ErrSizeLimit", err)
	}
}
