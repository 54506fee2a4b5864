// Package compression opens optionally compressed snapshot and config documents.
package compression

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/a11ykit/internal/security"
)

// Format is a supported compression format.
type Format int

const (
	FormatNone Format = iota
	FormatGzip
	FormatBzip2
	FormatXz
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "gzip"
	case FormatBzip2:
		return "bzip2"
	case FormatXz:
		return "xz"
	default:
		return "none"
	}
}

// DetectFormat picks the format from the file name suffix.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return FormatGzip
	case ".bz2":
		return FormatBzip2
	case ".xz":
		return FormatXz
	default:
		return FormatNone
	}
}

// NewReader wraps r in a decompressor for format. The result is limited to
// security.MaxInputSize bytes. Closing it releases the decompressor but not r.
func NewReader(r io.Reader, format Format) (io.ReadCloser, error) {
	var (
		dr      io.Reader
		closeFn = func() error { return nil }
	)
	switch format {
	case FormatGzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		dr, closeFn = gzr, gzr.Close
	case FormatBzip2:
		dr = bzip2.NewReader(r)
	case FormatXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		dr = xzr
	default:
		dr = r
	}
	return &readCloser{Reader: security.NewLimitedReader(dr, security.MaxInputSize), close: closeFn}, nil
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error {
	return rc.close()
}

// ReadFile reads a file, decompressing it when its name carries a compression suffix.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(filepath.Clean(path)) // #nosec G304 - path validated by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	format := DetectFormat(path)
	r, err := NewReader(f, format)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if closeErr := r.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s (%s): %w", path, format, err)
	}
	return data, nil
}
