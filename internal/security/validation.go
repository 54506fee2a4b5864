// Package security provides input validation utilities for a11ykit.
package security

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxInputSize is the largest snapshot or config document read, after decompression.
const MaxInputSize = 64 * 1024 * 1024

// ErrSizeLimit is returned by LimitedReader once the limit is exhausted.
var ErrSizeLimit = errors.New("input size limit exceeded")

// ValidateInputPath checks that path names a regular file with one of the allowed
// extensions. Compression suffixes (.gz, .bz2, .xz) are stripped before the extension is
// checked. An empty allowed list accepts any extension.
func ValidateInputPath(path string, allowed []string) error {
	if path == "" {
		return fmt.Errorf("empty file path")
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", clean, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", clean)
	}
	if info.Size() > MaxInputSize {
		return fmt.Errorf("%s is larger than %d bytes: %w", clean, MaxInputSize, ErrSizeLimit)
	}

	if len(allowed) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(StripCompressionExt(clean)))
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return nil
		}
	}
	return fmt.Errorf("unsupported file type %q (expected one of %s)", ext, strings.Join(allowed, ", "))
}

// StripCompressionExt removes a trailing compression suffix from a file name.
func StripCompressionExt(name string) string {
	for _, ext := range []string{".gz", ".bz2", ".xz"} {
		if strings.HasSuffix(strings.ToLower(name), ext) {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// Unlike io.LimitReader it fails instead of truncating, so oversized decompressed
// input is reported rather than silently cut.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// Input of exactly the limit is fine; only report the limit when more data follows.
		var next [1]byte
		n, err := l.R.Read(next[:])
		switch {
		case n > 0:
			return 0, ErrSizeLimit
		case err != nil:
			return 0, err
		default:
			return 0, nil
		}
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
