package archive

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnreadable marks archives whose contents cannot be extracted.
var ErrUnreadable = errors.New("archive unreadable")

// Extractor unpacks src into dest. ext is the upper-case extension the
// classifier derived for src.
type Extractor interface {
	Extract(ctx context.Context, src, dest, ext string) error
}

// MultiFormat extracts ZIP, TAR, and GZ archives. MaxBytes caps the total
// number of decompressed bytes written per archive; zero or less disables the cap.
type MultiFormat struct {
	MaxBytes int64
}

// NewMultiFormat returns an extractor with the provided output cap.
func NewMultiFormat(maxBytes int64) *MultiFormat {
	return &MultiFormat{MaxBytes: maxBytes}
}

// Extract dispatches on ext.
func (m *MultiFormat) Extract(ctx context.Context, src, dest, ext string) error {
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("create extraction directory: %w", err)
	}
	quota := newBudget(m.MaxBytes)
	switch strings.ToUpper(strings.TrimSpace(ext)) {
	case "ZIP":
		return extractZip(ctx, src, dest, quota)
	case "TAR":
		file, err := os.Open(src)
		if err != nil {
			return fmt.Errorf("open archive: %w", err)
		}
		defer file.Close()
		return extractTar(ctx, src, file, dest, quota)
	case "GZ":
		if isTarGz(src) {
			return extractTarGz(ctx, src, dest, quota)
		}
		return gunzipFile(src, dest, quota)
	default:
		return unreadable(src, fmt.Errorf("unsupported extension %q", ext))
	}
}

func isTarGz(src string) bool {
	return strings.HasSuffix(strings.ToLower(filepath.Base(src)), ".tar.gz")
}

func unreadable(src string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnreadable, filepath.Base(src), err)
}

// entryPath resolves an archive member name beneath dest, rejecting absolute
// names and names that climb out of dest.
func entryPath(src, dest, name string) (string, error) {
	rel := filepath.FromSlash(strings.ReplaceAll(name, `\`, "/"))
	if rel == "" || !filepath.IsLocal(rel) {
		return "", unreadable(src, fmt.Errorf("entry %q escapes destination", name))
	}
	return filepath.Join(dest, rel), nil
}

// budget tracks decompressed output against the per-archive cap.
type budget struct {
	limited   bool
	remaining int64
}

func newBudget(max int64) *budget {
	if max <= 0 {
		return &budget{}
	}
	return &budget{limited: true, remaining: max}
}

func (b *budget) take(n int) bool {
	if !b.limited {
		return true
	}
	b.remaining -= int64(n)
	return b.remaining >= 0
}
