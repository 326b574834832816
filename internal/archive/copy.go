package archive

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const copyBufferSize = 32 * 1024

// writeEntry streams r into a new file at target. Read failures and cap
// overruns are reported as ErrUnreadable; write failures are returned as-is.
func writeEntry(src, target string, r io.Reader, quota *budget) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create entry directory: %w", err)
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create entry %s: %w", filepath.Base(target), err)
	}

	buf := make([]byte, copyBufferSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			if !quota.take(n) {
				_ = out.Close()
				return unreadable(src, errors.New("extracted size exceeds limit"))
			}
			if _, err := out.Write(buf[:n]); err != nil {
				_ = out.Close()
				return fmt.Errorf("write entry %s: %w", filepath.Base(target), err)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = out.Close()
			return unreadable(src, readErr)
		}
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close entry %s: %w", filepath.Base(target), err)
	}
	return nil
}
