package testsupport

import (
	"archive/tar"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zip"
)

// Entry is one archive member. A Name ending in "/" is a directory.
type Entry struct {
	Name string
	Body string
}

// WriteZip builds a ZIP archive at path holding entries in order.
func WriteZip(t testing.TB, path string, entries ...Entry) {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.Name)
		if err != nil {
			t.Fatalf("zip create %s: %v", entry.Name, err)
		}
		if strings.HasSuffix(entry.Name, "/") {
			continue
		}
		if _, err := io.WriteString(w, entry.Body); err != nil {
			t.Fatalf("zip write %s: %v", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	writeBytes(t, path, buf.Bytes())
}

// WriteTar builds an uncompressed tar archive at path.
func WriteTar(t testing.TB, path string, entries ...Entry) {
	t.Helper()
	writeBytes(t, path, tarBytes(t, entries))
}

// WriteTarGz builds a gzip-compressed tar archive at path.
func WriteTarGz(t testing.TB, path string, entries ...Entry) {
	t.Helper()
	writeBytes(t, path, gzipBytes(t, "", tarBytes(t, entries)))
}

// WriteGzip compresses body into a single-member gzip file at path. name,
// when set, is stored in the gzip header.
func WriteGzip(t testing.TB, path, name, body string) {
	t.Helper()
	writeBytes(t, path, gzipBytes(t, name, []byte(body)))
}

func tarBytes(t testing.TB, entries []Entry) []byte {
	t.Helper()

	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	for _, entry := range entries {
		header := &tar.Header{Name: entry.Name, Mode: 0o644, Size: int64(len(entry.Body)), Typeflag: tar.TypeReg}
		if strings.HasSuffix(entry.Name, "/") {
			header.Typeflag = tar.TypeDir
			header.Mode = 0o755
			header.Size = 0
		}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("tar header %s: %v", entry.Name, err)
		}
		if header.Typeflag == tar.TypeReg {
			if _, err := io.WriteString(tw, entry.Body); err != nil {
				t.Fatalf("tar write %s: %v", entry.Name, err)
			}
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar close: %v", err)
	}
	return buf.Bytes()
}

func gzipBytes(t testing.TB, name string, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Name = name
	if _, err := gw.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func writeBytes(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
