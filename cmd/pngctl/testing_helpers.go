package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/pngkit/pkg/png"
)

// resetFlags restores global flag state between test cases and reinitializes
// the logger, since tests bypass cobra's PersistentPreRun.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	encodeOutput = ""
	removeOutput = ""
	decodeLatin1 = false
	initLogger()
}

// writeTestPNG creates a minimal container file with a few standard-looking
// chunks and returns its path.
func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()

	f := png.NewFile()
	hdr, err := png.ParseTypeCode("IHDR")
	if err != nil {
		t.Fatal(err)
	}
	end, err := png.ParseTypeCode("IEND")
	if err != nil {
		t.Fatal(err)
	}
	f.AppendChunk(png.NewChunk(hdr, bytes.Repeat([]byte{0}, 13)))
	f.AppendChunk(png.NewChunk(end, nil))

	path := filepath.Join(dir, "test.png")
	if err := f.WriteFile(path); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// writeRaw overwrites path with exact bytes, bypassing the library.
func writeRaw(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String(), fnErr
}
