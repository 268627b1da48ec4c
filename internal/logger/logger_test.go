package logger

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOutFallsBackToStderr(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("could not create pipe: %v", err)
	}
	orig := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	// dir does not exist, so opening the log file fails and stderr is not
	// requested; output must still go somewhere
	target := out(filepath.Join(t.TempDir(), "missing"), false)
	if _, err := target.Write([]byte("x")); err != nil {
		t.Fatalf("writing log output failed: %v", err)
	}
	w.Close()
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("could not read captured stderr: %v", err)
	}
	if string(got) != "x" {
		t.Errorf("expected output to fall back to stderr, captured %q", string(got))
	}
}

func TestOutWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	target := out(dir, false)
	if _, err := target.Write([]byte("entry\n")); err != nil {
		t.Fatalf("writing log output failed: %v", err)
	}
	content, err := os.ReadFile(filepath.Join(dir, "cachehub.log"))
	if err != nil {
		t.Fatalf("could not read log file: %v", err)
	}
	if string(content) != "entry\n" {
		t.Errorf("unexpected log file content %q", string(content))
	}
}
