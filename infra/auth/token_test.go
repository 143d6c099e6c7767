package auth

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileTokenProvider_AccessToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("  abc123 \n"), 0o600); err != nil {
		t.Fatalf("write token failed: %v", err)
	}

	p := NewFileTokenProvider(path)
	got, err := p.AccessToken()
	if err != nil {
		t.Fatalf("access token failed: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("unexpected token: %q", got)
	}
}

func TestFileTokenProvider_MissingOrEmptyIsNoToken(t *testing.T) {
	p := NewFileTokenProvider(filepath.Join(t.TempDir(), "missing"))
	if _, err := p.AccessToken(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken for missing file, got: %v", err)
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte(" \n\t"), 0o600); err != nil {
		t.Fatalf("write empty token failed: %v", err)
	}
	p = NewFileTokenProvider(empty)
	if _, err := p.AccessToken(); !errors.Is(err, ErrNoToken) {
		t.Fatalf("expected ErrNoToken for empty file, got: %v", err)
	}
}

func TestFileTokenProvider_UnreadableIsError(t *testing.T) {
	dir := t.TempDir()
	p := NewFileTokenProvider(dir) // a directory cannot be read as a file
	_, err := p.AccessToken()
	if err == nil || errors.Is(err, ErrNoToken) {
		t.Fatalf("expected read error distinct from ErrNoToken, got: %v", err)
	}
}
