package auth

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoToken reports that no token has been stored yet. Callers may continue
// anonymously; the instance allows reading without an account.
var ErrNoToken = errors.New("no access token")

// TokenProvider supplies a bearer token (a Lemmy JWT) for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace. A missing or
// empty file yields ErrNoToken.
func (f *FileTokenProvider) AccessToken() (string, error) {
	token, err := readToken(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("token file %s: %w", f.path, ErrNoToken)
	}
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}
	if token == "" {
		return "", fmt.Errorf("token file %s is empty: %w", f.path, ErrNoToken)
	}
	return token, nil
}
