package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/CrestNiraj12/lemmyrant/domain"
)

type loginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
	TOTP            string `json:"totp_2fa_token,omitempty"`
}

type loginResponse struct {
	JWT string `json:"jwt"`
}

// Credentials are the account details used to obtain a token.
type Credentials struct {
	Username string
	Password string
	TOTP     string
}

func (c Credentials) empty() bool {
	return strings.TrimSpace(c.Username) == "" || c.Password == ""
}

// EnsureLogin keeps a valid token at tokenPath. An existing token is kept if
// the instance still accepts it; otherwise creds are exchanged for a new one.
// With no usable token and no credentials it returns nil and the client runs
// anonymously. hc is the client shared with the API client; nil uses
// http.DefaultClient.
func EnsureLogin(ctx context.Context, hc *http.Client, instanceURL, tokenPath string, creds Credentials) error {
	if hc == nil {
		hc = http.DefaultClient
	}
	token, err := readToken(tokenPath)
	if err == nil && token != "" {
		valid, err := validateToken(ctx, hc, instanceURL, token)
		if err != nil {
			return err
		}
		if valid {
			return nil
		}
	}

	if creds.empty() {
		return nil
	}

	token, err = login(ctx, hc, instanceURL, creds)
	if err != nil {
		return err
	}
	return writeToken(tokenPath, token)
}

func validateToken(ctx context.Context, hc *http.Client, instanceURL, token string) (bool, error) {
	err := doJSON(ctx, hc, http.MethodGet, instanceURL+"/api/v3/user/validate_auth", token, nil, nil)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("validating token: %w", err)
	}
	return true, nil
}

func login(ctx context.Context, hc *http.Client, instanceURL string, creds Credentials) (string, error) {
	req := loginRequest{
		UsernameOrEmail: strings.TrimSpace(creds.Username),
		Password:        creds.Password,
		TOTP:            strings.TrimSpace(creds.TOTP),
	}
	var out loginResponse
	if err := doJSON(ctx, hc, http.MethodPost, instanceURL+"/api/v3/user/login", "", req, &out); err != nil {
		return "", fmt.Errorf("logging in: %w", err)
	}
	if strings.TrimSpace(out.JWT) == "" {
		return "", fmt.Errorf("login response missing jwt: %w", domain.ErrUnauthorized)
	}
	return out.JWT, nil
}

// doJSON sends one request with an optional JSON body and bearer token.
// Lemmy answers rejected credentials with 400 or 401; both map to
// domain.ErrUnauthorized.
func doJSON(ctx context.Context, hc *http.Client, method, url, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("API %s %s: %w", method, req.URL.Path, domain.ErrUnauthorized)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("API %s %s returned %d: %s", method, req.URL.Path, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func readToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func writeToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	return os.WriteFile(path, []byte(strings.TrimSpace(token)), 0o600)
}
