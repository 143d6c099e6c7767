package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const defaultPollInterval = 30 * time.Second

// Config holds application-level configuration.
type Config struct {
	InstanceURL  string        // e.g. "https://lemmy.ml"
	TokenPath    string        // Path to file containing the JWT
	UIStatePath  string        // Path to persisted UI state
	Community    string        // Community to list, empty for all
	Username     string        // Used only when no valid token is stored
	Password     string
	PollInterval time.Duration // 0 disables live polling
	LogPath      string        // Debug log file, empty disables logging
}

// Load reads configuration from environment variables.
//
//	LEMMYRANT_INSTANCE  — instance URL (default: https://lemmy.ml)
//	LEMMYRANT_DIR       — config directory (default: ~/.config/lemmyrant)
//	LEMMYRANT_TOKEN     — path to token file (default: <dir>/token)
//	LEMMYRANT_COMMUNITY — community to list (default: all)
//	LEMMYRANT_USER      — username for login
//	LEMMYRANT_PASSWORD  — password for login
//	LEMMYRANT_POLL      — live refresh interval, e.g. "15s" (default: 30s, "0" disables)
//	LEMMYRANT_LOG       — debug log file
func Load() (Config, error) {
	instance := os.Getenv("LEMMYRANT_INSTANCE")
	if instance == "" {
		instance = "https://lemmy.ml"
	}
	parsed, err := url.Parse(instance)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid LEMMYRANT_INSTANCE: must be an absolute URL")
	}
	if parsed.Scheme != "https" {
		return Config{}, fmt.Errorf("invalid LEMMYRANT_INSTANCE: only https is allowed")
	}
	instance = strings.TrimRight(parsed.String(), "/")

	dir := os.Getenv("LEMMYRANT_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".config", "lemmyrant")
	}

	tokenPath := os.Getenv("LEMMYRANT_TOKEN")
	if tokenPath == "" {
		tokenPath = filepath.Join(dir, "token")
	}

	poll := defaultPollInterval
	if raw := strings.TrimSpace(os.Getenv("LEMMYRANT_POLL")); raw != "" {
		if raw == "0" {
			poll = 0
		} else {
			poll, err = time.ParseDuration(raw)
			if err != nil || poll < 0 {
				return Config{}, fmt.Errorf("invalid LEMMYRANT_POLL %q: must be a non-negative duration", raw)
			}
		}
	}

	return Config{
		InstanceURL:  instance,
		TokenPath:    tokenPath,
		UIStatePath:  filepath.Join(dir, "ui_state.json"),
		Community:    strings.TrimPrefix(strings.TrimSpace(os.Getenv("LEMMYRANT_COMMUNITY")), "!"),
		Username:     os.Getenv("LEMMYRANT_USER"),
		Password:     os.Getenv("LEMMYRANT_PASSWORD"),
		PollInterval: poll,
		LogPath:      os.Getenv("LEMMYRANT_LOG"),
	}, nil
}
