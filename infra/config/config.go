package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds application-level configuration.
type Config struct {
	BaseURL         string // Site base URL, e.g. "https://lobste.rs"
	LogPath         string // Debug log file; the terminal itself belongs to the UI
	LogLevel        slog.Level
	PageCacheSize   int // Story pages kept in memory
	ThreadCacheSize int // Comment threads kept in memory
}

const (
	defaultBaseURL   = "https://lobste.rs"
	defaultPageCache = 10
	defaultThreads   = 5
	minCacheSize     = 2
)

// Load reads configuration from environment variables.
//
//	LOBSTERM_URL           — site base URL (default: https://lobste.rs)
//	LOBSTERM_LOG           — log file path (default: ~/.config/lobsterm/debug.log)
//	LOBSTERM_LOG_LEVEL     — debug|info|warn|error (default: warn)
//	LOBSTERM_PAGE_CACHE    — pages kept in memory (default: 10, min: 2)
//	LOBSTERM_THREAD_CACHE  — threads kept in memory (default: 5, min: 2)
func Load() (Config, error) {
	base := os.Getenv("LOBSTERM_URL")
	if base == "" {
		base = defaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid LOBSTERM_URL: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return Config{}, fmt.Errorf("invalid LOBSTERM_URL: scheme must be http or https")
	}
	base = strings.TrimRight(parsed.String(), "/")

	logPath := os.Getenv("LOBSTERM_LOG")
	if logPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			home, herr := os.UserHomeDir()
			if herr != nil {
				return Config{}, fmt.Errorf("cannot determine config directory: %w", err)
			}
			dir = filepath.Join(home, ".config")
		}
		logPath = filepath.Join(dir, "lobsterm", "debug.log")
	}

	level, err := parseLevel(os.Getenv("LOBSTERM_LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}

	pageCache, err := parseCacheSize("LOBSTERM_PAGE_CACHE", defaultPageCache)
	if err != nil {
		return Config{}, err
	}
	threadCache, err := parseCacheSize("LOBSTERM_THREAD_CACHE", defaultThreads)
	if err != nil {
		return Config{}, err
	}

	return Config{
		BaseURL:         base,
		LogPath:         logPath,
		LogLevel:        level,
		PageCacheSize:   pageCache,
		ThreadCacheSize: threadCache,
	}, nil
}

func parseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "warn":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOBSTERM_LOG_LEVEL %q: want debug, info, warn or error", v)
	}
}

func parseCacheSize(envVar string, def int) (int, error) {
	v := os.Getenv(envVar)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: not a number", envVar, v)
	}
	if n < minCacheSize {
		return 0, fmt.Errorf("invalid %s %d: minimum is %d", envVar, n, minCacheSize)
	}
	return n, nil
}
