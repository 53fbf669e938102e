package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
)

// Sentinel errors for configuration loading.
var (
	// ErrRead indicates the config file could not be read.
	ErrRead = errors.New("config: cannot read config file")
	// ErrParse indicates the config file is not valid JSONC.
	ErrParse = errors.New("config: cannot parse config file")
	// ErrInvalid indicates a decoded but unusable configuration.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config mirrors the JSONC configuration file. Positions are algebraic
// strings; package notation turns them into squares.
type Config struct {
	BoardSize     int    `json:"board_size"`
	StartPosition string `json:"start_position"`
	EndPosition   string `json:"end_position"`
}

// Default returns the configuration used when fields are absent:
// a standard 8×8 board with no default positions.
func Default() Config {
	return Config{BoardSize: 8}
}

// Load reads and decodes the JSONC file at path. Fields absent from the
// file keep their Default() values.
// Returns ErrRead, ErrParse, or ErrInvalid as appropriate.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	cfg := Default()
	if err = sonic.Unmarshal(stripComments(raw), &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if cfg.BoardSize < 1 {
		return Config{}, fmt.Errorf("%w: board_size must be positive, got %d", ErrInvalid, cfg.BoardSize)
	}

	return cfg, nil
}

// stripComments drops full-line // comments, the only JSONC extension
// the config format accepts.
func stripComments(raw []byte) []byte {
	lines := strings.Split(string(raw), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		kept = append(kept, line)
	}

	return []byte(strings.Join(kept, "\n"))
}
