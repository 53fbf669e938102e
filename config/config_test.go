package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/GongXiangbo/Knight/config"
)

// write drops content into a fresh temp file and returns its path.
func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	return path
}

// TestLoad decodes a commented JSONC file.
func TestLoad(t *testing.T) {
	path := write(t, `{
	// the playing field
	"board_size": 10,
	"start_position": "a1",
	// where the knight is headed
	"end_position": "j10"
}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := config.Config{BoardSize: 10, StartPosition: "a1", EndPosition: "j10"}
	if cfg != want {
		t.Errorf("Load = %+v; want %+v", cfg, want)
	}
}

// TestLoad_Defaults keeps Default() values for absent fields.
func TestLoad_Defaults(t *testing.T) {
	path := write(t, `{"start_position": "b2"}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.BoardSize != 8 {
		t.Errorf("BoardSize = %d; want default 8", cfg.BoardSize)
	}
	if cfg.StartPosition != "b2" || cfg.EndPosition != "" {
		t.Errorf("positions = %q, %q; want \"b2\", \"\"", cfg.StartPosition, cfg.EndPosition)
	}
}

// TestLoad_Errors maps each failure mode to its sentinel.
func TestLoad_Errors(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.jsonc")); !errors.Is(err, config.ErrRead) {
		t.Errorf("missing file error = %v; want ErrRead", err)
	}

	broken := write(t, `{"board_size": }`)
	if _, err := config.Load(broken); !errors.Is(err, config.ErrParse) {
		t.Errorf("broken JSON error = %v; want ErrParse", err)
	}

	zero := write(t, `{"board_size": 0}`)
	if _, err := config.Load(zero); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("zero board error = %v; want ErrInvalid", err)
	}
}
