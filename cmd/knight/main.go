// Command knight finds every shortest knight path between two squares
// and writes the result as a DOT graph plus a plain-text listing, or
// serves the same query over HTTP.
//
// Usage:
//
//	knight --config config.jsonc --start a1 --end h8 --output out/
//	knight --serve --addr :8080
//
// Flags override the configuration file; positions are algebraic.
package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/GongXiangbo/Knight/api"
	"github.com/GongXiangbo/Knight/config"
	"github.com/GongXiangbo/Knight/knightpath"
	"github.com/GongXiangbo/Knight/notation"
	"github.com/GongXiangbo/Knight/render"
)

const (
	dotFile   = "knight_paths.dot"
	pathsFile = "paths.txt"
)

var (
	configPath = flag.String("config", "config.jsonc", "path to the JSONC config file")
	startAlg   = flag.String("start", "", `start position, e.g. "a1" (overrides config)`)
	endAlg     = flag.String("end", "", `end position, e.g. "h8" (overrides config)`)
	boardSize  = flag.Int("size", 0, "board size N (overrides config)")
	outputDir  = flag.String("output", "output", "output directory for generated artifacts")
	serve      = flag.Bool("serve", false, "serve the HTTP API instead of running one query")
	addr       = flag.String("addr", ":8080", "listen address in --serve mode")
	logDir     = flag.String("logdir", "", "write logs to this directory instead of the console")
)

func main() {
	flag.Parse()

	conf := logx.LogConf{ServiceName: "knight", Mode: "console", Encoding: "plain"}
	if *logDir != "" {
		conf.Mode = "file"
		conf.Path = *logDir
	}
	logx.MustSetup(conf)
	defer logx.Close()

	if *serve {
		logx.Infof("serving knight path API on %s", *addr)
		if err := api.SetupRouter().Run(*addr); err != nil {
			fatalf("server stopped: %v", err)
		}
		return
	}

	runQuery()
}

// runQuery executes one enumeration per the config file and flags, then
// writes knight_paths.dot and paths.txt into the output directory.
func runQuery() {
	cfg, err := config.Load(*configPath)
	switch {
	case err == nil:
	case errors.Is(err, config.ErrRead) && !passed("config"):
		// No config file and none asked for: flags carry the query.
		cfg = config.Default()
	default:
		fatalf("failed to load config: %v", err)
	}

	size := cfg.BoardSize
	if *boardSize > 0 {
		size = *boardSize
	}
	startPos, endPos := cfg.StartPosition, cfg.EndPosition
	if *startAlg != "" {
		startPos = *startAlg
	}
	if *endAlg != "" {
		endPos = *endAlg
	}
	if startPos == "" || endPos == "" {
		fatalf("start and end positions must be provided (flags or config)")
	}

	start, err := notation.Parse(startPos, size)
	if err != nil {
		fatalf("invalid start position: %v", err)
	}
	end, err := notation.Parse(endPos, size)
	if err != nil {
		fatalf("invalid end position: %v", err)
	}

	logx.Infof("finding paths from %s to %s on %d×%d board", startPos, endPos, size, size)
	res, err := knightpath.FindAllShortestPaths(start, end, size)
	if errors.Is(err, knightpath.ErrUnreachable) {
		fatalf("no valid paths found: %v", err)
	}
	if err != nil {
		fatalf("enumeration failed: %v", err)
	}
	logx.Infof("found %d shortest paths of %d moves each", len(res.Paths), res.Distance)

	if err = os.MkdirAll(*outputDir, 0o755); err != nil {
		fatalf("cannot create output directory: %v", err)
	}
	dotPath := filepath.Join(*outputDir, dotFile)
	if err = render.SaveDOT(dotPath, res); err != nil {
		fatalf("writing graph: %v", err)
	}
	txtPath := filepath.Join(*outputDir, pathsFile)
	if err = render.SavePaths(txtPath, res); err != nil {
		fatalf("writing path listing: %v", err)
	}
	logx.Infof("wrote %s and %s", dotPath, txtPath)
}

// passed reports whether the named flag was set on the command line.
func passed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

func fatalf(format string, args ...any) {
	logx.Errorf(format, args...)
	_ = logx.Close()
	os.Exit(1)
}
