// cmd/game/args.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go-superpang/internal/config"
)

// options - параметры командной строки. Нулевые значения не трогают
// настройки из файла.
type options struct {
	godMode    bool
	fps        int
	configPath string
	assetsDir  string
	seed       int64
	tui        bool
	debug      bool
	menu       bool
}

// parseArgs понимает флаги и старую позиционную форму: GOD_MODE и FPS <n>.
func parseArgs(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("superpang", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&o.godMode, "god", false, "player cannot lose lives")
	fs.IntVar(&o.fps, "fps", 0, "simulation ticks per second")
	fs.StringVar(&o.configPath, "config", "superpang.toml", "tuning file")
	fs.StringVar(&o.assetsDir, "assets", "assets", "directory with images, audio and fonts")
	fs.Int64Var(&o.seed, "seed", 0, "random seed, 0 picks one from the clock")
	fs.BoolVar(&o.tui, "tui", false, "play in the terminal")
	fs.BoolVar(&o.debug, "debug", false, "write logs to logs/superpang.log and serve pprof")
	fs.BoolVar(&o.menu, "menu", true, "start from the title screen")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	rest := fs.Args()
	for i := 0; i < len(rest); i++ {
		switch strings.ToUpper(rest[i]) {
		case "GOD_MODE":
			o.godMode = true
		case "FPS":
			if i+1 >= len(rest) {
				return o, fmt.Errorf("FPS needs a value")
			}
			i++
			n, err := strconv.Atoi(rest[i])
			if err != nil || n <= 0 {
				return o, fmt.Errorf("invalid FPS value %q", rest[i])
			}
			o.fps = n
		default:
			return o, fmt.Errorf("unknown argument %q", rest[i])
		}
	}
	if o.fps < 0 {
		return o, fmt.Errorf("invalid FPS value %d", o.fps)
	}
	return o, nil
}

// apply накладывает параметры на настройки.
func (o options) apply(t *config.Tuning) {
	if o.godMode {
		t.GodMode = true
	}
	if o.fps > 0 {
		t.FPS = o.fps
	}
	if o.seed != 0 {
		t.Seed = o.seed
	}
}

// setupLogging направляет стандартный логгер. В отладке - в файл, в
// терминальном режиме без отладки логи глушатся, чтобы не ломать экран.
func setupLogging(debug, tui bool, dir string) (func(), error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if !debug {
		if tui {
			log.SetOutput(io.Discard)
		} else {
			log.SetOutput(os.Stderr)
		}
		return func() {}, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "superpang.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
