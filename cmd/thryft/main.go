package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/thryft-app/thryft/internal/app"
	"github.com/thryft-app/thryft/internal/config"
	"github.com/thryft-app/thryft/internal/logger"
)

// ANSI escape codes
const (
	reset  = "\033[0m"
	yellow = "\033[33m"
	red    = "\033[31m"
	green  = "\033[32m"
	cyan   = "\033[36m"
	bold   = "\033[1m"
)

var version = "dev"

var logo = []string{
	" _____ _                __ _   ",
	"|_   _| |__  _ __ _   _/ _| |_ ",
	"  | | | '_ \\| '__| | | | |_| __|",
	"  | | | | | | |  | |_| |  _| |_ ",
	"  |_| |_| |_|_|   \\__, |_|  \\__|",
	"                  |___/        ",
}

// showBanner prints the logo in a box
func showBanner() {
	width := 0
	for _, line := range logo {
		width = max(width, len(line))
	}
	width += 4
	border := strings.Repeat("═", width)

	fmt.Printf("\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		fmt.Printf("  %s║%s  %-*s  %s║%s\n", cyan, yellow, width-4, line, cyan, reset)
	}
	fmt.Printf("  %s╚%s╝%s\n", cyan, border, reset)
	fmt.Printf("  %sOutfit challenge server %s%s\n\n", bold, version, reset)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Thryft - outfit challenge server

Usage:
  thryft [options]

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Every option can also be set with a THRYFT_* environment variable
(THRYFT_PORT, THRYFT_DB, THRYFT_LOG_LEVEL, THRYFT_BASE_URL,
THRYFT_ROUND_SECONDS, THRYFT_TOTAL_ROUNDS, THRYFT_NO_KEYBOARD).
Flags win over the environment.

Keyboard Shortcuts (when enabled):
%s
Examples:
  thryft                            # Run on port 8080 with thryft.db
  thryft -port 9000 -db /data/t.db  # Custom port and database
  thryft -rounds 3 -seconds 45      # Shorter games with longer rounds
`, shortcutHelp)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%sthryft: %v%s\n", red, err, reset)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	flag.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.StringVar(&cfg.BaseURL, "baseurl", cfg.BaseURL, "Public base URL for share links (default: detected LAN address)")
	flag.IntVar(&cfg.TotalRounds, "rounds", cfg.TotalRounds, "Rounds per game")
	flag.IntVar(&cfg.RoundSeconds, "seconds", cfg.RoundSeconds, "Seconds per round")
	flag.BoolVar(&cfg.NoKeyboard, "nokeyboard", cfg.NoKeyboard, "Disable keyboard shortcuts")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("thryft %s\n", version)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	showBanner()

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))

	a, err := app.New(appLog, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	if cfg.NoKeyboard {
		fmt.Printf("%sKeyboard shortcuts disabled%s\n\n", yellow, reset)
	} else {
		c := newConsole(appLog, a.BaseURL(), quit)
		restore, err := c.start(os.Stdin)
		if err != nil {
			appLog.Warn("Keyboard shortcuts unavailable", "error", err)
		} else {
			defer restore()
			fmt.Printf("%s%s  Keyboard shortcuts:%s\n%s\n", bold, green, reset, shortcutHelp)
		}
	}

	return a.Run(ctx)
}
