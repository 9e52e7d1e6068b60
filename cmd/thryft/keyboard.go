package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thryft-app/thryft/internal/browser"
	"github.com/thryft-app/thryft/internal/logger"
)

const shortcutHelp = `  p              Open the game page in browser
  h              Toggle HTTP request logging
  l              Cycle log level (debug → info → warn → error)
  q              Quit server
  ?              Show keyboard help
`

// levels is the order the l shortcut cycles through
var levels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

var errNotTerminal = errors.New("stdin is not a terminal")

// console turns single key presses into server actions
type console struct {
	log     logger.Logger
	baseURL string
	quit    context.CancelFunc
	open    func(baseURL, path string) error
	out     io.Writer
}

func newConsole(log logger.Logger, baseURL string, quit context.CancelFunc) *console {
	return &console{
		log:     log,
		baseURL: baseURL,
		quit:    quit,
		open:    browser.OpenPage,
		out:     os.Stdout,
	}
}

// start puts the terminal in raw mode and reads keys until q or EOF. The
// returned func restores the terminal and must be called before exit.
func (c *console) start(in *os.File) (restore func(), err error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errNotTerminal
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}

	go c.listen(in)
	return func() { term.Restore(fd, oldState) }, nil
}

func (c *console) listen(in io.Reader) {
	buf := make([]byte, 1)
	for {
		n, err := in.Read(buf)
		if err != nil {
			return
		}
		if n == 1 && !c.handleKey(buf[0]) {
			return
		}
	}
}

// handleKey runs the shortcut for key and reports whether to keep reading
func (c *console) handleKey(key byte) bool {
	switch strings.ToLower(string(key)) {
	case "p":
		c.printf(cyan, "Opening game page in browser...")
		if err := c.open(c.baseURL, "/"); err != nil {
			c.printf(red, "Error opening browser: %v", err)
		}
	case "h":
		if c.log.IsHTTPLoggingEnabled() {
			c.log.DisableHTTPLogging()
			c.printf(yellow, "HTTP logging disabled")
		} else {
			c.log.EnableHTTPLogging()
			c.printf(green, "HTTP logging enabled")
		}
	case "l":
		next := nextLevel(c.log.GetLevel())
		c.log.SetLevel(next)
		c.printf(green, "Log level: %s", strings.ToLower(next.String()))
	case "?":
		c.printf(bold, "Keyboard Shortcuts:\n%s", shortcutHelp)
	case "q", "\x03": // q or Ctrl+C, which raw mode delivers as a byte
		c.printf(yellow, "Shutting down server...")
		c.quit()
		return false
	}
	return true
}

// printf writes one colored line. Raw mode needs explicit carriage returns.
func (c *console) printf(color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	msg = strings.ReplaceAll(strings.TrimRight(msg, "\n"), "\n", "\r\n")
	fmt.Fprintf(c.out, "%s%s%s\r\n", color, msg, reset)
}

func nextLevel(current slog.Level) slog.Level {
	for i, l := range levels {
		if l == current {
			return levels[(i+1)%len(levels)]
		}
	}
	return slog.LevelInfo
}
