// Package browser launches the desktop browser on the game page
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Commander starts a detached process
type Commander interface {
	Start(name string, args ...string) error
}

// execCommander starts real processes
type execCommander struct{}

func (execCommander) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// launchers maps GOOS to the command that opens a URL and the arguments
// placed before it.
var launchers = map[string][]string{
	"linux":   {"xdg-open"},
	"freebsd": {"xdg-open"},
	"darwin":  {"open"},
	"windows": {"rundll32", "url.dll,FileProtocolHandler"},
}

// Open opens target in the default browser
func Open(target string) error {
	return OpenWith(execCommander{}, runtime.GOOS, target)
}

// OpenPage opens path relative to the server's base URL
func OpenPage(baseURL, path string) error {
	target, err := url.JoinPath(baseURL, path)
	if err != nil {
		return fmt.Errorf("building page url: %w", err)
	}
	return Open(target)
}

// OpenWith opens target through commander as it would on goos
func OpenWith(commander Commander, goos, target string) error {
	launcher, ok := launchers[goos]
	if !ok {
		return fmt.Errorf("unsupported platform: %s", goos)
	}

	args := append(append([]string{}, launcher[1:]...), target)
	return commander.Start(launcher[0], args...)
}
