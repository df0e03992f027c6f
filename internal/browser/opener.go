// Package browser opens URLs in the user's default browser.
package browser

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"sync"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// CommandOpener launches an external command with the URL as its last
// argument. When Command is empty the platform default is used.
type CommandOpener struct {
	Command []string
}

// NewCommandOpener returns an opener using command, or the OS default when
// command is empty.
func NewCommandOpener(command []string) *CommandOpener {
	return &CommandOpener{Command: command}
}

// Open starts the command and returns without waiting for it to exit.
func (o *CommandOpener) Open(ctx context.Context, url string) error {
	argv := o.argv(url)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	// reap in the background; the browser outlives us
	go func() { _ = cmd.Wait() }()
	return nil
}

func (o *CommandOpener) argv(url string) []string {
	if len(o.Command) > 0 {
		return append(append([]string(nil), o.Command...), url)
	}
	return append(DefaultCommand(runtime.GOOS), url)
}

// DefaultCommand returns the URL-opening command for goos.
func DefaultCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// RecordingOpener records URLs instead of opening them.
type RecordingOpener struct {
	mu   sync.Mutex
	URLs []string
	Err  error // returned from every Open call when set
}

func (r *RecordingOpener) Open(_ context.Context, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.URLs = append(r.URLs, url)
	return r.Err
}

// Opened returns a copy of the recorded URLs.
func (r *RecordingOpener) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.URLs...)
}
