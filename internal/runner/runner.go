// Package runner executes the wrapped command with inherited stdio and
// reports its timing and exit status.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"
)

const (
	// ExitSpawnFailed is reported when the command could not be started.
	ExitSpawnFailed = 127
	// ExitUsage is reported when no command was given.
	ExitUsage = 2
)

// Result describes one finished (or failed to start) command.
type Result struct {
	// Command is the argv that was run.
	Command    []string
	StartedAt  time.Time
	FinishedAt time.Time
	// Duration is measured with the monotonic clock.
	Duration time.Duration
	ExitCode int
	// SpawnErr is set when the command never started.
	SpawnErr error
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.SpawnErr == nil && r.ExitCode == 0
}

// Run starts argv[0] with argv[1:], waits for it and returns its result.
// stdin, stdout and stderr are inherited. While the child runs, interrupts
// are absorbed so brb survives Ctrl-C long enough to notify; SIGTERM is
// forwarded to the child.
func Run(ctx context.Context, argv []string) Result {
	res := Result{Command: append([]string(nil), argv...)}
	start := time.Now()
	res.StartedAt = start.UTC()

	finish := func() Result {
		end := time.Now()
		res.FinishedAt = end.UTC()
		res.Duration = end.Sub(start)
		return res
	}

	if len(argv) == 0 {
		res.ExitCode = ExitUsage
		res.SpawnErr = errors.New("no command given")
		return finish()
	}
	if err := ctx.Err(); err != nil {
		res.ExitCode = ExitSpawnFailed
		res.SpawnErr = err
		return finish()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := cmd.Start(); err != nil {
		res.ExitCode = ExitSpawnFailed
		res.SpawnErr = fmt.Errorf("failed to start %s: %w", argv[0], err)
		return finish()
	}

	done := make(chan struct{})
	go forwardSignals(cmd.Process, sigCh, done)
	err := cmd.Wait()
	close(done)

	res.ExitCode = exitCode(err, cmd.ProcessState)
	return finish()
}

// forwardSignals relays SIGTERM to the child until done is closed. SIGINT
// already reaches the child through the terminal's process group.
func forwardSignals(p *os.Process, sigCh <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case sig := <-sigCh:
			if sig == syscall.SIGTERM {
				_ = p.Signal(sig)
			}
		}
	}
}

func exitCode(err error, state *os.ProcessState) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		// Terminated by a signal.
		return 1
	}
	if state != nil && state.ExitCode() >= 0 {
		return state.ExitCode()
	}
	return 1
}
