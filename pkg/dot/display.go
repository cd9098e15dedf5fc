package dot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/matzehuels/ugraph/pkg/graph"
)

// DefaultCommand is the layout tool [Display] invokes when
// DisplayOptions leaves Command empty.
const DefaultCommand = "dot"

// DefaultDisplayArgs open an interactive window on the layout tool's
// side.
var DefaultDisplayArgs = []string{"-Tx11"}

// DisplayOptions configures the external process [Display] pipes DOT to.
type DisplayOptions struct {
	// Command is the executable to run, [DefaultCommand] when empty.
	Command string

	// Args are passed to the command, [DefaultDisplayArgs] when nil.
	Args []string

	// Stdout and Stderr receive the process output, defaulting to the
	// calling process's streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Display serializes g and pipes the DOT source to an external layout
// process, by default `dot -Tx11`. It blocks until the process exits or
// ctx is canceled.
func Display[N comparable](ctx context.Context, g *graph.Graph[N], opts Options[N], disp DisplayOptions) error {
	src, err := Marshal(g, opts)
	if err != nil {
		return err
	}
	return Pipe(ctx, src, disp)
}

// Pipe feeds DOT source to the configured external process over stdin.
func Pipe(ctx context.Context, src []byte, disp DisplayOptions) error {
	command := disp.Command
	if command == "" {
		command = DefaultCommand
	}
	args := disp.Args
	if args == nil {
		args = DefaultDisplayArgs
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = bytes.NewReader(src)
	cmd.Stdout = disp.Stdout
	cmd.Stderr = disp.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", command, err)
	}
	return nil
}
