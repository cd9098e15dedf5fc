package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ugraph/pkg/dot"
)

// displayOpts holds the command-line flags for the display command.
type displayOpts struct {
	start   string   // optional BFS start node for layered display
	command string   // layout executable
	args    []string // layout arguments
}

// displayCommand creates the display command, which pipes DOT to an
// external layout process.
func (c *CLI) displayCommand() *cobra.Command {
	var opts displayOpts

	cmd := &cobra.Command{
		Use:   "display <graph file>",
		Short: "Pipe a graph to an external Graphviz viewer",
		Long: `Display serializes a graph file to DOT and pipes it to an external
layout process, by default "dot -Tx11". With --start the layered
spanning subgraph is shown instead of the full graph.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, desc, err := c.loadGraph(args[0])
			if err != nil {
				return err
			}
			dotOpts, err := desc.Options()
			if err != nil {
				return err
			}

			var src []byte
			if opts.start != "" {
				src, err = dot.MarshalSpanning(g.MinimalSpanning(opts.start), dotOpts)
			} else {
				src, err = dot.Marshal(g, dotOpts)
			}
			if err != nil {
				return err
			}

			c.Logger.Debug("piping DOT", "command", opts.command, "bytes", len(src))
			return dot.Pipe(cmd.Context(), src, dot.DisplayOptions{
				Command: opts.command,
				Args:    opts.args,
			})
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "display the spanning subgraph from this node")
	cmd.Flags().StringVar(&opts.command, "exec", dot.DefaultCommand, "layout executable to run")
	cmd.Flags().StringSliceVar(&opts.args, "args", nil, "arguments for the layout executable")

	return cmd
}
