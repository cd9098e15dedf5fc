package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ugraph/pkg/dot"
)

// spanOpts holds the command-line flags for the span command.
type spanOpts struct {
	start   string // BFS start node
	output  string // output file path
	format  string // output format: svg, png or dot
	noCache bool   // bypass the artifact cache
}

// spanCommand creates the span command for layered spanning subgraphs.
func (c *CLI) spanCommand() *cobra.Command {
	var opts spanOpts

	cmd := &cobra.Command{
		Use:   "span <graph file>",
		Short: "Render the minimal spanning subgraph from a start node",
		Long: `Span computes the breadth-first spanning subgraph rooted at --start,
keeping one discovery link per reached node, and renders it with BFS
layers aligned as Graphviz ranks. The start node is highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}

			g, desc, err := c.loadGraph(args[0])
			if err != nil {
				return err
			}
			if !g.Contains(opts.start) {
				printWarning("node %q is not in the graph; output will be empty", opts.start)
			}

			s := g.MinimalSpanning(opts.start)
			c.Logger.Debug("computed spanning subgraph",
				"start", opts.start, "depth", s.Depth(), "nodes", s.NodeCount())

			dotOpts, err := desc.Options()
			if err != nil {
				return err
			}
			src, err := dot.MarshalSpanning(s, dotOpts)
			if err != nil {
				return err
			}

			if err := c.writeArtifact(cmd.Context(), src, s.Graph, args[0], opts.output, opts.format, opts.noCache); err != nil {
				return err
			}
			for depth, layer := range s.Layers() {
				printDetail("layer %d: %s", depth, fmt.Sprint(layer))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "start node for the breadth-first walk (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default: input path with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg, png or dot")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
