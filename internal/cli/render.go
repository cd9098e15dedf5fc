package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ugraph/pkg/dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path
	format  string // output format: svg, png or dot
	noCache bool   // bypass the artifact cache
}

// renderCommand creates the render command for turning graph files into
// images or DOT source.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <graph file>",
		Short: "Render a graph file as SVG, PNG or DOT",
		Long: `Render reads a graph description (JSON or TOML), serializes it to
Graphviz DOT with any styles from the file, and renders the requested
output format. Rendered artifacts are cached by content hash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}

			g, desc, err := c.loadGraph(args[0])
			if err != nil {
				return err
			}
			dotOpts, err := desc.Options()
			if err != nil {
				return err
			}

			p := newProgress(c.Logger)
			src, err := dot.Marshal(g, dotOpts)
			if err != nil {
				return err
			}

			if err := c.writeArtifact(cmd.Context(), src, g, args[0], opts.output, opts.format, opts.noCache); err != nil {
				return err
			}
			p.done("Render complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default: input path with new extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSVG, "output format: svg, png or dot")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")

	return cmd
}
