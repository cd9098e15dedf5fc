package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ugraph/pkg/graph"
	"github.com/matzehuels/ugraph/pkg/graphio"
)

const (
	kindComplete = "complete"
	kindRandom   = "random"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	kind   string  // complete or random
	nodes  int     // number of nodes
	seed   uint64  // RNG seed for random graphs
	chance float64 // per-pair link probability
	links  int     // exact link count, overrides chance
	output string  // output file path
}

// generateCommand creates the generate command for synthetic graphs.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a complete or random graph file",
		Long: `Generate writes a JSON graph description for a synthetic graph:
either the complete graph over N nodes, or an Erdős–Rényi random graph
with a fixed seed so runs are reproducible.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.nodes <= 0 {
				return fmt.Errorf("need a positive node count, got %d", opts.nodes)
			}

			names := make([]string, opts.nodes)
			for i := range names {
				names[i] = fmt.Sprintf("n%d", i+1)
			}

			var g *graph.Graph[string]
			switch opts.kind {
			case kindComplete:
				g = graph.Complete(names)
			case kindRandom:
				rng := rand.New(rand.NewPCG(opts.seed, opts.seed))
				g = graph.ErdosRenyi(names, rng, graph.RandomOptions{
					LinkCount:  opts.links,
					LinkChance: opts.chance,
				})
			default:
				return fmt.Errorf("unknown kind %q (want complete or random)", opts.kind)
			}

			name := opts.kind + "-" + uuid.NewString()[:8]
			path := opts.output
			if path == "" {
				path = name + ".json"
			}
			if err := graphio.WriteJSONFile(graphio.FromGraph(g, name), path); err != nil {
				return err
			}

			printSuccess("Generated %s graph %s", opts.kind, name)
			printFile(path)
			printStats(g.NodeCount(), g.LinkCount(), false)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", kindRandom, "graph kind: complete or random")
	cmd.Flags().IntVarP(&opts.nodes, "nodes", "n", 8, "number of nodes")
	cmd.Flags().Uint64Var(&opts.seed, "seed", graph.DefaultSeed, "RNG seed for random graphs")
	cmd.Flags().Float64Var(&opts.chance, "chance", graph.DefaultLinkChance, "per-pair link probability")
	cmd.Flags().IntVar(&opts.links, "links", 0, "exact link count (overrides --chance)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file path (default: <name>.json)")

	return cmd
}
