package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ugraph/pkg/graph"
)

// statsCommand creates the stats command for structural summaries.
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <graph file>",
		Short: "Print a structural summary of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, desc, err := c.loadGraph(args[0])
			if err != nil {
				return err
			}

			name := desc.Name
			if name == "" {
				name = args[0]
			}
			fmt.Println(StyleTitle.Render(name))
			printKeyValue("nodes", fmt.Sprint(g.NodeCount()))
			printKeyValue("links", fmt.Sprint(g.LinkCount()))
			printKeyValue("components", fmt.Sprint(componentCount(g)))

			minDeg, maxDeg := degreeRange(g)
			printKeyValue("degree", fmt.Sprintf("%d min / %d max", minDeg, maxDeg))
			return nil
		},
	}
}

// componentCount counts connected components by running the spanning
// walk from each not-yet-visited node.
func componentCount(g *graph.Graph[string]) int {
	visited := make(map[string]struct{}, g.NodeCount())
	count := 0
	for _, n := range g.Nodes() {
		if _, ok := visited[n]; ok {
			continue
		}
		count++
		for _, m := range g.MinimalSpanning(n).Nodes() {
			visited[m] = struct{}{}
		}
	}
	return count
}

func degreeRange(g *graph.Graph[string]) (minDeg, maxDeg int) {
	for i, n := range g.Nodes() {
		d := g.Degree(n)
		if i == 0 || d < minDeg {
			minDeg = d
		}
		if d > maxDeg {
			maxDeg = d
		}
	}
	return minDeg, maxDeg
}
