// Package dot serializes graphs to Graphviz DOT and drives the
// downstream tooling: file sinks, in-process SVG/PNG rendering, and
// piping to an external layout process.
//
// [Marshal] produces a flat `graph { ... }` document; setting
// [Options].Layers switches to rank-aligned output where each layer
// becomes a `{ rank=same; ... }` block. [MarshalSpanning] wires a
// spanning subgraph's BFS layers into that mode with sensible defaults.
//
// Styling is attribute-based: [Attrs] renders escaped, deterministic
// key=value clauses, and [Raw] passes fragments through untouched.
package dot
