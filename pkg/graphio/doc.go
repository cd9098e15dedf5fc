// Package graphio reads and writes graph description files. A [File]
// names the nodes, links and optional DOT styling of a string-labeled
// graph; JSON and TOML encodings share the one shape. Descriptions
// replay through the graph's own constructors, so malformed files fail
// with the graph package's sentinel errors.
package graphio
