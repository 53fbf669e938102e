// Package render serializes a shortest-path result into shareable
// artifacts.
//
// What:
//
//   - Graph: a Graphviz DOT digraph (rankdir=LR) with one node per square
//     visited by any shortest path, labelled algebraically, and one edge
//     per consecutive square pair, deduplicated across paths.
//   - WritePaths/SavePaths: a plain-text listing, one path per line,
//     squares joined by " -> ".
//
// Why:
//
//   - The path set is most useful drawn: overlapping routes collapse into
//     a compact layered graph that makes the shared corridors obvious.
//
// The search core never writes files; this package is the only place
// that turns results into bytes. DOT generation is delegated to
// github.com/emicklei/dot; callers run the dot tool themselves to get
// PDF or image output.
//
// Output is deterministic: nodes and edges follow the canonical path
// order of the Result, so identical queries produce identical bytes.
package render
