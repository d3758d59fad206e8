// Package render turns directed graphs into Graphviz diagrams.
//
// # Usage
//
// Convert a graph to DOT text, then render it to SVG:
//
//	dot, err := render.ToDOT(g, render.Options{Rankdir: "LR"})
//	svg, err := render.RenderSVG(ctx, dot)
//
// The two steps are split so the DOT text can be written out as an artifact
// of its own or handed to external Graphviz tooling.
//
// # DOT Format
//
// [ToDOT] emits one quoted declaration per node and one "a" -> "b" line per
// edge inside a digraph block. Layout direction is controlled by
// [Options.Rankdir]; everything else uses rounded box nodes.
//
// # Rendering
//
// [RenderSVG] uses [github.com/goccy/go-graphviz], which embeds the Graphviz
// layout engine as WebAssembly. It needs no system graphviz but pays an
// engine start-up cost per call.
package render
