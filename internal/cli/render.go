package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gotsort/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file (single format) or base path (multiple)
	formats []string // output formats: "dot", "svg"
	rankdir string   // graph layout direction
	noCache bool     // disable artifact caching
	refresh bool     // recompute even on a cache hit
}

// renderCommand creates the render command for generating DOT and SVG output.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{rankdir: pipeline.DefaultRankdir}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a dependency graph to DOT or SVG",
		Long: `Render a dependency graph to DOT or SVG.

Accepts a graph.json file (produced by 'parse'), a TOML manifest, or
adjacency text; the input format is detected from the file extension.
SVG rendering runs an embedded Graphviz, so results are cached locally
for faster subsequent runs.

Examples:
  gotsort render graph.json
  gotsort render deps.txt -f dot,svg --rankdir LR
  gotsort render graph.json -o out/deps.svg --no-cache`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateRenderFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateRankdir(opts.rankdir); err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runRender(cmd.Context(), path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot (comma-separated)")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", opts.rankdir, "layout direction: TB (default), BT, LR, RL")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached artifacts")

	return cmd
}

// renderFormats is the set of formats the render command accepts.
var renderFormats = map[string]bool{
	pipeline.FormatDOT: true,
	pipeline.FormatSVG: true,
}

// validateRenderFormats checks that all requested formats can be rendered.
func validateRenderFormats(formats []string) error {
	for _, f := range formats {
		if !renderFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'dot' or 'svg')", f)
		}
	}
	return nil
}

// runRender parses the input, renders the requested formats, and writes one
// file per format.
func (c *CLI) runRender(ctx context.Context, path string, opts *renderOpts) error {
	input, name, err := readInput(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", name))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:       input,
		InputFormat: detectInputFormat(path),
		Formats:     opts.formats,
		Rankdir:     opts.rankdir,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(result.Artifacts, opts.formats, basePath(opts.output, path))
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStatsWithCache(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, the input name without its extension is used, or
// "graph" when reading stdin. A known format extension on output is
// stripped so "deps.svg" and "deps" name the same outputs.
func basePath(output, input string) string {
	if output == "" {
		if input == "" || input == "-" {
			return "graph"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if renderFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes each rendered format to base.<format> and returns
// the written paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, base string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			continue
		}
		p := base + "." + f
		if err := os.WriteFile(p, data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", p, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}
