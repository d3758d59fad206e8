package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/gotsort/pkg/io"
	"github.com/matzehuels/gotsort/pkg/pipeline"
)

// parseCommand creates the parse command for converting inputs to graph JSON.
func (c *CLI) parseCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a dependency graph into canonical JSON",
		Long: `Parse a dependency graph into canonical JSON.

Accepts adjacency text ("node successor..." lines) or a TOML manifest with
a [deps] table. The input format is detected from the file extension and
may be forced with --format. The output is a graph.json document suitable
for 'gotsort render'.

Examples:
  gotsort parse deps.txt -o graph.json
  gotsort parse Manifest.toml
  cat deps.txt | gotsort parse --format text`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runParse(cmd.Context(), path, format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "input format: text, toml, json (default: by extension)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse reads the input, builds the graph, and writes it as JSON.
func (c *CLI) runParse(ctx context.Context, path, format, output string) error {
	input, name, err := readInput(path)
	if err != nil {
		return err
	}

	if format == "" {
		format = detectInputFormat(path)
	}
	if err := pipeline.ValidateInputFormat(format); err != nil {
		return err
	}

	runner, err := c.newRunner(true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	c.Logger.Debug("parsing input", "source", name, "format", format)

	prog := newProgress(c.Logger)
	g, err := runner.Parse(ctx, pipeline.Options{
		Input:       input,
		InputFormat: format,
		Logger:      c.Logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Parsed %d nodes with %d edges", g.Len(), g.EdgeCount()))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteJSON(g, out); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Parse complete")
		printFile(output)
		printStats(g.Len(), g.EdgeCount())
		printNewline()
		printNextStep("Render", appName+" render "+output)
	}
	return nil
}
