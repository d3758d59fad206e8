package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gotsort/pkg/adjacency"
	"github.com/matzehuels/gotsort/pkg/cache"
	"github.com/matzehuels/gotsort/pkg/digraph"
	apperrors "github.com/matzehuels/gotsort/pkg/errors"
	pkgio "github.com/matzehuels/gotsort/pkg/io"
	"github.com/matzehuels/gotsort/pkg/manifest"
	"github.com/matzehuels/gotsort/pkg/observability"
	"github.com/matzehuels/gotsort/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete parse → sort → render pipeline.
// Observability hooks fire around every stage.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, observability.StageParse)
	g, lines, err := parseInput(opts)
	result.Stats.ParseTime = time.Since(parseStart)
	observability.Pipeline().OnStageComplete(ctx, observability.StageParse, result.Stats.ParseTime, err)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Graph = g
	result.Stats.NodeCount = g.Len()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.LineCount = lines
	result.GraphHash = hashGraph(g)

	r.Logger.Info("parsed input",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.ParseTime)

	// Stage 2: Sort
	sortStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, observability.StageSort)
	order, sortErr := g.TopoSort()
	result.Stats.SortTime = time.Since(sortStart)
	observability.Pipeline().OnStageComplete(ctx, observability.StageSort, result.Stats.SortTime, sortErr)
	observability.Pipeline().OnSortResult(ctx, result.Stats.NodeCount, result.Stats.EdgeCount, sortErr)
	if sortErr != nil {
		return nil, sortError(sortErr)
	}
	result.Order = order
	result.Names = resolveNames(g, order)

	r.Logger.Info("sorted graph",
		"nodes", len(order),
		"duration", result.Stats.SortTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnStageStart(ctx, observability.StageRender)
	artifacts, renderHit, renderErr := r.renderArtifacts(ctx, g, result.Names, result.GraphHash, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnStageComplete(ctx, observability.StageRender, result.Stats.RenderTime, renderErr)
	if renderErr != nil {
		return nil, fmt.Errorf("render: %w", renderErr)
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse builds a graph from opts.Input according to opts.InputFormat.
func (r *Runner) Parse(ctx context.Context, opts Options) (*digraph.Digraph[string], error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	g, _, err := parseInput(opts)
	return g, err
}

// Sort topologically sorts g and resolves the ordering to node names.
// Failures carry machine-readable codes: CYCLE_DETECTED for cycles,
// MISSING_NODE for dangling edges.
func (r *Runner) Sort(ctx context.Context, g *digraph.Digraph[string]) ([]digraph.Handle, []string, error) {
	order, err := g.TopoSort()
	if err != nil {
		return nil, nil, sortError(err)
	}
	return order, resolveNames(g, order), nil
}

// RenderWithCacheInfo generates artifacts for every requested format and
// reports whether the SVG came from cache. names is the sorted node order
// used by the text and JSON formats; graph-shaped formats (dot, svg) ignore
// it.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *digraph.Digraph[string], names []string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)
	return r.renderArtifacts(ctx, g, names, hashGraph(g), opts)
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, g *digraph.Digraph[string], names []string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, names, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// parseInput builds a graph from the input text. The second return is the
// number of non-blank lines for text input, zero otherwise.
func parseInput(opts Options) (*digraph.Digraph[string], int, error) {
	switch opts.InputFormat {
	case InputText:
		p := adjacency.NewParser()
		if err := p.ParseReader(strings.NewReader(opts.Input)); err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read adjacency input")
		}
		return p.Finish(), p.Lines(), nil

	case InputTOML:
		g, err := manifest.Parse([]byte(opts.Input))
		if err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "read manifest input")
		}
		return g, 0, nil

	case InputJSON:
		g, err := pkgio.ReadJSON(strings.NewReader(opts.Input))
		if err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "read graph input")
		}
		return g, 0, nil

	default:
		return nil, 0, ValidateInputFormat(opts.InputFormat)
	}
}

// renderArtifacts produces every requested format. Only SVG consults the
// cache: text, JSON and DOT generation are all cheaper than a cache probe.
func (r *Runner) renderArtifacts(ctx context.Context, g *digraph.Digraph[string], names []string, graphHash string, opts Options) (map[string][]byte, bool, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	svgHit := false

	for _, format := range opts.Formats {
		switch format {
		case FormatText:
			artifacts[format] = textArtifact(names)

		case FormatJSON:
			data, err := jsonArtifact(g, names)
			if err != nil {
				return nil, false, err
			}
			artifacts[format] = data

		case FormatDOT:
			dot, err := render.ToDOT(g, render.Options{Rankdir: opts.Rankdir})
			if err != nil {
				return nil, false, err
			}
			artifacts[format] = []byte(dot)

		case FormatSVG:
			svg, hit, err := r.renderSVG(ctx, g, graphHash, opts)
			if err != nil {
				return nil, false, err
			}
			artifacts[format] = svg
			svgHit = hit
		}
	}

	return artifacts, svgHit, nil
}

// renderSVG renders the SVG artifact, consulting the cache first. A graph
// without a hash (one the JSON codec cannot express) bypasses the cache
// entirely rather than risking a key collision.
func (r *Runner) renderSVG(ctx context.Context, g *digraph.Digraph[string], graphHash string, opts Options) ([]byte, bool, error) {
	cacheable := graphHash != ""
	var key string

	if cacheable {
		key = r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(FormatSVG))
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				return data, true, nil
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
	}

	dot, err := render.ToDOT(g, render.Options{Rankdir: opts.Rankdir})
	if err != nil {
		return nil, false, err
	}
	svg, err := render.RenderSVG(ctx, dot)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		if err := r.Cache.Set(ctx, key, svg, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(svg))
		}
	}
	return svg, false, nil
}

// hashGraph returns the content hash of g, or "" when the graph cannot be
// serialized (duplicate names or dangling edges).
func hashGraph(g *digraph.Digraph[string]) string {
	var buf bytes.Buffer
	if err := pkgio.WriteJSON(g, &buf); err != nil {
		return ""
	}
	return cache.Hash(buf.Bytes())
}

// resolveNames maps an ordering to node payloads. TopoSort only emits live
// handles, so every lookup resolves.
func resolveNames(g *digraph.Digraph[string], order []digraph.Handle) []string {
	names := make([]string, 0, len(order))
	for _, h := range order {
		n, _ := g.Node(h)
		names = append(names, n.Data())
	}
	return names
}

// textArtifact is the classic output: one name per line in sorted order.
func textArtifact(names []string) []byte {
	if len(names) == 0 {
		return nil
	}
	return []byte(strings.Join(names, "\n") + "\n")
}

// sortDocument is the JSON artifact schema.
type sortDocument struct {
	Order []string `json:"order"`
	Nodes int      `json:"nodes"`
	Edges int      `json:"edges"`
}

// jsonArtifact emits the ordering plus graph counts as indented JSON.
func jsonArtifact(g *digraph.Digraph[string], names []string) ([]byte, error) {
	doc := sortDocument{
		Order: names,
		Nodes: g.Len(),
		Edges: g.EdgeCount(),
	}
	if doc.Order == nil {
		doc.Order = []string{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode sort result")
	}
	return append(data, '\n'), nil
}

// sortError maps sort failures onto coded errors for user-facing handling.
func sortError(err error) error {
	switch {
	case errors.Is(err, digraph.ErrCycle):
		return apperrors.Wrap(apperrors.ErrCodeCycle, err, "input contains a dependency cycle")
	case errors.Is(err, digraph.ErrMissingNode):
		return apperrors.Wrap(apperrors.ErrCodeMissingNode, err, "graph references a removed node")
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "sort failed")
	}
}
