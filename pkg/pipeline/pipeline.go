// Package pipeline provides the core sorting pipeline for gotsort.
//
// This package implements the complete parse → sort → render pipeline shared
// by every CLI entry point. Centralizing it keeps input handling, sorting,
// artifact generation, and caching behavior identical no matter which
// command triggers a run.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Build a directed graph from adjacency text, a TOML manifest,
//     or a JSON graph document
//  2. Sort: Topologically sort the graph, detecting cycles and dangling
//     edges
//  3. Render: Generate output in various formats (text, JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "a b\nb c\n",
//	    Formats: []string{"text", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	g, err := runner.Parse(ctx, opts)
//
//	// Sort an existing graph
//	order, names, err := runner.Sort(ctx, g)
//
//	// Render an existing graph
//	artifacts, err := runner.Render(ctx, g, names, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gotsort/pkg/cache"
	"github.com/matzehuels/gotsort/pkg/digraph"
	apperrors "github.com/matzehuels/gotsort/pkg/errors"
)

// Input format constants.
const (
	InputText = "text"
	InputTOML = "toml"
	InputJSON = "json"
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// DefaultRankdir is the default Graphviz layout direction.
const DefaultRankdir = "TB"

// ValidInputFormats is the set of supported input formats.
var ValidInputFormats = map[string]bool{
	InputText: true,
	InputTOML: true,
	InputJSON: true,
}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// ValidRankdirs is the set of supported layout directions.
var ValidRankdirs = map[string]bool{
	"TB": true,
	"BT": true,
	"LR": true,
	"RL": true,
}

// Options contains all configuration for the sorting pipeline.
// This struct supports JSON serialization for batch and scripted use.
type Options struct {
	// Parse options
	Input       string `json:"input"`
	InputFormat string `json:"input_format,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Rankdir string   `json:"rankdir,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed graph.
	Graph *digraph.Digraph[string]

	// GraphHash is the content hash of the graph, empty if the graph
	// cannot be serialized.
	GraphHash string

	// Order is the topological ordering as graph handles.
	Order []digraph.Handle

	// Names is Order resolved to node payloads.
	Names []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LineCount  int // non-blank input lines, text input only
	ParseTime  time.Duration
	SortTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage. Parse and sort are
// never cached; both are cheaper than a cache probe.
type CacheInfo struct {
	RenderHit bool // Whether the SVG artifact came from cache
}

// ValidateInputFormat checks that an input format is valid.
func ValidateInputFormat(format string) error {
	if !ValidInputFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid input format: %q (must be one of: text, toml, json)", format)
	}
	return nil
}

// ValidateFormat checks that an output format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all output formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRankdir checks that a layout direction is valid.
func ValidateRankdir(rankdir string) error {
	if !ValidRankdirs[rankdir] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid rankdir: %q (must be one of: TB, BT, LR, RL)", rankdir)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing and applies parse
// defaults.
func (o *Options) ValidateForParse() error {
	if o.InputFormat == "" {
		o.InputFormat = InputText
	}
	if err := ValidateInputFormat(o.InputFormat); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Rankdir == "" {
		o.Rankdir = DefaultRankdir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateRankdir(o.Rankdir)
}

// NeedsGraphviz returns true if any requested format runs the Graphviz
// engine.
func (o *Options) NeedsGraphviz() bool {
	for _, f := range o.Formats {
		if f == FormatSVG {
			return true
		}
	}
	return false
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  format,
		Rankdir: o.Rankdir,
	}
}
