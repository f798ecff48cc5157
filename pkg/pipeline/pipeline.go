// Package pipeline provides the core family diagram pipeline.
//
// This package implements the complete index → layout → route → render
// pipeline used by the CLI, the HTTP service and library callers. Keeping it
// in one place gives every entry point the same defaults, validation and
// caching behaviour.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Compute: index the members, infer marriages, find roots, assign
//     generations, route connectors and assemble the scene
//  2. Render: serialize the scene (SVG, JSON, PNG, PDF) or the graph (DOT,
//     Graphviz SVG)
//
// # Usage
//
// The simplest call renders the default SVG:
//
//	svg, err := pipeline.LayoutAndRender(members, relationships)
//
// Create a Runner for caching, several formats or custom geometry:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, fam, pipeline.Options{
//	    Formats: []string{"svg", "json"},
//	    Style:   "print",
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/familytree/pkg/cache"
	"github.com/matzehuels/familytree/pkg/errors"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/render/nodelink"
	"github.com/matzehuels/familytree/pkg/render/sink"
	"github.com/matzehuels/familytree/pkg/render/styles"
)

// Format constants for output formats.
const (
	FormatSVG      = "svg"
	FormatJSON     = "json"
	FormatDOT      = "dot"
	FormatGraphviz = "graphviz"
	FormatPNG      = "png"
	FormatPDF      = "pdf"
)

const (
	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameClassic

	// DefaultScale is the default PNG scale factor.
	DefaultScale = 2.0
)

// formats lists the supported output formats with their media types, in the
// order they are documented.
var formats = []struct {
	name        string
	contentType string
}{
	{FormatSVG, sink.ContentTypeSVG},
	{FormatJSON, sink.ContentTypeJSON},
	{FormatDOT, nodelink.ContentTypeDOT},
	{FormatGraphviz, sink.ContentTypeSVG},
	{FormatPNG, sink.ContentTypePNG},
	{FormatPDF, sink.ContentTypePDF},
}

// FormatNames lists the supported output formats.
func FormatNames() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.name
	}
	return names
}

// ContentType returns the media type for a format, or "" if unknown.
func ContentType(format string) string {
	for _, f := range formats {
		if f.name == format {
			return f.contentType
		}
	}
	return ""
}

// Extension returns the file extension used when writing a format to disk.
// The scene and Graphviz outputs get compound extensions so they never
// collide with a JSON family document or the native SVG.
func Extension(format string) string {
	switch format {
	case FormatJSON:
		return "scene.json"
	case FormatGraphviz:
		return "graphviz.svg"
	}
	return format
}

// Options contains all configuration for a pipeline run.
type Options struct {
	Formats []string      `json:"formats,omitempty"`
	Style   string        `json:"style,omitempty"`
	Layout  layout.Config `json:"layout"`
	Scale   float64       `json:"scale,omitempty"`
	// Title is written as the SVG <title> when set.
	Title   string `json:"title,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// FamilyHash is the content hash of the input document.
	FamilyHash string

	// Diagram holds the computed layout and scene. It is nil when every
	// artifact came from the cache.
	Diagram *Diagram

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	People      int
	Placed      int
	Generations int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	SceneHit  bool // Scene came from cache
	RenderHit bool // All artifacts came from cache
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if ContentType(format) == "" {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is registered.
func ValidateStyle(style string) error {
	_, err := styles.ByName(style)
	return err
}

// SetDefaults fills unset options. A zero Layout becomes the default
// geometry.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Layout == (layout.Config{}) {
		o.Layout = layout.DefaultConfig()
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and validates every option.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	if err := o.Layout.Validate(); err != nil {
		return err
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "scale must be positive, got %g", o.Scale)
	}
	o.validated = true
	return nil
}

// NeedsGraph reports whether any requested format is drawn from the family
// graph rather than the scene.
func (o *Options) NeedsGraph() bool {
	return slices.Contains(o.Formats, FormatDOT) || slices.Contains(o.Formats, FormatGraphviz)
}

// SceneKeyOpts returns cache key options for scene computation.
func (o *Options) SceneKeyOpts() cache.SceneKeyOpts {
	return cache.SceneKeyOpts{Geometry: o.Layout}
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format, Style: o.Style, Title: o.Title}
	if format == FormatPNG {
		opts.Scale = o.Scale
	}
	return opts
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
