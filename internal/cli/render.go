package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/pkg/family"
	"github.com/matzehuels/familytree/pkg/layout"
	"github.com/matzehuels/familytree/pkg/pipeline"
)

// renderOpts holds the flags shared by render and browse.
type renderOpts struct {
	output  string
	formats []string
	style   string
	title   string
	scale   float64
	noCache bool
	refresh bool
	layout  layout.Config
}

func (o *renderOpts) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		Formats: o.formats,
		Style:   o.style,
		Layout:  o.layout,
		Scale:   o.scale,
		Title:   o.title,
		Refresh: o.refresh,
	}
}

// bindGeometryFlags registers the layout geometry flags on cmd.
func bindGeometryFlags(cmd *cobra.Command, cfg *layout.Config) {
	cmd.Flags().Float64Var(&cfg.BoxWidth, "box-width", cfg.BoxWidth, "person box width")
	cmd.Flags().Float64Var(&cfg.BoxHeight, "box-height", cfg.BoxHeight, "person box height")
	cmd.Flags().Float64Var(&cfg.HGap, "h-gap", cfg.HGap, "horizontal gap between boxes")
	cmd.Flags().Float64Var(&cfg.VGap, "v-gap", cfg.VGap, "vertical gap between generations")
	cmd.Flags().Float64Var(&cfg.Margin, "margin", cfg.Margin, "canvas margin")
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		style:  pipeline.DefaultStyle,
		scale:  pipeline.DefaultScale,
		layout: layout.DefaultConfig(),
	}
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a family file to diagrams",
		Long: `Render lays out a family document and writes one file per output format.

The input may be JSON, YAML or TOML; the format is taken from the file
extension. Use -o - to write a single format to standard output.`,
		Example: `  familytree render family.json
  familytree render family.yaml -f svg,pdf -o out/smiths
  familytree render family.json -f graphviz --style print`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateStyle(opts.style); err != nil {
				return err
			}
			if opts.output == "-" && len(opts.formats) != 1 {
				return fmt.Errorf("writing to stdout needs exactly one format, got %d", len(opts.formats))
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", opts.style, "visual style: classic (default), print")
	cmd.Flags().StringVar(&opts.title, "title", "", "diagram title")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results and render again")
	bindGeometryFlags(cmd, &opts.layout)

	return cmd
}

// runRender loads input, runs the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	fam, err := family.ReadFile(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded family: %d members, %d relationships", len(fam.Members), len(fam.Relationships))

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	popts := opts.pipelineOptions()
	popts.Logger = logger
	result, err := runner.Execute(ctx, fam, popts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(result.Artifacts)))

	if opts.output == "-" {
		_, err := os.Stdout.Write(result.Artifacts[opts.formats[0]])
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, opts.formats, input, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", filepath.Base(input))
	printStats(result.Stats, result.CacheInfo.RenderHit || result.CacheInfo.SceneHit)
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes artifacts in the order of formats and returns the
// paths written.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(input, output, format, len(formats) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", format, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives the file for one format. Without -o the input name is
// reused with the format's extension; with several formats -o is a base path.
func outputPath(input, output, format string, multi bool) string {
	ext := pipeline.Extension(format)
	switch {
	case output == "":
		return basePath(input) + "." + ext
	case multi:
		return basePath(output) + "." + ext
	default:
		return output
	}
}

// basePath strips a trailing extension, including the compound ones from
// [pipeline.Extension].
func basePath(path string) string {
	longest := ""
	for _, format := range pipeline.FormatNames() {
		ext := "." + pipeline.Extension(format)
		if strings.HasSuffix(path, ext) && len(ext) > len(longest) {
			longest = ext
		}
	}
	if longest == "" {
		longest = filepath.Ext(path)
	}
	return strings.TrimSuffix(path, longest)
}
