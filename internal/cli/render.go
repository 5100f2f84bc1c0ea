package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kdsketch/kdsketch/pkg/cache"
	"github.com/kdsketch/kdsketch/pkg/errors"
	"github.com/kdsketch/kdsketch/pkg/kdtree"
	"github.com/kdsketch/kdsketch/pkg/render/shape"
	"github.com/kdsketch/kdsketch/pkg/render/tikz"
	"github.com/kdsketch/kdsketch/pkg/render/topo"
	"github.com/kdsketch/kdsketch/pkg/treeio"
)

const (
	defaultPNGScale = 2.0 // raster scale factor for high-DPI PNG output

	// artifactTTL bounds how long rasterized artifacts stay on disk. The
	// entries themselves never go stale; rendering is deterministic.
	artifactTTL = 30 * 24 * time.Hour
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple formats)
	formats  []string // output formats: "tikz", "shape", "dot", "svg", "png", "pdf"
	style    string   // optional TOML style file for TikZ output
	noCache  bool     // bypass the artifact cache for rasterized formats
	pngScale float64  // raster scale factor for PNG output
}

// renderCommand creates the render command for generating output documents.
// It supports textual formats (tikz, shape, dot) and rasterized formats
// (svg, png, pdf) derived from the node-link topology.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{pngScale: defaultPNGScale}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a k-d tree to one or more output formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if err := validatePNGScale(opts.pngScale); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): tikz (default), shape, dot, svg, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style file for TikZ output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", opts.pngScale, "raster scale factor for PNG output")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["tikz"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"tikz"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{
	"tikz": true, "shape": true, "dot": true,
	"svg": true, "png": true, "pdf": true,
}

// formatExt maps each format to its output file extension.
var formatExt = map[string]string{
	"tikz":  "tex",
	"shape": "txt",
	"dot":   "dot",
	"svg":   "svg",
	"png":   "png",
	"pdf":   "pdf",
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'tikz', 'shape', 'dot', 'svg', 'png', or 'pdf')", f)
		}
	}
	return nil
}

// validatePNGScale checks that the raster scale factor is positive.
func validatePNGScale(scale float64) error {
	if scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "png-scale must be positive, got %v", scale)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output ends in a known format extension, that extension is stripped.
// This is used when generating multiple files (e.g., tree.tex, tree.svg).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	for _, e := range formatExt {
		if ext == "."+e {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// runRender loads the tree from input and renders it to the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	c.Logger.Infof("Rendering %s", input)

	t, err := treeio.ReadTreeFile(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded tree: %d dimensions, %d points", t.Dims, t.Count())

	style := tikz.DefaultStyle()
	if opts.style != "" {
		style, err = tikz.LoadStyle(opts.style)
		if err != nil {
			return err
		}
		c.Logger.Debugf("Loaded style from %s", opts.style)
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(opts.formats) == 1 {
		path := opts.output
		if path == "" {
			path = basePath("", input) + "." + formatExt[opts.formats[0]]
		}
		return c.renderToFile(ctx, t, store, opts.formats[0], path, style, opts)
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := base + "." + formatExt[format]
		if err := c.renderToFile(ctx, t, store, format, path, style, opts); err != nil {
			return fmt.Errorf("%s: %w", format, err)
		}
	}
	return nil
}

// renderToFile renders a single format and writes it to path.
func (c *CLI) renderToFile(ctx context.Context, t *kdtree.Tree[float64], store cache.Cache, format, path string, style tikz.Style, opts *renderOpts) error {
	data, err := c.renderFormat(ctx, t, store, format, style, opts)
	if err != nil {
		return err
	}
	c.Logger.Debugf("Generated %s: %d bytes", format, len(data))

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	printFile(path)
	return nil
}

// renderFormat dispatches to the appropriate renderer based on format.
func (c *CLI) renderFormat(ctx context.Context, t *kdtree.Tree[float64], store cache.Cache, format string, style tikz.Style, opts *renderOpts) ([]byte, error) {
	switch format {
	case "tikz":
		return tikz.Render(t, tikz.WithStyle(style))
	case "shape":
		return []byte(shape.Render(t) + "\n"), nil
	case "dot":
		return []byte(topo.ToDOT(t)), nil
	case "svg", "png", "pdf":
		return c.rasterize(ctx, t, store, format, opts)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// rasterize renders the node-link topology to svg, png, or pdf, caching the
// result keyed by the tree digest, format, and any raster options.
func (c *CLI) rasterize(ctx context.Context, t *kdtree.Tree[float64], store cache.Cache, format string, opts *renderOpts) ([]byte, error) {
	encoded, err := treeio.MarshalTree(t)
	if err != nil {
		return nil, err
	}

	var keyOpts any
	if format == "png" {
		keyOpts = opts.pngScale
	}
	key := cache.ArtifactKey(cache.Hash(encoded), format, keyOpts)

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		c.Logger.Debugf("Cache hit for %s", format)
		return data, nil
	}

	sp := newSpinnerWithContext(ctx, "Rendering "+format)
	sp.Start()

	dot := topo.ToDOT(t)
	var data []byte
	switch format {
	case "svg":
		data, err = topo.RenderSVG(dot)
	case "png":
		data, err = topo.RenderPNG(dot, opts.pngScale)
	case "pdf":
		data, err = topo.RenderPDF(dot)
	}
	if err != nil {
		sp.StopWithError("Rendering " + format + " failed")
		return nil, err
	}
	sp.StopWithSuccess("Rendered " + format)

	if err := store.Set(ctx, key, data, artifactTTL); err != nil {
		c.Logger.Debugf("Cache write failed: %v", err)
	}
	return data, nil
}
