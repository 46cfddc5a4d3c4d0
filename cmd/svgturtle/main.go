// Command svgturtle draws the paths, polygons and lines of an SVG
// file with a turtle-like pen, and writes the result as a PNG image,
// a PDF page, or a textual list of pen commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgturtle"
	"github.com/benoitkugler/svgturtle/svgdraw"
	"github.com/benoitkugler/svgturtle/svgicon"
)

// Version can be overridden at build time using:
//
//	go build -ldflags "-X main.Version=x.y.z"
var Version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// output formats
const (
	formatPNG  = "png"
	formatPDF  = "pdf"
	formatText = "text"
)

// createOutput opens the output file; tests replace it.
var createOutput = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// resolveFormat infers the format from the output file name when
// it is not given explicitly.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(output)) {
		case ".png":
			return formatPNG, nil
		case ".pdf":
			return formatPDF, nil
		default:
			return formatText, nil
		}
	}
	switch format {
	case formatPNG, formatPDF, formatText:
		return format, nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("svgturtle", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: svgturtle [flags] file.svg")
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "Path to a configuration file (.toml, .yaml or .yml)")
	output := fs.String("o", "", "Output file (default: standard output)")
	format := fs.String("format", "", "Output format: png, pdf or text (default: from the output extension)")
	scale := fs.Float64("scale", 1, "Scale applied to the document coordinates")
	offsetX := fs.Float64("offset-x", 0, "Horizontal offset, in surface units")
	offsetY := fs.Float64("offset-y", 0, "Vertical offset, in surface units")
	fit := fs.Bool("fit", false, "Scale and center the document on the canvas")
	width := fs.Int("width", 800, "Canvas width")
	height := fs.Int("height", 800, "Canvas height")
	lineWidth := fs.Float64("line-width", 1, "Stroke width")
	noFill := fs.Bool("no-fill", false, "Only draw the outline of polygons")
	group := fs.Bool("group", false, "Draw all paths, then all polygons, then all lines")
	strict := fs.Bool("strict", false, "Abort on malformed elements")
	verbose := fs.Bool("v", false, "Log each drawn element")
	version := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	if *version {
		fmt.Fprintf(stdout, "svgturtle version %s\n", Version)
		return 0
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	input := fs.Arg(0)

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	svgturtle.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer svgturtle.SetLogger(nil)

	cfg := svgturtle.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = svgturtle.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
			return 1
		}
	}

	// flags given on the command line override the configuration file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Draw.Scale = *scale
		case "offset-x":
			cfg.Draw.OffsetX = *offsetX
		case "offset-y":
			cfg.Draw.OffsetY = *offsetY
		case "fit":
			cfg.Canvas.Fit = *fit
		case "width":
			cfg.Canvas.Width = *width
		case "height":
			cfg.Canvas.Height = *height
		case "line-width":
			cfg.Canvas.LineWidth = *lineWidth
		case "no-fill":
			cfg.Draw.FillPolygons = !*noFill
		case "group":
			cfg.Extract.GroupByKind = *group
		case "strict":
			if *strict {
				cfg.Extract.ErrorMode = svgicon.StrictErrorMode.String()
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	outFormat, err := resolveFormat(*format, *output)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}

	opts := cfg.ExtractOptions()
	shapes, err := svgicon.ReadShapes(input, opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error parsing SVG file: %v\n", err)
		if opts.ErrorMode == svgicon.StrictErrorMode {
			return 1
		}
	}
	if len(shapes) == 0 {
		fmt.Fprintln(stderr, "No shapes found in the SVG file.")
	} else {
		fmt.Fprintf(stderr, "Found %d shapes in the SVG.\n", len(shapes))
	}

	var (
		out  io.Writer = stdout
		file io.WriteCloser
	)
	if *output != "" {
		file, err = createOutput(*output)
		if err != nil {
			fmt.Fprintf(stderr, "Error creating output: %v\n", err)
			return 1
		}
		out = file
	}

	var sum svgdraw.Summary
	switch outFormat {
	case formatPNG:
		pen := cfg.Canvas.RasterPen()
		sum = svgturtle.Draw(shapes, pen, cfg)
		err = pen.WritePNG(out)
	case formatPDF:
		pen := cfg.Canvas.PDFPen()
		sum = svgturtle.Draw(shapes, pen, cfg)
		err = pen.Write(out)
	default:
		var rec svgdraw.Recorder
		sum = svgturtle.Draw(shapes, &rec, cfg)
		_, err = io.WriteString(out, rec.Commands.String())
	}
	if file != nil {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	fmt.Fprintf(stderr, "Drew %d shapes (%d skipped).\n", sum.Processed, sum.Skipped)
	return 0
}
