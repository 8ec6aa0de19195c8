// mandelbrot renders a region of the Mandelbrot set and shows it in the
// terminal, or writes it to a PNG file with -out.
//
//	mandelbrot [flags] x_0,x_1 y_0,y_1 depth resolution
//	mandelbrot [flags] -region name depth resolution
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"
	"time"

	mandel "github.com/jccutler/mathvis"
	"github.com/jccutler/mathvis/internal/display"
	"github.com/jccutler/mathvis/render"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, mandel.ErrInvalidArguments) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(1)
		}
		log.Fatalf("run: %v", err)
	}
}

type options struct {
	workers int
	out     string
	bounds  string
	region  string
	verbose bool
}

func newFlagSet(opts *options, stdout io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.IntVar(&opts.workers, "workers", 0, "render goroutines (0 = all CPUs)")
	fs.StringVar(&opts.out, "out", "", "write a PNG to this path instead of opening the terminal view")
	fs.StringVar(&opts.bounds, "bounds", "1920x1080", "bounding box WxH for the PNG")
	fs.StringVar(&opts.region, "region", "", "landmark region: "+strings.Join(mandel.RegionNames(), ", "))
	fs.BoolVar(&opts.verbose, "v", false, "log every tile as it renders")
	fs.Usage = func() {
		fmt.Fprintln(stdout, mandel.Usage)
		fs.PrintDefaults()
	}
	return fs
}

type job struct {
	region     mandel.Region
	depth      int
	resolution float64
}

// parseJob resolves the render inputs from the positional arguments.
// Any failure wraps mandel.ErrInvalidArguments.
func parseJob(opts options, pos []string) (job, error) {
	var j job
	var rest []string
	if opts.region != "" {
		r, ok := mandel.LookupRegion(opts.region)
		if !ok {
			return job{}, fmt.Errorf("%w: unknown region %q", mandel.ErrInvalidArguments, opts.region)
		}
		if len(pos) < 2 {
			return job{}, fmt.Errorf("%w: want depth and resolution", mandel.ErrInvalidArguments)
		}
		j.region, rest = r, pos[:2]
	} else {
		if len(pos) < 4 {
			return job{}, fmt.Errorf("%w: want 4 arguments, got %d", mandel.ErrInvalidArguments, len(pos))
		}
		r, err := mandel.ParseRegion(pos[0], pos[1])
		if err != nil {
			return job{}, err
		}
		j.region, rest = r, pos[2:4]
	}
	d, res, err := mandel.ParseDepthResolution(rest[0], rest[1])
	if err != nil {
		return job{}, err
	}
	j.depth, j.resolution = d, res
	return j, nil
}

func run(args []string, stdout io.Writer) error {
	var opts options
	fs := newFlagSet(&opts, stdout)
	flagArgs, pos := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", mandel.ErrInvalidArguments, err)
	}
	pos = append(pos, fs.Args()...)

	j, err := parseJob(opts, pos)
	if err != nil {
		fmt.Fprintln(stdout, mandel.Usage)
		return err
	}

	var disp mandel.Display = display.Terminal{}
	if opts.out != "" {
		w, h, err := mandel.ParseSize(opts.bounds)
		if err != nil {
			fmt.Fprintln(stdout, mandel.Usage)
			return err
		}
		disp = display.PNG{Path: opts.out, BoundWidth: w, BoundHeight: h}
	}

	rz := render.Rasterizer{Workers: opts.workers}
	if opts.verbose {
		rz.OnTileRender = func(tile image.Rectangle) { log.Printf("rendering tile: %s", tile) }
	}

	start := time.Now()
	g, err := rz.Render(context.Background(), j.region, j.depth, j.resolution)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("rendered %dx%d grid of %s at depth %d in %s", g.Cols, g.Rows, j.region, j.depth, time.Since(start))

	if err := disp.Show(g); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if opts.out != "" {
		log.Printf("saved to %q", opts.out)
	}
	return nil
}
