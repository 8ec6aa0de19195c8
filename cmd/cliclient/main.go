// cliclient is a CLI client for the Mandelbrot render service.
// It sends one region to the server, waits for the escape grid, and saves it as a PNG file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mandel "github.com/jccutler/mathvis"
	"github.com/jccutler/mathvis/internal/display"
)

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run resolves the region from flags, fetches the grid, and writes the PNG.
func run() error {
	addr := flag.String("addr", "ws://localhost:8080/ws", "render server: ws:// url or tcp host:port")
	preset := flag.String("region", "seahorse-valley", "landmark region; ignored when -re and -im are set")
	re := flag.String("re", "", "real-axis range x_0,x_1")
	im := flag.String("im", "", "imaginary-axis range y_0,y_1")
	depth := flag.Int("depth", 500, "iteration depth bound")
	res := flag.Float64("res", 10000, "samples per unit length")
	out := flag.String("out", "mandel.png", "output PNG path")
	bounds := flag.String("bounds", "1920x1080", "bounding box WxH for the PNG")
	timeout := flag.Duration("timeout", 2*time.Minute, "give up after this long")
	flag.Parse()

	// Step 1: Work out which region to ask for
	region, err := resolveRegion(*preset, *re, *im)
	if err != nil {
		return err
	}
	w, h, err := mandel.ParseSize(*bounds)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Step 2: Connect to the Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", *addr)
	ep, err := dial(ctx, *addr)
	if err != nil {
		return err
	}
	defer ep.Close()

	// Step 3: Ask the server to render it
	log.Printf("Requesting %s at depth %d...", region, *depth)
	g, err := fetchGrid(ctx, ep, region, *depth, *res)
	if err != nil {
		return fmt.Errorf("fetchGrid: %w", err)
	}
	log.Printf("Received %dx%d grid of %s", g.Cols, g.Rows, g.Region)

	// Step 4: Save the rendered grid to a PNG file
	log.Printf("Saving rendered image to %q...", *out)
	if err := (display.PNG{Path: *out, BoundWidth: w, BoundHeight: h}).Show(g); err != nil {
		return err
	}

	log.Printf("Fully rendered image saved to %q", *out)
	return nil
}

// resolveRegion prefers explicit ranges over the named region.
func resolveRegion(preset, re, im string) (mandel.Region, error) {
	if re == "" && im == "" {
		r, ok := mandel.LookupRegion(preset)
		if !ok {
			return mandel.Region{}, fmt.Errorf("%w: unknown region %q", mandel.ErrInvalidArguments, preset)
		}
		return r, nil
	}
	return mandel.ParseRegion(re, im)
}
