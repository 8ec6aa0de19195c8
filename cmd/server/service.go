package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	mandel "github.com/jccutler/mathvis"
	"github.com/jccutler/mathvis/render"
)

// limitedRenderer rejects requests above the server's grid and depth limits
// before handing them to the wrapped renderer. Both the irpc service and the
// JSON endpoint render through it.
type limitedRenderer struct {
	renderer mandel.Renderer
	maxCells int // <= 0 means only render.MaxCells applies
	maxDepth int // <= 0 means unbounded
}

var _ mandel.Renderer = limitedRenderer{}

func (l limitedRenderer) Render(ctx context.Context, r mandel.Region, depth int, resolution float64) (*mandel.Grid, error) {
	cols, rows, err := render.GridSize(r, resolution)
	if err != nil {
		log.Printf("request rejected: %v", err)
		return nil, err
	}
	if l.maxCells > 0 && cols*rows > l.maxCells {
		err := fmt.Errorf("%w: %dx%d grid exceeds the %d cell limit", mandel.ErrInvalidResolution, cols, rows, l.maxCells)
		log.Printf("request rejected: %v", err)
		return nil, err
	}
	if l.maxDepth > 0 && depth > l.maxDepth {
		err := fmt.Errorf("%w: %d exceeds the depth limit of %d", mandel.ErrInvalidDepth, depth, l.maxDepth)
		log.Printf("request rejected: %v", err)
		return nil, err
	}

	start := time.Now()
	g, err := l.renderer.Render(ctx, r, depth, resolution)
	if err != nil {
		log.Printf("render of %s failed: %v", r, err)
		return nil, err
	}
	log.Printf("rendered %dx%d grid of %s at depth %d in %s", g.Cols, g.Rows, r, depth, time.Since(start))
	return g, nil
}

// renderService answers JSON render requests on a websocket. Presets are
// resolved here; everything else is up to the renderer.
type renderService struct {
	renderer mandel.Renderer
}

// serve answers render requests on c, one at a time, until reading or
// writing fails. Requests that do not decode or do not validate get an error
// response and the connection stays open.
//
// Reads happen on their own goroutine so that a peer going away cancels the
// render in flight.
func (s *renderService) serve(ctx context.Context, c *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requests := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		defer cancel()
		for {
			_, data, err := c.Read(ctx)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case requests <- data:
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
	}()

	for {
		var data []byte
		select {
		case data = <-requests:
		case err := <-readErr:
			return err
		}

		resp := s.handle(ctx, data)
		if ctx.Err() != nil {
			// the reader stopped while we were rendering
			return <-readErr
		}
		if err := wsjson.Write(ctx, c, resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
}

func (s *renderService) handle(ctx context.Context, data []byte) mandel.RenderResponse {
	var req mandel.RenderRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return mandel.RenderResponse{Error: fmt.Sprintf("decode request: %v", err)}
	}

	region := req.Region
	if req.Preset != "" {
		r, ok := mandel.LookupRegion(req.Preset)
		if !ok {
			err := fmt.Errorf("%w: unknown preset %q", mandel.ErrInvalidViewport, req.Preset)
			log.Printf("request rejected: %v", err)
			return mandel.RenderResponse{Error: err.Error()}
		}
		region = r
	}

	g, err := s.renderer.Render(ctx, region, req.Depth, req.Resolution)
	if err != nil {
		return mandel.RenderResponse{Error: err.Error()}
	}
	return mandel.RenderResponse{Grid: g}
}
