package render

import (
	"context"
	"image"
	"runtime"
	"sync"

	mandel "github.com/jccutler/mathvis"
)

const (
	DefaultTileWidth  = 64
	DefaultTileHeight = 64
)

// Rasterizer renders grids on a pool of worker goroutines. The grid's index
// space (x = column, y = row) is split into tiles; each tile is rendered by
// exactly one worker, so every cell has a single writer.
//
// The zero value is ready to use.
type Rasterizer struct {
	Workers    int // <= 0 means runtime.GOMAXPROCS(0)
	TileWidth  int // <= 0 means DefaultTileWidth
	TileHeight int // <= 0 means DefaultTileHeight

	// OnTileRender, if set, is called from the worker goroutine as a tile starts.
	OnTileRender func(tile image.Rectangle)
}

var _ mandel.Renderer = Rasterizer{}

// Render produces the same grid as the package-level Render. If ctx is
// cancelled before every tile is finished it returns ctx's error and no grid.
func (rz Rasterizer) Render(ctx context.Context, r mandel.Region, depth int, resolution float64) (*mandel.Grid, error) {
	g, err := newGrid(r, depth, resolution)
	if err != nil {
		return nil, err
	}

	tw, th := rz.TileWidth, rz.TileHeight
	if tw <= 0 {
		tw = DefaultTileWidth
	}
	if th <= 0 {
		th = DefaultTileHeight
	}
	s := newTileScheduler(image.Rect(0, 0, g.Cols, g.Rows), tw, th)

	workers := rz.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n := s.total(); workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rz.work(ctx, s, g)
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil && !s.done() {
		return nil, err
	}
	return g, nil
}

// work renders tiles until none are left or ctx is cancelled.
func (rz Rasterizer) work(ctx context.Context, s *tileScheduler, g *mandel.Grid) {
	for {
		if ctx.Err() != nil {
			return
		}
		tile, found := s.popTile()
		if !found {
			return
		}
		if rz.OnTileRender != nil {
			rz.OnTileRender(tile)
		}
		for row := tile.Min.Y; row < tile.Max.Y; row++ {
			if ctx.Err() != nil {
				return
			}
			fillRow(g, row, tile.Min.X, tile.Max.X)
		}
		s.tileFinished(tile)
	}
}

type tileScheduler struct {
	m         sync.Mutex
	unstarted []image.Rectangle
	tiles     int
	finished  int
}

func newTileScheduler(r image.Rectangle, tileW, tileH int) *tileScheduler {
	tiles := splitRectNoClip(r, tileW, tileH)
	return &tileScheduler{unstarted: tiles, tiles: len(tiles)}
}

func (s *tileScheduler) total() int { return s.tiles }

func (s *tileScheduler) popTile() (tile image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.unstarted) == 0 {
		return image.Rectangle{}, false
	}
	tile = s.unstarted[0]
	s.unstarted = s.unstarted[1:]
	return tile, true
}

func (s *tileScheduler) tileFinished(image.Rectangle) {
	s.m.Lock()
	s.finished++
	s.m.Unlock()
}

func (s *tileScheduler) done() bool {
	s.m.Lock()
	defer s.m.Unlock()
	return s.finished == s.tiles
}

// splitRectNoClip splits r into tiles of size tileW × tileH.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
