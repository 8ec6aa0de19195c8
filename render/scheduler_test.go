package render

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"testing"

	mandel "github.com/jccutler/mathvis"
)

func TestRasterizerMatchesRender(t *testing.T) {
	regions := []mandel.Region{mandel.Full, mandel.SeahorseValley, mandel.ElephantValley}
	rasterizers := []Rasterizer{
		{},
		{Workers: 1},
		{Workers: 3, TileWidth: 7, TileHeight: 5},
		{Workers: 16, TileWidth: 1, TileHeight: 1},
		{Workers: 2, TileWidth: 1000, TileHeight: 1000},
	}
	for _, r := range regions {
		res := 60 / r.Width()
		want, err := Render(r, 80, res)
		if err != nil {
			t.Fatalf("Render(%s): %v", r, err)
		}
		for _, rz := range rasterizers {
			got, err := rz.Render(context.Background(), r, 80, res)
			if err != nil {
				t.Fatalf("%+v.Render(%s): %v", rz, r, err)
			}
			if got.Rows != want.Rows || got.Cols != want.Cols {
				t.Fatalf("%+v.Render(%s): grid %dx%d, want %dx%d", rz, r, got.Cols, got.Rows, want.Cols, want.Rows)
			}
			for i := range want.Values {
				if got.Values[i] != want.Values[i] {
					t.Errorf("%+v.Render(%s): cell %d = %g, want %g", rz, r, i, got.Values[i], want.Values[i])
					break
				}
			}
		}
	}
}

func TestRasterizerVisitsEveryTileOnce(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = map[image.Rectangle]int{}
	)
	rz := Rasterizer{
		Workers:    4,
		TileWidth:  7,
		TileHeight: 5,
		OnTileRender: func(tile image.Rectangle) {
			mu.Lock()
			seen[tile]++
			mu.Unlock()
		},
	}
	g, err := rz.Render(context.Background(), mandel.Full, 32, 20)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if g.Cols != 60 || g.Rows != 60 {
		t.Fatalf("grid = %dx%d, want 60x60", g.Cols, g.Rows)
	}
	// ceil(60/7) * ceil(60/5)
	if len(seen) != 9*12 {
		t.Errorf("tiles rendered = %d, want %d", len(seen), 9*12)
	}
	area := 0
	for tile, n := range seen {
		if n != 1 {
			t.Errorf("tile %s rendered %d times", tile, n)
		}
		area += tile.Dx() * tile.Dy()
	}
	if area != 60*60 {
		t.Errorf("tile area = %d, want %d", area, 60*60)
	}
}

func TestRasterizerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, err := Rasterizer{Workers: 2}.Render(ctx, mandel.Full, 100, 50)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got err %v, want %v", err, context.Canceled)
	}
	if g != nil {
		t.Errorf("got a grid from a cancelled render")
	}
}

func TestRasterizerCancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started atomic.Int32
	rz := Rasterizer{
		Workers:    1,
		TileWidth:  8,
		TileHeight: 8,
		OnTileRender: func(image.Rectangle) {
			if started.Add(1) == 3 {
				cancel()
			}
		},
	}
	g, err := rz.Render(ctx, mandel.Full, 50, 40)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got err %v, want %v", err, context.Canceled)
	}
	if g != nil {
		t.Errorf("got a grid from a cancelled render")
	}
	if n := started.Load(); n != 3 {
		t.Errorf("tiles started = %d, want 3", n)
	}
}

func TestRasterizerValidatesFirst(t *testing.T) {
	called := false
	rz := Rasterizer{OnTileRender: func(image.Rectangle) { called = true }}
	if _, err := rz.Render(context.Background(), mandel.Full, 10, 0); !errors.Is(err, mandel.ErrInvalidResolution) {
		t.Errorf("got err %v, want %v", err, mandel.ErrInvalidResolution)
	}
	if called {
		t.Errorf("tile rendered before validation failed")
	}
}

func TestSplitRectNoClip(t *testing.T) {
	tiles := splitRectNoClip(image.Rect(0, 0, 10, 5), 4, 4)
	want := []image.Rectangle{
		image.Rect(0, 0, 4, 4),
		image.Rect(4, 0, 8, 4),
		image.Rect(8, 0, 10, 4),
		image.Rect(0, 4, 4, 5),
		image.Rect(4, 4, 8, 5),
		image.Rect(8, 4, 10, 5),
	}
	if len(tiles) != len(want) {
		t.Fatalf("got %d tiles, want %d: %v", len(tiles), len(want), tiles)
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d: got %s, want %s", i, tiles[i], want[i])
		}
	}
}

func BenchmarkRasterizer(b *testing.B) {
	rz := Rasterizer{}
	for i := 0; i < b.N; i++ {
		if _, err := rz.Render(context.Background(), mandel.SeahorseValley, 500, 2000); err != nil {
			b.Fatal(err)
		}
	}
}
