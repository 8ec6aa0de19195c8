package mandel

import "context"

//go:generate go run github.com/marben/irpc/cmd/irpc

// Renderer produces a fully populated escape grid for a region.
type Renderer interface {
	Render(ctx context.Context, r Region, depth int, resolution float64) (*Grid, error)
}

// RenderRequest is sent by websocket clients. When Preset names a landmark it
// replaces Region.
type RenderRequest struct {
	Region     Region  `json:"region"`
	Preset     string  `json:"preset,omitempty"`
	Depth      int     `json:"depth"`
	Resolution float64 `json:"resolution"`
}

// RenderResponse carries either a grid or an error message.
type RenderResponse struct {
	Grid  *Grid  `json:"grid,omitempty"`
	Error string `json:"error,omitempty"`
}
