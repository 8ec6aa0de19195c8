package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	"github.com/marben/irpc/irpcgen"

	mandel "github.com/jccutler/mathvis"
)

// dial connects to the render server. ws:// and wss:// addresses go through
// the websocket endpoint; anything else is a tcp host:port, optionally
// prefixed with tcp://.
func dial(ctx context.Context, addr string) (*irpc.Endpoint, error) {
	if strings.HasPrefix(addr, "ws://") || strings.HasPrefix(addr, "wss://") {
		c, _, err := websocket.Dial(ctx, addr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to server: %w", err)
		}
		return irpc.NewEndpoint(websocket.NetConn(context.Background(), c, websocket.MessageBinary)), nil
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", strings.TrimPrefix(addr, "tcp://"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return irpc.NewEndpoint(conn, irpc.WithLocalAddress(conn.LocalAddr()), irpc.WithRemoteAddress(conn.RemoteAddr())), nil
}

// fetchGrid renders r on the server behind ep and checks that the reply is a
// complete grid.
func fetchGrid(ctx context.Context, ep irpcgen.Endpoint, r mandel.Region, depth int, resolution float64) (*mandel.Grid, error) {
	client, err := mandel.NewRendererIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create Renderer client: %w", err)
	}

	g, err := client.Render(ctx, r, depth, resolution)
	if err != nil {
		return nil, fmt.Errorf("client.Render: %w", err)
	}
	if g == nil {
		return nil, errors.New("server: empty response")
	}
	if n := g.Rows * g.Cols; n <= 0 || len(g.Values) != n {
		return nil, fmt.Errorf("server: grid %dx%d carries %d values", g.Cols, g.Rows, len(g.Values))
	}
	return g, nil
}
