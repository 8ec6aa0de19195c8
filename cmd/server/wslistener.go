package main

import (
	"context"
	"net"

	"github.com/coder/websocket"
)

// wsListener implements net.Listener.
// websocketHandler hands it upgraded connections, and the irpc server accepts
// them as binary streams.
type wsListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func newWSListener(ctx context.Context, addr string) *wsListener {
	ctx, cancel := context.WithCancel(ctx)
	return &wsListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

// offer passes c to a pending Accept. It reports false once the listener
// is closed.
func (l *wsListener) offer(c *websocket.Conn) bool {
	select {
	case l.ch <- c:
		return true
	case <-l.ctx.Done():
		return false
	}
}

// Accept returns the next offered connection. Connections live until the
// listener is closed.
func (l *wsListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *wsListener) Addr() net.Addr {
	return l.addr
}

func (l *wsListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
