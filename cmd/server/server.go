package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/jccutler/mathvis"
	"github.com/jccutler/mathvis/render"
)

// main is the entry point for the Mandelbrot render service.
// Clients send a region and get the escape grid back; every request is
// rendered on this machine's worker pool.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	port := flag.Int("port", 8080, "http port (websocket endpoints and /regions)")
	tcpPort := flag.Int("tcp-port", 8081, "irpc tcp port")
	workers := flag.Int("workers", 0, "render goroutines per request (0 = all CPUs)")
	maxCells := flag.Int("max-cells", 4_000_000, "largest grid a client may request")
	maxDepth := flag.Int("max-depth", 100_000, "largest depth bound a client may request (0 = unbounded)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := limitedRenderer{
		renderer: render.Rasterizer{Workers: *workers},
		maxCells: *maxCells,
		maxDepth: *maxDepth,
	}

	// irpc server provides mandel.Renderer over tcp and websocket
	irpcServer := newIrpcServer(renderer)

	// TCP
	log.Printf("tcp listening on port: %d", *tcpPort)
	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", *tcpPort))
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener := newWSListener(context.Background(), fmt.Sprintf(":%d/ws", *port))
	httpServer := webServer(*port, &renderService{renderer: renderer}, websocketListener)

	errCh := make(chan error, 3)
	go func() {
		errCh <- fmt.Errorf("httpServer: %w", httpServer.ListenAndServe())
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		errCh <- fmt.Errorf("server.Serve tcp: %w", irpcServer.Serve(tcpListener))
	}()
	go func() {
		errCh <- fmt.Errorf("server.Serve ws: %w", irpcServer.Serve(websocketListener))
	}()

	log.Printf("mb server waiting for tcp and websocket connections")
	select {
	case err := <-errCh:
		irpcServer.Close()
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}
	return nil
}

// newIrpcServer serves r as mandel.Renderer on every connection it accepts.
// A dropped connection cancels the renders it requested.
func newIrpcServer(r mandel.Renderer) *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(mandel.NewRendererIrpcService(r)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log.Printf("got connection from: %s", ep.RemoteAddr())
			<-ep.Context().Done()
			log.Printf("connection from %s closed: %v", ep.RemoteAddr(), context.Cause(ep.Context()))
		}),
	)
}
