// mandelserve serves Mandelbrot escape-time plots over HTTP and computes
// escape-time tiles for irpc clients connected over a websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandelplot"
	"github.com/marben/mandelplot/render"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

// newIrpcServer serves ps as a mandel.TileProvider to every connected client.
func newIrpcServer(ps *plotServer) *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(mandel.NewTileProviderIrpcService(ps)),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log.Printf("got connection from: %s", ep.RemoteAddr())
		}),
	)
}

func run() error {
	addr := flag.String("addr", ":8080", "listen address")
	cacheSize := flag.Int("cache-size", 64, "number of computed rasters kept in memory")
	partialSize := flag.Int("partial-size", 8, "number of rasters assembled from tiles at once")
	flag.Parse()

	ps, err := newPlotServer(render.DefaultFigure, *cacheSize, *partialSize)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	wsListener := newWebsocketListener(context.Background(), *addr+"/ws")
	irpcServer := newIrpcServer(ps)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           ps.handler(wsListener),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Printf("listening on http://localhost%s", *addr)
		errCh <- fmt.Errorf("httpServer: %w", srv.ListenAndServe())
	}()
	go func() {
		errCh <- fmt.Errorf("irpcServer.Serve: %w", irpcServer.Serve(wsListener))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	if err := irpcServer.Close(); err != nil {
		log.Printf("irpcServer.Close: %v", err)
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}
	return nil
}
