package main

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	"gonum.org/v1/plot/vg"

	mandel "github.com/marben/mandelplot"
	"github.com/marben/mandelplot/render"
)

var testFigure = render.Figure{Width: 3 * vg.Inch, Height: 3 * vg.Inch, DPI: 30}

func newTestServer(t *testing.T) (*plotServer, *httptest.Server) {
	t.Helper()
	ps, err := newPlotServer(testFigure, 8, 2)
	if err != nil {
		t.Fatalf("newPlotServer: %v", err)
	}
	l := newWebsocketListener(context.Background(), "test/ws")
	irpcServer := newIrpcServer(ps)
	go irpcServer.Serve(l)

	ts := httptest.NewServer(ps.handler(l))
	t.Cleanup(func() {
		ts.Close()
		irpcServer.Close()
	})
	return ps, ts
}

// dialTileProvider connects an irpc client to the websocket endpoint of ts.
func dialTileProvider(ctx context.Context, t *testing.T, ts *httptest.Server) *mandel.TileProviderIrpcClient {
	t.Helper()
	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("websocket.Dial: %v", err)
	}
	ep := irpc.NewEndpoint(websocket.NetConn(ctx, c, websocket.MessageBinary))
	t.Cleanup(func() { ep.Close() })

	client, err := mandel.NewTileProviderIrpcClient(ep)
	if err != nil {
		t.Fatalf("NewTileProviderIrpcClient: %v", err)
	}
	return client
}

func TestSplitRectNoClip(t *testing.T) {
	tiles := splitRectNoClip(image.Rect(0, 0, 10, 5), 4, 4)
	want := []image.Rectangle{
		image.Rect(0, 0, 4, 4), image.Rect(4, 0, 8, 4), image.Rect(8, 0, 10, 4),
		image.Rect(0, 4, 4, 5), image.Rect(4, 4, 8, 5), image.Rect(8, 4, 10, 5),
	}
	if !slices.Equal(tiles, want) {
		t.Fatalf("want %v got %v", want, tiles)
	}
}

func TestTileRendererMatchesCompute(t *testing.T) {
	ctx := context.Background()
	cfg := mandel.DefaultConfig()
	cfg.Resolution = 37
	want, err := mandel.Compute(cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	tr, err := newTileRenderer(cfg)
	if err != nil {
		t.Fatalf("newTileRenderer: %v", err)
	}
	tiles := splitRectNoClip(image.Rect(0, 0, 37, 37), 10, 10)
	if len(tiles) != 16 {
		t.Fatalf("want 16 tiles got %d", len(tiles))
	}
	// render back to front to show the order does not matter
	for i := len(tiles) - 1; i >= 0; i-- {
		vals, complete, err := tr.render(ctx, tiles[i])
		if err != nil {
			t.Fatalf("render %v: %v", tiles[i], err)
		}
		if !slices.Equal(vals, want.Tile(tiles[i])) {
			t.Fatalf("tile %v differs from Compute", tiles[i])
		}
		if complete != (i == 0) {
			t.Fatalf("tile %d: complete=%v", i, complete)
		}
	}
	if !slices.Equal(tr.raster.Values, want.Values) {
		t.Fatalf("tiled raster differs from Compute")
	}
	if tr.finished() != 1 {
		t.Fatalf("finished: want 1 got %v", tr.finished())
	}
	if _, complete, err := tr.render(ctx, tiles[3]); err != nil || !complete {
		t.Fatalf("repeated tile: complete=%v err=%v", complete, err)
	}
}

func TestTileRendererRejects(t *testing.T) {
	cfg := mandel.DefaultConfig()
	cfg.Resolution = 8
	tr, err := newTileRenderer(cfg)
	if err != nil {
		t.Fatalf("newTileRenderer: %v", err)
	}
	for _, tile := range []image.Rectangle{image.Rect(4, 4, 9, 8), image.Rect(2, 2, 2, 5)} {
		if _, _, err := tr.render(context.Background(), tile); err == nil {
			t.Fatalf("tile %v: expected error", tile)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := tr.render(ctx, image.Rect(0, 0, 8, 8)); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled got %v", err)
	}
	if tr.finished() != 0 {
		t.Fatalf("failed tiles counted as finished: %v", tr.finished())
	}
}

func TestRequestConfig(t *testing.T) {
	cfg, err := plotRequest{}.config()
	if err != nil || cfg != mandel.DefaultConfig() {
		t.Fatalf("empty request: got %+v, %v", cfg, err)
	}
	cfg, err = plotRequest{Centre: "-0.5,0", Size: "4x4", EscapeLimit: 50}.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if want := [4]float64{-2.5, 1.5, -2, 2}; cfg.Region().Extent() != want || cfg.EscapeLimit != 50 {
		t.Fatalf("got %v limit %d", cfg.Region().Extent(), cfg.EscapeLimit)
	}
	if _, err := (plotRequest{EscapeLimit: -1}).config(); !errors.Is(err, mandel.ErrInvalidLimit) {
		t.Fatalf("want ErrInvalidLimit got %v", err)
	}
	if _, err := (plotRequest{Resolution: mandel.MaxResolution + 1}).config(); !errors.Is(err, mandel.ErrTooLarge) {
		t.Fatalf("want ErrTooLarge got %v", err)
	}
}

func TestHandlePNG(t *testing.T) {
	ps, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/mandelbrot.png?size=4x4&escape-limit=30&resolution=50")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200 got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type: got %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 90 || b.Dy() != 90 {
		t.Fatalf("bounds: want 90x90 got %v", b)
	}

	cfg, _ := plotRequest{Size: "4x4", EscapeLimit: 30, Resolution: 50}.config()
	if !ps.cache.Contains(cfg) {
		t.Fatalf("raster not cached for %+v", cfg)
	}
}

func TestHandlePNGBadRequest(t *testing.T) {
	_, ts := newTestServer(t)
	for _, q := range []string{
		"size=0x4", "centre=1", "escape-limit=0", "escape-limit=abc",
		"resolution=1", "landmark=nowhere",
		"resolution=3000000", "resolution=4294967296",
		"escape-limit=4611686018427387904",
	} {
		resp, err := http.Get(ts.URL + "/mandelbrot.png?" + q)
		if err != nil {
			t.Fatalf("GET %s: %v", q, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: want 400 got %d", q, resp.StatusCode)
		}
	}
}

func TestRasterCancelled(t *testing.T) {
	ps, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := mandel.DefaultConfig()
	if _, err := ps.raster(ctx, cfg); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled got %v", err)
	}
	if ps.cache.Contains(cfg) {
		t.Fatalf("cancelled raster was cached")
	}
}

func TestHandleLandmarks(t *testing.T) {
	_, ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/landmarks")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	var got map[string][4]float64
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["seahorse-valley"] != mandel.SeahorseValley.Extent() {
		t.Fatalf("seahorse-valley: got %v", got["seahorse-valley"])
	}
}

func TestTileProviderOverWebsocket(t *testing.T) {
	ps, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, _ := plotRequest{Centre: "-0.5,0", Size: "3x3", EscapeLimit: 40, Resolution: 40}.config()
	want, err := mandel.Compute(cfg)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	client := dialTileProvider(ctx, t, ts)
	tiles, err := client.Tiles(cfg, 16)
	if err != nil {
		t.Fatalf("Tiles: %v", err)
	}
	if len(tiles) != 9 {
		t.Fatalf("want 9 tiles got %d", len(tiles))
	}

	// the first pass assembles the raster on the server, the second is cut
	// from the cache
	for pass := range 2 {
		got, err := mandel.FetchRaster(ctx, client, cfg, 16)
		if err != nil {
			t.Fatalf("pass %d: FetchRaster: %v", pass, err)
		}
		if !slices.Equal(got.Values, want.Values) {
			t.Fatalf("pass %d: fetched raster differs from Compute", pass)
		}
		if !ps.cache.Contains(cfg) || ps.partial.Contains(cfg) {
			t.Fatalf("pass %d: raster not moved to cache", pass)
		}
	}
}

func TestTileProviderRejects(t *testing.T) {
	_, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client := dialTileProvider(ctx, t, ts)

	huge := mandel.DefaultConfig()
	huge.Resolution = mandel.MaxResolution + 1
	if _, err := client.Tiles(huge, 64); err == nil || !strings.Contains(err.Error(), mandel.ErrTooLarge.Error()) {
		t.Fatalf("huge resolution: got %v", err)
	}
	if _, err := client.Tile(ctx, huge, image.Rect(0, 0, 1, 1)); err == nil {
		t.Fatalf("huge resolution tile: expected error")
	}

	cfg := mandel.DefaultConfig()
	for _, size := range []int{0, -4, 1} {
		if _, err := client.Tiles(cfg, size); err == nil {
			t.Fatalf("tile size %d: expected error", size)
		}
	}
	if _, err := client.Tile(ctx, cfg, image.Rect(0, 0, cfg.Resolution+1, 1)); err == nil {
		t.Fatalf("tile outside raster: expected error")
	}
}

func TestWebsocketListenerClose(t *testing.T) {
	l := newWebsocketListener(context.Background(), "test/ws")
	if got := l.Addr().Network(); got != "ws" {
		t.Fatalf("network: got %q", got)
	}
	l.Close()
	if _, err := l.Accept(); !errors.Is(err, net.ErrClosed) {
		t.Fatalf("want net.ErrClosed got %v", err)
	}
}
