package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"net/http"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	mandel "github.com/marben/mandelplot"
)

// plotRequest carries the same settings as the command line flags. Empty
// fields fall back to the defaults.
type plotRequest struct {
	Centre      string
	Size        string
	EscapeLimit int
	Landmark    string
	Resolution  int
}

func (pr plotRequest) config() (mandel.Config, error) {
	cfg := mandel.DefaultConfig()
	if pr.Landmark != "" {
		r, err := mandel.Landmark(pr.Landmark)
		if err != nil {
			return mandel.Config{}, err
		}
		cfg = cfg.WithLandmark(r)
	}
	if pr.Centre != "" {
		x, y, err := mandel.ParseCentre(pr.Centre)
		if err != nil {
			return mandel.Config{}, fmt.Errorf("centre: %w", err)
		}
		cfg.CentreX, cfg.CentreY = x, y
	}
	if pr.Size != "" {
		w, h, err := mandel.ParseSize(pr.Size)
		if err != nil {
			return mandel.Config{}, fmt.Errorf("size: %w", err)
		}
		cfg.Width, cfg.Height = w, h
	}
	if pr.EscapeLimit != 0 {
		cfg.EscapeLimit = pr.EscapeLimit
	}
	if pr.Resolution != 0 {
		cfg.Resolution = pr.Resolution
	}
	if err := cfg.CheckLimits(); err != nil {
		return mandel.Config{}, err
	}
	return cfg, nil
}

func requestFromQuery(r *http.Request) (plotRequest, error) {
	q := r.URL.Query()
	pr := plotRequest{
		Centre:   q.Get("centre"),
		Size:     q.Get("size"),
		Landmark: q.Get("landmark"),
	}
	for _, f := range []struct {
		name   string
		dst    *int
		zeroed error
	}{
		{"escape-limit", &pr.EscapeLimit, mandel.ErrInvalidLimit},
		{"resolution", &pr.Resolution, mandel.ErrInvalidResolution},
	} {
		s := q.Get(f.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return plotRequest{}, fmt.Errorf("%s=%q: %w", f.name, s, mandel.ErrInvalidValue)
		}
		// zero means "default" in plotRequest, so reject it here
		if v == 0 {
			return plotRequest{}, fmt.Errorf("%s=0: %w", f.name, f.zeroed)
		}
		*f.dst = v
	}
	return pr, nil
}

// maxTiles bounds how many tiles one plot may be split into.
const maxTiles = 1 << 14

// plotServer renders PNG plots and implements mandel.TileProvider. Complete
// rasters are kept in cache; rasters still being assembled from tiles are kept
// in partial.
type plotServer struct {
	renderer mandel.Renderer
	cache    *lru.Cache[mandel.Config, mandel.Raster]

	mu      sync.Mutex
	partial *lru.Cache[mandel.Config, *tileRenderer]
}

var _ mandel.TileProvider = (*plotServer)(nil)

func newPlotServer(renderer mandel.Renderer, cacheSize, partialSize int) (*plotServer, error) {
	cache, err := lru.New[mandel.Config, mandel.Raster](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("lru.New: %w", err)
	}
	partial, err := lru.New[mandel.Config, *tileRenderer](partialSize)
	if err != nil {
		return nil, fmt.Errorf("lru.New: %w", err)
	}
	return &plotServer{renderer: renderer, cache: cache, partial: partial}, nil
}

func (ps *plotServer) raster(ctx context.Context, cfg mandel.Config) (mandel.Raster, error) {
	if r, ok := ps.cache.Get(cfg); ok {
		return r, nil
	}
	r, err := mandel.ComputeContext(ctx, cfg)
	if err != nil {
		return mandel.Raster{}, err
	}
	ps.cache.Add(cfg, r)
	return r, nil
}

// Tiles implements mandel.TileProvider.
func (ps *plotServer) Tiles(cfg mandel.Config, tileSize int) ([]image.Rectangle, error) {
	if err := cfg.CheckLimits(); err != nil {
		return nil, err
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size %d must be positive", tileSize)
	}
	perSide := (cfg.Resolution + tileSize - 1) / tileSize
	if perSide*perSide > maxTiles {
		return nil, fmt.Errorf("%d tiles of size %d: %w", perSide*perSide, tileSize, mandel.ErrTooLarge)
	}
	return splitRectNoClip(image.Rect(0, 0, cfg.Resolution, cfg.Resolution), tileSize, tileSize), nil
}

// Tile implements mandel.TileProvider. Once every sample of a plot has been
// computed, the raster moves to the cache and later tiles are cut from it.
func (ps *plotServer) Tile(ctx context.Context, cfg mandel.Config, tile image.Rectangle) ([]int, error) {
	if err := cfg.CheckLimits(); err != nil {
		return nil, err
	}
	if r, ok := ps.cache.Get(cfg); ok {
		if tile.Empty() || !tile.In(r.Bounds()) {
			return nil, fmt.Errorf("tile %v outside %v", tile, r.Bounds())
		}
		return r.Tile(tile), nil
	}

	tr, err := ps.tileRenderer(cfg)
	if err != nil {
		return nil, err
	}
	vals, complete, err := tr.render(ctx, tile)
	if err != nil {
		return nil, err
	}
	if complete {
		log.Printf("finished: %f", tr.finished())
		ps.cache.Add(cfg, tr.raster)
		ps.partial.Remove(cfg)
	}
	return vals, nil
}

func (ps *plotServer) tileRenderer(cfg mandel.Config) (*tileRenderer, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if tr, ok := ps.partial.Get(cfg); ok {
		return tr, nil
	}
	tr, err := newTileRenderer(cfg)
	if err != nil {
		return nil, err
	}
	ps.partial.Add(cfg, tr)
	return tr, nil
}

// handler serves the PNG and landmark endpoints and passes websockets on /ws
// to l.
func (ps *plotServer) handler(l *websocketListener) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mandelbrot.png", ps.handlePNG)
	mux.HandleFunc("GET /landmarks", handleLandmarks)
	mux.HandleFunc("/ws", websocketHandler(l))
	return mux
}

func (ps *plotServer) handlePNG(w http.ResponseWriter, r *http.Request) {
	pr, err := requestFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cfg, err := pr.config()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	raster, err := ps.raster(r.Context(), cfg)
	if err != nil {
		if r.Context().Err() != nil {
			log.Printf("compute %+v: %v", cfg, err)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := ps.renderer.Render(&buf, raster, cfg.Region()); err != nil {
		log.Printf("render %+v: %v", cfg, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("write png: %v", err)
	}
}

func handleLandmarks(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string][4]float64)
	for _, name := range mandel.LandmarkNames() {
		r, _ := mandel.Landmark(name)
		out[name] = r.Extent()
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.Printf("encode landmarks: %v", err)
	}
}
