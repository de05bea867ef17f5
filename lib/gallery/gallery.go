// Package gallery turns a parsed recipe into viewer state documents and
// keeps them current while the recipe file changes on disk.
package gallery

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/glancix/glancix/lib/config"
	"github.com/glancix/glancix/lib/metrics"
	"github.com/glancix/glancix/lib/state"
	"github.com/glancix/glancix/lib/utils"
	"github.com/jhenstridge/go-inotify"
)

type Gallery struct {
	ShutdownRequested bool

	mu        sync.RWMutex
	scenes    map[string]*state.Scene
	sceneList []string
	cfg       *config.Config

	listener map[string][]EventListener
}

func New(cfg *config.Config) (*Gallery, error) {
	g := &Gallery{listener: make(map[string][]EventListener)}
	err := g.Rebuild(cfg)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Rebuild regenerates every scene's state document from the recipe and
// notifies "state-updated" listeners.
func (g *Gallery) Rebuild(cfg *config.Config) error {
	scenes := make(map[string]*state.Scene, len(cfg.Scenes))
	for name, sceneCfg := range cfg.Scenes {
		layers, err := buildLayers(sceneCfg, cfg.VoxelScale())
		if err != nil {
			return fmt.Errorf("could not build scene %s: %w", name, err)
		}
		scene, err := state.Combine(layers, cfg.VoxelScale(), cfg.Units)
		if err != nil {
			return fmt.Errorf("could not combine scene %s: %w", name, err)
		}
		scenes[name] = scene
		metrics.StatesGenerated.WithLabelValues(name).Inc()
	}

	sceneList := make([]string, 0, len(scenes))
	for name := range scenes {
		sceneList = append(sceneList, name)
	}
	sort.Strings(sceneList)

	g.mu.Lock()
	g.scenes = scenes
	g.sceneList = sceneList
	g.cfg = cfg
	g.mu.Unlock()

	for _, name := range sceneList {
		g.invoke("state-updated", EventDataStateUpdated{Event: "state-updated", Scene: name})
	}
	return nil
}

func buildLayers(sceneCfg *config.SceneCfg, scale utils.Scale) ([]state.Layer, error) {
	layers := make([]state.Layer, 0, len(sceneCfg.Layers))
	for i, layerCfg := range sceneCfg.Layers {
		layer, err := buildLayer(layerCfg, scale)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers = append(layers, layer)
		metrics.LayersBuilt.WithLabelValues(layerCfg.Type).Inc()
	}
	return layers, nil
}

func buildLayer(layerCfg *config.LayerCfg, scale utils.Scale) (state.Layer, error) {
	switch cfg := layerCfg.Cfg.(type) {
	case *config.ImageLayerCfg:
		return state.NewImageLayer(state.ImageLayerParams{
			Source:  layerCfg.Source,
			Name:    layerCfg.Name,
			URL:     layerCfg.URL,
			Scale:   scale,
			Size:    cfg.Size,
			Start:   cfg.Start,
			Mean:    cfg.Mean,
			RMS:     cfg.Rms,
			Visible: layerCfg.IsVisible(),
		}), nil
	case *config.SegmentationLayerCfg:
		return state.NewSegmentationLayer(state.SegmentationLayerParams{
			Source:  layerCfg.Source,
			Name:    layerCfg.Name,
			URL:     layerCfg.URL,
			Colour:  cfg.Colour,
			Scale:   scale,
			Visible: layerCfg.IsVisible(),
		})
	case *config.AnnotationLayerCfg:
		return state.NewPointLayer(state.PointLayerParams{
			Source:               layerCfg.Source,
			Name:                 layerCfg.Name,
			URL:                  layerCfg.URL,
			Colour:               cfg.Colour,
			PointSizeMultiplier:  cfg.PointSizeMultiplier,
			Scale:                scale,
			Visible:              layerCfg.IsVisible(),
			InstanceSegmentation: cfg.InstanceSegmentation,
		})
	case *config.ImageVolumeLayerCfg:
		return state.NewImageVolumeLayer(state.ImageVolumeLayerParams{
			Source:         layerCfg.Source,
			Name:           layerCfg.Name,
			URL:            layerCfg.URL,
			Colour:         cfg.Colour,
			Scale:          scale,
			Visible:        layerCfg.IsVisible(),
			RenderingDepth: cfg.RenderingDepth,
		})
	default:
		return nil, fmt.Errorf("unknown layer type: %s", layerCfg.Type)
	}
}

// Scene returns the current state document for one scene, or nil.
func (g *Gallery) Scene(name string) *state.Scene {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.scenes[name]
}

// SceneNames lists the known scenes in stable order.
func (g *Gallery) SceneNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, len(g.sceneList))
	copy(names, g.sceneList)
	return names
}

func (g *Gallery) Config() *config.Config {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cfg
}

// Watch reloads the recipe whenever the file is written, keeping the old
// states when the new recipe fails to parse.
func (g *Gallery) Watch(path string) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		slog.Error(fmt.Sprintf("Could not create inotify watcher: %s", err), slog.String("module", "gallery"))
		return
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	_, err = watcher.Watch(path)
	if err != nil {
		slog.Error(fmt.Sprintf("Could not watch %s: %s", path, err), slog.String("module", "gallery"))
		return
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		time.Sleep(100 * time.Millisecond)

		cfg, err := config.Parse(path)
		if err != nil {
			slog.Error(fmt.Sprintf("Recipe %s is invalid, keeping previous states: %s", path, err), slog.String("module", "gallery"))
			continue
		}
		err = g.Rebuild(cfg)
		if err != nil {
			slog.Error(fmt.Sprintf("Could not rebuild states: %s", err), slog.String("module", "gallery"))
			continue
		}
		metrics.RecipeReloads.Inc()
		slog.Info(fmt.Sprintf("Recipe %s reloaded", path), slog.String("module", "gallery"))
	}
}
