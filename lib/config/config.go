package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glancix/glancix/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

// Config is a parsed recipe: the scenes to generate viewer states for,
// plus the global voxel scale and serving options.
type Config struct {
	Scenes map[string]*SceneCfg
	Scale  *ScaleCfg
	Units  string
	// Output is where generated state documents get written, resolved
	// relative to the recipe file.
	Output CfgPath
	Api    *ApiCfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %s", filename, err)
	}
	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			_ = fmt.Errorf("could not close %s: %s", filename, err)
		}
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}
	UnmarshalBase = filepath.Dir(absFilename)

	m := yaml.NewDecoder(f)
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, err
}

func (c *Config) Validate() error {
	if len(c.Scenes) < 1 {
		return fmt.Errorf("at least one scene should be defined")
	}
	for k, v := range c.Scenes {
		if len(v.Layers) < 1 {
			return fmt.Errorf("scene %s has no layers", k)
		}
		for i, layerCfg := range v.Layers {
			err := layerCfg.Validate()
			if err != nil {
				return fmt.Errorf("scene %s layer %d is invalid: %w", k, i, err)
			}
		}
	}
	return nil
}

// VoxelScale is the recipe's scale, defaulting to unit voxels.
func (c *Config) VoxelScale() utils.Scale {
	if c.Scale == nil {
		return utils.UniformScale(1)
	}
	return utils.Scale(*c.Scale)
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Scenes:\n")
	for k, v := range c.Scenes {
		b.WriteString(fmt.Sprintf("  %s (%d layers)\n", k, len(v.Layers)))
		for _, l := range v.Layers {
			b.WriteString(fmt.Sprintf("    %s (%s)\n", l.Source, l.Type))
		}
	}
	return b.String()
}

type SceneCfg struct {
	Layers []*LayerCfg
}

// LayerCfgStub carries the fields shared by every layer type; the
// type-specific remainder is decoded into LayerCfg.Cfg.
type LayerCfgStub struct {
	Type    string
	Name    string
	Source  string
	URL     string `yaml:"url"`
	Visible *bool
}

type Valid interface {
	Validate() error
}

type LayerCfg struct {
	LayerCfgStub
	Cfg Valid
}

// IsVisible defaults to true when the recipe leaves it unset.
func (l *LayerCfg) IsVisible() bool {
	return l.Visible == nil || *l.Visible
}

type ImageLayerCfg struct {
	Size  map[string]float64
	Start map[string]float64
	Mean  *float64
	Rms   *float64
}

type SegmentationLayerCfg struct {
	Colour string `yaml:"color"`
}

type AnnotationLayerCfg struct {
	Colour               []string `yaml:"color"`
	PointSizeMultiplier  float64  `yaml:"point_size_multiplier"`
	InstanceSegmentation bool     `yaml:"instance_segmentation"`
}

type ImageVolumeLayerCfg struct {
	Colour         string `yaml:"color"`
	RenderingDepth int    `yaml:"rendering_depth"`
}

func (l *LayerCfg) UnmarshalYAML(b []byte) error {
	err := yaml.Unmarshal(b, &l.LayerCfgStub)
	if err != nil {
		return err
	}

	switch l.Type {
	case "image":
		cfg := ImageLayerCfg{}
		l.Cfg = &cfg
		return yaml.Unmarshal(b, &cfg)
	case "segmentation":
		cfg := SegmentationLayerCfg{}
		l.Cfg = &cfg
		return yaml.Unmarshal(b, &cfg)
	case "annotation":
		cfg := AnnotationLayerCfg{}
		l.Cfg = &cfg
		return yaml.Unmarshal(b, &cfg)
	case "image_volume":
		cfg := ImageVolumeLayerCfg{}
		l.Cfg = &cfg
		return yaml.Unmarshal(b, &cfg)
	default:
		return fmt.Errorf("unknown layer type: %s", l.Type)
	}
}

func (l *LayerCfg) Validate() error {
	if l.Source == "" {
		return fmt.Errorf("a source must be specified")
	}
	if l.Cfg == nil {
		return fmt.Errorf("unknown layer type: %s", l.Type)
	}
	return l.Cfg.Validate()
}

func (c *ImageLayerCfg) Validate() error {
	if len(c.Size) == 0 {
		return fmt.Errorf("an image layer needs its volume size")
	}
	for _, axis := range []string{"x", "y", "z"} {
		if _, ok := c.Size[axis]; !ok {
			return fmt.Errorf("image size is missing the %s axis", axis)
		}
	}
	if (c.Mean == nil) != (c.Rms == nil) {
		return fmt.Errorf("mean and rms must be given together")
	}
	return nil
}

func (c *SegmentationLayerCfg) Validate() error {
	if c.Colour == "" {
		return nil
	}
	return utils.ColourValidate(c.Colour)
}

func (c *AnnotationLayerCfg) Validate() error {
	if c.PointSizeMultiplier < 0 {
		return fmt.Errorf("point_size_multiplier must be nonnegative")
	}
	_, err := utils.Vec3Colour(c.Colour)
	return err
}

func (c *ImageVolumeLayerCfg) Validate() error {
	if c.RenderingDepth < 0 {
		return fmt.Errorf("rendering_depth must be nonnegative")
	}
	if c.Colour == "" {
		return nil
	}
	return utils.ColourValidate(c.Colour)
}

// ScaleCfg accepts either a scalar voxel size or a three-element list.
type ScaleCfg utils.Scale

func (s *ScaleCfg) UnmarshalYAML(b []byte) error {
	var scalar float64
	if err := yaml.Unmarshal(b, &scalar); err == nil {
		*s = ScaleCfg(utils.UniformScale(scalar))
		return nil
	}
	var list []float64
	if err := yaml.Unmarshal(b, &list); err != nil {
		return err
	}
	scale, err := utils.ScaleFromList(list)
	if err != nil {
		return err
	}
	*s = ScaleCfg(scale)
	return nil
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
	WatchRecipe    bool `yaml:"watch_recipe"`
}
