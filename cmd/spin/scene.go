package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/taigrr/quaternions/pkg/math3d"
	"github.com/taigrr/quaternions/pkg/render"
	"github.com/taigrr/quaternions/pkg/scene"
	"github.com/taigrr/quaternions/pkg/spin"
)

// options holds the command line settings after parsing.
type options struct {
	FPS        int
	ConfigPath string
	GLTFPath   string
	NodeName   string
}

// sceneVector is one vector the viewer rotates and draws.
type sceneVector struct {
	v     math3d.Vec3
	color render.Color
}

// sceneVectors are the unit basis plus the demo vector (2, 0, 0).
var sceneVectors = []sceneVector{
	{math3d.V3(2, 0, 0), render.ColorWhite},
	{math3d.V3(1, 0, 0), render.ColorRed},
	{math3d.V3(0, 1, 0), render.ColorGreen},
	{math3d.V3(0, 0, 1), render.ColorBlue},
}

var background = render.RGB(30, 30, 40)

// loadConfig reads the spinner config file if one was given and applies the
// fps override.
func loadConfig(opts options) (spin.Config, error) {
	cfg := spin.DefaultConfig()
	if opts.ConfigPath != "" {
		f, err := os.Open(opts.ConfigPath)
		if err != nil {
			return spin.Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		cfg, err = spin.LoadConfig(f)
		if err != nil {
			return spin.Config{}, fmt.Errorf("load config %s: %w", opts.ConfigPath, err)
		}
	}
	if opts.FPS > 0 {
		cfg.FPS = opts.FPS
	}
	return cfg, cfg.Validate()
}

// initialOrientation returns the rotation of the requested glTF node, or the
// identity when no file was given.
func initialOrientation(opts options, logger *zap.Logger) (math3d.Quaternion, error) {
	if opts.GLTFPath == "" {
		return math3d.Identity(), nil
	}

	rs, err := scene.LoadRotations(opts.GLTFPath)
	if err != nil {
		return math3d.Quaternion{}, fmt.Errorf("load orientation: %w", err)
	}
	logger.Debug("loaded node rotations",
		zap.String("path", opts.GLTFPath),
		zap.Int("nodes", len(rs)),
	)

	if opts.NodeName == "" {
		if len(rs) == 0 {
			return math3d.Quaternion{}, fmt.Errorf("no nodes in %s", opts.GLTFPath)
		}
		return rs[0].Rotation, nil
	}

	q, ok := scene.Find(rs, opts.NodeName)
	if !ok {
		return math3d.Quaternion{}, fmt.Errorf("node %q not found in %s", opts.NodeName, opts.GLTFPath)
	}
	return q, nil
}

func newSpinner(opts options, logger *zap.Logger) (*spin.Spinner, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	q, err := initialOrientation(opts, logger)
	if err != nil {
		return nil, err
	}
	return spin.NewSpinner(cfg).WithOrientation(q), nil
}

// drawScene clears fb and draws every scene vector at the spinner's
// current orientation, dimming those that point into the screen.
func drawScene(fb *render.Framebuffer, s *spin.Spinner) {
	fb.Clear(background)

	vs := make([]math3d.Vec3, len(sceneVectors))
	for i, sv := range sceneVectors {
		vs[i] = sv.v
	}

	proj := render.FitProjector(fb, 2)
	for i, v := range s.Rotate(vs) {
		c := render.Shade(sceneVectors[i].color, v.Z()/v.Magnitude())
		fb.DrawVector(proj, v, c)
	}
}
