// spin - Terminal quaternion viewer
// Spins a set of vectors with spring-damped quaternion rotation.
//
// Controls:
//
//	W/S   - Pitch up/down
//	A/D   - Yaw left/right
//	Q/E   - Roll left/right
//	Space - Apply random impulse
//	R     - Reset orientation
//	Esc   - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"go.uber.org/zap"

	"github.com/taigrr/quaternions/pkg/render"
)

var (
	targetFPS    = flag.Int("fps", 0, "Target FPS (overrides config)")
	configPath   = flag.String("config", "", "Path to spinner config (YAML)")
	gltfPath     = flag.String("gltf", "", "Take the initial orientation from a glTF/GLB node")
	nodeName     = flag.String("node", "", "Node name to read from -gltf (default: first node)")
	snapshotPath = flag.String("snapshot", "", "Render one frame to a PNG file and exit")
	debug        = flag.Bool("debug", false, "Enable debug logging")
)

// keyTorque is the impulse one key press adds, in radians per frame.
const keyTorque = 0.02

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "spin - Terminal quaternion viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: spin [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Pitch and yaw\n")
		fmt.Fprintf(os.Stderr, "  Q/E         - Roll left/right\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random spin\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset orientation\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := options{
		FPS:        *targetFPS,
		ConfigPath: *configPath,
		GLTFPath:   *gltfPath,
		NodeName:   *nodeName,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *snapshotPath != "" {
		err = snapshot(opts, *snapshotPath, logger)
	} else {
		err = run(ctx, opts, logger)
	}
	if err != nil {
		logger.Error("spin failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// newLogger builds a console logger on stderr. It must not be used while the
// terminal is in the alternate screen.
func newLogger(debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      debug,
		Encoding:         "console",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// snapshot renders the initial orientation to a PNG without a terminal.
func snapshot(opts options, path string, logger *zap.Logger) error {
	spinner, err := newSpinner(opts, logger)
	if err != nil {
		return err
	}

	fb := render.NewFramebuffer(80, 48)
	drawScene(fb, spinner)
	if err := fb.SavePNG(path); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	logger.Info("wrote snapshot", zap.String("path", path))
	return nil
}

func run(ctx context.Context, opts options, logger *zap.Logger) error {
	spinner, err := newSpinner(opts, logger)
	if err != nil {
		return err
	}
	cfg := spinner.Config()

	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	logger.Info("starting viewer",
		zap.Int("fps", cfg.FPS),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("orientation", spinner.Orientation()),
	)

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	fb := render.NewFramebuffer(width, height*2)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			logger.Info("stopped", zap.Stringer("orientation", spinner.Orientation()))
			return nil

		case ev, ok := <-term.Events():
			if !ok {
				cleanup()
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fb = render.NewFramebuffer(width, height*2)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape", "ctrl+c"):
					cleanup()
					logger.Info("stopped", zap.Stringer("orientation", spinner.Orientation()))
					return nil
				case ev.MatchString("w", "up"):
					spinner.ApplyImpulse(-keyTorque, 0, 0)
				case ev.MatchString("s", "down"):
					spinner.ApplyImpulse(keyTorque, 0, 0)
				case ev.MatchString("a", "left"):
					spinner.ApplyImpulse(0, -keyTorque, 0)
				case ev.MatchString("d", "right"):
					spinner.ApplyImpulse(0, keyTorque, 0)
				case ev.MatchString("q"):
					spinner.ApplyImpulse(0, 0, keyTorque)
				case ev.MatchString("e"):
					spinner.ApplyImpulse(0, 0, -keyTorque)
				case ev.MatchString("space"):
					spinner.ApplyImpulse(
						(rand.Float64()-0.5)*cfg.Impulse,
						(rand.Float64()-0.5)*cfg.Impulse,
						(rand.Float64()-0.5)*cfg.Impulse,
					)
				case ev.MatchString("r"):
					spinner.Reset()
				}
			}

		case <-ticker.C:
			spinner.Update()
			drawScene(fb, spinner)
			term.Draw(fb)
			if err := term.Display(); err != nil {
				cleanup()
				return fmt.Errorf("display: %w", err)
			}
		}
	}
}
