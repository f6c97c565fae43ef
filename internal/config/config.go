package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"cube-mapping/internal/camera"
	"cube-mapping/internal/controls"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration. Zero values are not
// meaningful; start from Default.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Camera   CameraConfig   `toml:"camera"`
	Cube     CubeConfig     `toml:"cube"`
	Textures TextureConfig  `toml:"textures"`
	Controls ControlsConfig `toml:"controls"`
}

// WindowConfig holds window and GL context settings.
type WindowConfig struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	VSync   bool   `toml:"vsync"`
	GLMajor int    `toml:"gl_major"`
	GLMinor int    `toml:"gl_minor"`

	// FPSLimit caps the frame rate when vsync is off. 0 means uncapped.
	FPSLimit int `toml:"fps_limit"`
}

// CameraConfig holds the initial camera placement and its step sizes.
type CameraConfig struct {
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
	Up     [3]float32 `toml:"up"`

	FOV  float32 `toml:"fov"`
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`

	ZoomStep   float32 `toml:"zoom_step"`
	MoveStep   float32 `toml:"move_step"`
	RotateStep float32 `toml:"rotate_step"`
}

// CubeConfig describes the rendered cube.
type CubeConfig struct {
	HalfLength float32    `toml:"half_length"`
	Color      [4]float32 `toml:"color"`
	// ShaderDir, when set, loads cube.vert and cube.frag from disk instead
	// of the built-in shaders.
	ShaderDir string `toml:"shader_dir"`
}

// TextureConfig locates the six cube faces.
type TextureConfig struct {
	Video     bool   `toml:"video"`
	StaticDir string `toml:"static_dir"`
	StaticExt string `toml:"static_ext"`
	VideoDir  string `toml:"video_dir"`
	VideoExt  string `toml:"video_ext"`
	Watch     bool   `toml:"watch"`
}

// ControlsConfig selects the drag scheme and key bindings.
type ControlsConfig struct {
	Scheme     string  `toml:"scheme"`
	DollyScale float32 `toml:"dolly_scale"`
	// Bindings maps an action name (see controls.Action) to key names.
	// Listed actions replace the default keys for that action.
	Bindings map[string][]string `toml:"bindings"`
}

// Default returns the stock configuration.
func Default() Config {
	cp := camera.DefaultParams()
	return Config{
		Window: WindowConfig{
			Width:   1920,
			Height:  1080,
			Title:   "Cube Mapping",
			VSync:   true,
			GLMajor: 4,
			GLMinor: 1,
		},
		Camera: CameraConfig{
			Eye:        cp.Eye,
			Target:     cp.Target,
			Up:         cp.Up,
			FOV:        cp.FOV,
			Near:       cp.NearPlane,
			Far:        cp.FarPlane,
			ZoomStep:   cp.Sensitivity.Zoom,
			MoveStep:   cp.Sensitivity.Move,
			RotateStep: cp.Sensitivity.Rotate,
		},
		Cube: CubeConfig{
			HalfLength: 5.0,
			Color:      [4]float32{1, 1, 1, 1},
		},
		Textures: TextureConfig{
			StaticDir: "samples/static/sample1",
			StaticExt: ".jpg",
			VideoDir:  "samples/dynamic",
			VideoExt:  ".avi",
		},
		Controls: ControlsConfig{
			Scheme:     controls.SchemeLook.String(),
			DollyScale: 0.02,
		},
	}
}

// Load reads a TOML file over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPSLimit < 0:
		return fmt.Errorf("%w: fps_limit %d is negative", ErrInvalid, c.Window.FPSLimit)
	case c.Window.GLMajor < 3 || (c.Window.GLMajor == 3 && c.Window.GLMinor < 3):
		return fmt.Errorf("%w: OpenGL %d.%d is older than 3.3 core", ErrInvalid, c.Window.GLMajor, c.Window.GLMinor)
	case c.Camera.FOV <= 0 || c.Camera.FOV > camera.MaxFOV:
		return fmt.Errorf("%w: fov %v outside (0, %v]", ErrInvalid, c.Camera.FOV, camera.MaxFOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	case mgl32.Vec3(c.Camera.Target).Sub(c.Camera.Eye).Len() == 0:
		return fmt.Errorf("%w: camera target equals eye", ErrInvalid)
	case mgl32.Vec3(c.Camera.Up).Len() == 0:
		return fmt.Errorf("%w: camera up vector is zero", ErrInvalid)
	case mgl32.Vec3(c.Camera.Up).Cross(mgl32.Vec3(c.Camera.Target).Sub(c.Camera.Eye)).Len() == 0:
		return fmt.Errorf("%w: camera up vector is parallel to the view direction", ErrInvalid)
	case !positive(c.Camera.ZoomStep):
		return fmt.Errorf("%w: zoom_step %v must be positive", ErrInvalid, c.Camera.ZoomStep)
	case !positive(c.Camera.MoveStep):
		return fmt.Errorf("%w: move_step %v must be positive", ErrInvalid, c.Camera.MoveStep)
	case !positive(c.Camera.RotateStep):
		return fmt.Errorf("%w: rotate_step %v must be positive", ErrInvalid, c.Camera.RotateStep)
	case c.Cube.HalfLength <= 0:
		return fmt.Errorf("%w: cube half length %v", ErrInvalid, c.Cube.HalfLength)
	}

	if c.Textures.Video {
		if c.Textures.VideoDir == "" || c.Textures.VideoExt == "" {
			return fmt.Errorf("%w: video textures need video_dir and video_ext", ErrInvalid)
		}
	} else if c.Textures.StaticDir == "" || c.Textures.StaticExt == "" {
		return fmt.Errorf("%w: static textures need static_dir and static_ext", ErrInvalid)
	}

	if _, err := controls.ParseScheme(c.Controls.Scheme); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for name := range c.Controls.Bindings {
		if _, err := controls.ParseAction(name); err != nil {
			return fmt.Errorf("%w: bindings: %v", ErrInvalid, err)
		}
	}
	return nil
}

// positive reports whether v is finite and above zero.
func positive(v float32) bool {
	f := float64(v)
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// CameraParams converts the camera section for camera.New.
func (c Config) CameraParams() camera.Params {
	return camera.Params{
		Eye:       c.Camera.Eye,
		Target:    c.Camera.Target,
		Up:        c.Camera.Up,
		FOV:       c.Camera.FOV,
		NearPlane: c.Camera.Near,
		FarPlane:  c.Camera.Far,
		Sensitivity: camera.Sensitivity{
			Zoom:   c.Camera.ZoomStep,
			Move:   c.Camera.MoveStep,
			Rotate: c.Camera.RotateStep,
		},
	}
}

// TextureSet returns the directory and extension of the active face set.
func (c Config) TextureSet() (dir, ext string) {
	if c.Textures.Video {
		return c.Textures.VideoDir, c.Textures.VideoExt
	}
	return c.Textures.StaticDir, c.Textures.StaticExt
}

// Scheme returns the parsed control scheme. Validate guarantees it parses.
func (c Config) Scheme() controls.Scheme {
	s, _ := controls.ParseScheme(c.Controls.Scheme)
	return s
}
