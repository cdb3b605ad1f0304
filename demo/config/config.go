package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"cubecam/camera"
	"cubecam/common"
	"cubecam/demo/logger"
)

const EnvPrefix = "CUBECAM"

var ErrInvalid = errors.New("invalid config")

// minUpAngleSin is the smallest accepted sine of the angle between world_up
// and the initial front, about 0.6 degrees.
const minUpAngleSin = 0.01

type Config struct {
	Window     WindowConfig      `mapstructure:"window" yaml:"window"`
	Camera     CameraConfig      `mapstructure:"camera" yaml:"camera"`
	Projection ProjectionConfig  `mapstructure:"projection" yaml:"projection"`
	Scene      SceneConfig       `mapstructure:"scene" yaml:"scene"`
	Input      map[string]string `mapstructure:"input" yaml:"input"`
	Assets     AssetsConfig      `mapstructure:"assets" yaml:"assets"`
	Log        logger.Config     `mapstructure:"log" yaml:"log"`
}

type WindowConfig struct {
	Title  string `mapstructure:"title" yaml:"title"`
	Width  int    `mapstructure:"width" yaml:"width"`
	Height int    `mapstructure:"height" yaml:"height"`
	VSync  bool   `mapstructure:"vsync" yaml:"vsync"`
}

type CameraConfig struct {
	Position         []float32 `mapstructure:"position" yaml:"position"`
	WorldUp          []float32 `mapstructure:"world_up" yaml:"world_up"`
	Yaw              float32   `mapstructure:"yaw" yaml:"yaw"`
	Pitch            float32   `mapstructure:"pitch" yaml:"pitch"`
	MovementSpeed    float32   `mapstructure:"movement_speed" yaml:"movement_speed"`
	MouseSensitivity float32   `mapstructure:"mouse_sensitivity" yaml:"mouse_sensitivity"`
	Fov              float32   `mapstructure:"fov" yaml:"fov"`
}

type ProjectionConfig struct {
	Near float32 `mapstructure:"near" yaml:"near"`
	Far  float32 `mapstructure:"far" yaml:"far"`
}

type SceneConfig struct {
	Mode          string    `mapstructure:"mode" yaml:"mode"`
	RotationSpeed float32   `mapstructure:"rotation_speed" yaml:"rotation_speed"`
	ClearColor    []float32 `mapstructure:"clear_color" yaml:"clear_color"`
	HUD           bool      `mapstructure:"hud" yaml:"hud"`
}

type AssetsConfig struct {
	// ShaderDir overrides the embedded shaders with files on disk.
	ShaderDir   string `mapstructure:"shader_dir" yaml:"shader_dir"`
	HotReload   bool   `mapstructure:"hot_reload" yaml:"hot_reload"`
	Texture1    string `mapstructure:"texture1" yaml:"texture1"`
	Texture2    string `mapstructure:"texture2" yaml:"texture2"`
	DiffuseMap  string `mapstructure:"diffuse_map" yaml:"diffuse_map"`
	SpecularMap string `mapstructure:"specular_map" yaml:"specular_map"`
}

func NewConfig() *Config {
	c := &Config{}
	c.Reset()
	return c
}

func (cfg *Config) Reset() {
	cfg.Window = WindowConfig{Title: "cubecam", Width: 800, Height: 600, VSync: true}
	cfg.Camera = CameraConfig{
		Position:         vec3Slice(camera.DefaultPosition),
		WorldUp:          vec3Slice(camera.DefaultWorldUp),
		Yaw:              camera.DefaultYaw,
		Pitch:            camera.DefaultPitch,
		MovementSpeed:    camera.DefaultMovementSpeed,
		MouseSensitivity: camera.DefaultMouseSensitivity,
		Fov:              camera.DefaultFov,
	}
	cfg.Projection = ProjectionConfig{Near: 0.1, Far: 100}
	cfg.Scene = SceneConfig{
		Mode:          SceneTextured,
		RotationSpeed: 20,
		ClearColor:    []float32{0.2, 0.3, 0.3, 1.0},
		HUD:           true,
	}
	cfg.Input = map[string]string{
		camera.Forward.String():  "W",
		camera.Backward.String(): "S",
		camera.Left.String():     "A",
		camera.Right.String():    "D",
	}
	cfg.Assets = AssetsConfig{
		Texture1:    "assets/container.jpg",
		Texture2:    "assets/awesomeface.png",
		DiffuseMap:  "assets/container2.png",
		SpecularMap: "assets/container2_specular.png",
	}
	cfg.Log = logger.DefaultConfig()
}

// Load reads path (or ./cubecam.yaml when path is empty and the file
// exists), applies CUBECAM_* environment overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, NewConfig())

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cubecam")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("window.title", cfg.Window.Title)
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)
	v.SetDefault("window.vsync", cfg.Window.VSync)

	v.SetDefault("camera.position", cfg.Camera.Position)
	v.SetDefault("camera.world_up", cfg.Camera.WorldUp)
	v.SetDefault("camera.yaw", cfg.Camera.Yaw)
	v.SetDefault("camera.pitch", cfg.Camera.Pitch)
	v.SetDefault("camera.movement_speed", cfg.Camera.MovementSpeed)
	v.SetDefault("camera.mouse_sensitivity", cfg.Camera.MouseSensitivity)
	v.SetDefault("camera.fov", cfg.Camera.Fov)

	v.SetDefault("projection.near", cfg.Projection.Near)
	v.SetDefault("projection.far", cfg.Projection.Far)

	v.SetDefault("scene.mode", cfg.Scene.Mode)
	v.SetDefault("scene.rotation_speed", cfg.Scene.RotationSpeed)
	v.SetDefault("scene.clear_color", cfg.Scene.ClearColor)
	v.SetDefault("scene.hud", cfg.Scene.HUD)

	for name, key := range cfg.Input {
		v.SetDefault("input."+name, key)
	}

	v.SetDefault("assets.shader_dir", cfg.Assets.ShaderDir)
	v.SetDefault("assets.hot_reload", cfg.Assets.HotReload)
	v.SetDefault("assets.texture1", cfg.Assets.Texture1)
	v.SetDefault("assets.texture2", cfg.Assets.Texture2)
	v.SetDefault("assets.diffuse_map", cfg.Assets.DiffuseMap)
	v.SetDefault("assets.specular_map", cfg.Assets.SpecularMap)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.max_size_mb", cfg.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", cfg.Log.MaxBackups)
	v.SetDefault("log.max_age_days", cfg.Log.MaxAgeDays)
	v.SetDefault("log.console", cfg.Log.Console)
}

func (cfg *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		bad("window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if len(cfg.Camera.Position) != 3 {
		bad("camera.position needs 3 components, got %d", len(cfg.Camera.Position))
	}
	if len(cfg.Camera.WorldUp) != 3 {
		bad("camera.world_up needs 3 components, got %d", len(cfg.Camera.WorldUp))
	} else if up := sliceVec3(cfg.Camera.WorldUp); up.Len() == 0 {
		bad("camera.world_up is zero")
	} else {
		pitch := common.Clamp(cfg.Camera.Pitch, -camera.MaxPitch, camera.MaxPitch)
		front := camera.Direction(cfg.Camera.Yaw, pitch)
		if front.Cross(up.Normalize()).Len() < minUpAngleSin {
			bad("camera.world_up %v is parallel to the initial view direction", cfg.Camera.WorldUp)
		}
	}
	if cfg.Camera.Pitch < -camera.MaxPitch || cfg.Camera.Pitch > camera.MaxPitch {
		bad("camera.pitch %v outside [-%v, %v]", cfg.Camera.Pitch, camera.MaxPitch, camera.MaxPitch)
	}
	if cfg.Camera.MovementSpeed < 0 {
		bad("camera.movement_speed %v is negative", cfg.Camera.MovementSpeed)
	}
	if cfg.Camera.MouseSensitivity < 0 {
		bad("camera.mouse_sensitivity %v is negative", cfg.Camera.MouseSensitivity)
	}
	if cfg.Camera.Fov <= 0 || cfg.Camera.Fov >= 180 {
		bad("camera.fov %v outside (0, 180)", cfg.Camera.Fov)
	}
	if cfg.Projection.Near <= 0 || cfg.Projection.Far <= cfg.Projection.Near {
		bad("projection near %v far %v", cfg.Projection.Near, cfg.Projection.Far)
	}
	if SceneDesc(cfg.Scene.Mode) == "" {
		bad("unknown scene %q", cfg.Scene.Mode)
	}
	if len(cfg.Scene.ClearColor) != 4 {
		bad("scene.clear_color needs 4 components, got %d", len(cfg.Scene.ClearColor))
	}
	for name := range cfg.Input {
		if _, err := camera.ParseMovement(name); err != nil {
			bad("input: %v", err)
		}
	}
	if cfg.Assets.HotReload && cfg.Assets.ShaderDir == "" {
		bad("assets.hot_reload needs assets.shader_dir")
	}
	return errors.Join(errs...)
}

// NewCamera builds the camera described by the config. Call Validate first.
func (cfg *Config) NewCamera() *camera.Camera {
	return camera.New(
		sliceVec3(cfg.Camera.Position),
		sliceVec3(cfg.Camera.WorldUp),
		cfg.Camera.Yaw,
		cfg.Camera.Pitch,
		camera.Options{
			MovementSpeed:    cfg.Camera.MovementSpeed,
			MouseSensitivity: cfg.Camera.MouseSensitivity,
			Fov:              cfg.Camera.Fov,
		},
	)
}

// YAML renders the config in the layout Load reads.
func (cfg *Config) YAML() ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (cfg *Config) ClearColor() mgl32.Vec4 {
	var c mgl32.Vec4
	copy(c[:], cfg.Scene.ClearColor)
	return c
}

func vec3Slice(v mgl32.Vec3) []float32 {
	return []float32{v[0], v[1], v[2]}
}

func sliceVec3(s []float32) mgl32.Vec3 {
	var v mgl32.Vec3
	copy(v[:], s)
	return v
}
