package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cubecam/demo/config"
	"cubecam/demo/gui"
	"cubecam/demo/logger"
)

var (
	cfgFile  string
	scene    string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "cubecam",
	Short: "Fly a camera around a few cubes",
	Long: `cubecam opens a window with a textured or lit cube scene and a
free-fly camera.

Controls:
  W/S/A/D  move (rebind under "input" in the config)
  mouse    look around
  Escape   quit

Configuration is read from --config or ./cubecam.yaml, then CUBECAM_*
environment variables, e.g. CUBECAM_SCENE_MODE=lit.`,
	SilenceUsage: true,
	RunE:         runRoot,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	RunE:  runConfig,
}

func init() {
	// GL and glfw calls must come from the main thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./cubecam.yaml)")
	rootCmd.PersistentFlags().StringVar(&scene, "scene", "", "scene: textured or lit (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if scene != "" {
		cfg.Scene.Mode = scene
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			fmt.Fprintln(os.Stderr, "close log:", cerr)
		}
	}()

	log.Info("starting", zap.String("scene", cfg.Scene.Mode), zap.String("config", cfgFile))
	if err = gui.Run(cfg, log); err != nil {
		log.Error("run", zap.Error(err))
		return err
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
