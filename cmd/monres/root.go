package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/greyfell/monres"
	"github.com/greyfell/monres/internal/config"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "monres",
		Short: "Resolve the primary monitor's resolution before any window exists",
		Long: "monres queries the display server for the primary monitor's physical\n" +
			"resolution over a short-lived connection and derives scale-dependent\n" +
			"layout values, so windows can be created with explicit dimensions\n" +
			"instead of racing the compositor.",
		RunE:         runResolve,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/monres/config.yaml)")
	root.PersistentFlags().String("log-level", "", "Log level (trace|debug|info|warn|error)")
	root.Flags().Bool("json", false, "Emit the result as JSON (default when stdout is not a terminal)")
	root.Flags().String("title", "", "Window title override")
	root.Flags().Bool("windowed", false, "Assemble a windowed instead of fullscreen config")

	root.AddCommand(newProbeCmd(), newConfigCmd(), newMCPCmd())
	return root
}

// newViper binds flags and MONRES_* environment variables. Priority:
// flags over env over config file over defaults.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("MONRES")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}
	if err := v.BindPFlags(cmd.InheritedFlags()); err != nil {
		return nil, fmt.Errorf("error binding inherited flags: %w", err)
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := v.GetString("config"); path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if title := v.GetString("title"); title != "" {
		cfg.Window.Title = title
	}
	if v.GetBool("windowed") {
		cfg.Window.Fullscreen = false
	}
	if level := v.GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	return cfg, nil
}

func setupLogging(cfg *config.Config) {
	logrus.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

// resolveReport is the machine-readable form of a resolver outcome.
type resolveReport struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Status      string  `json:"status"`
	ScaleFactor float64 `json:"scale_factor"`
	TileSize    float64 `json:"tile_size"`
	Margin      float64 `json:"margin"`
	Title       string  `json:"title"`
	Fullscreen  bool    `json:"fullscreen"`
	Monitor     string  `json:"monitor,omitempty"`
}

func runResolve(cmd *cobra.Command, _ []string) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	opts := append(cfg.ResolverOptions(), monres.WithLogger(logrus.StandardLogger()))
	result := monres.NewResolver(opts...).Resolve(cfg.ScalingBaseline())

	report := resolveReport{
		Width:       result.Config.Width,
		Height:      result.Config.Height,
		Status:      string(result.Status),
		ScaleFactor: result.ScaleFactor,
		TileSize:    result.Config.TileSize,
		Margin:      result.Config.Margin,
		Title:       result.Config.Title,
		Fullscreen:  result.Config.Fullscreen,
		Monitor:     result.Monitor.Name,
	}

	if v.GetBool("json") || !term.IsTerminal(int(os.Stdout.Fd())) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	line := fmt.Sprintf("%dx%d (%s, scale %.4f)", report.Width, report.Height, report.Status, report.ScaleFactor)
	if report.Monitor != "" {
		line += " on " + report.Monitor
	}
	fmt.Println(line)
	return nil
}
