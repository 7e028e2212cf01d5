package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"puppetgallery/internal/config"
	"puppetgallery/internal/domain"
	"puppetgallery/internal/gallery"
	"puppetgallery/internal/logging"
	"puppetgallery/internal/registry"
)

// ErrNoSource is returned when neither an argument nor the config names a gallery
var ErrNoSource = errors.New("no gallery source: pass a page or manifest, or set source in the config")

// app carries what every subcommand needs once the root has loaded it
type app struct {
	configPath string
	cfg        *config.Config
	log        zerolog.Logger
	closer     io.Closer
}

func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "puppetgallery",
		Short: "Browse and render puppet theatre galleries",
		Long: `Puppetgallery reads a gallery page (HTML) or manifest (YAML) and lets you
filter, search and zoom through its cards.

Use "browse" for the interactive terminal gallery, "render" to replay
gallery operations onto the page markup, and "list" to print the visible
sequence for scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return a.load()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closer != nil {
				_ = a.closer.Close()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $PUPPETGALLERY_CONFIG or the user config dir)")

	cmd.AddCommand(newBrowseCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newListCmd(a))

	return cmd
}

func (a *app) load() error {
	path := a.configPath
	if path == "" {
		path = os.Getenv("PUPPETGALLERY_CONFIG")
	}
	svc := config.NewConfigService()
	if path != "" {
		svc = config.NewConfigServiceAt(path)
	}

	cfg, err := svc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv()
	cfg.Normalize()
	a.cfg = cfg

	a.log, a.closer = logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.File,
	})
	a.log.Debug().Str("config", svc.Path()).Msg("configuration loaded")
	return nil
}

// source picks the gallery source from the arguments or the config
func (a *app) source(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if a.cfg.Source != "" {
		return a.cfg.Source, nil
	}
	return "", ErrNoSource
}

// registry loads the source and applies the configured category override
func (a *app) registry(path string) (*registry.Registry, error) {
	reg, err := registry.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Info().Str("source", filepath.Base(path)).Int("items", reg.Len()).Msg("gallery loaded")
	return reg.WithCategories(a.cfg.CategoryList()), nil
}

func (a *app) controllerOptions() []gallery.Option {
	return []gallery.Option{
		gallery.WithLogger(a.log),
		gallery.WithSwipeThreshold(a.cfg.Lightbox.SwipeThreshold),
		gallery.WithMobileBreakpoint(a.cfg.View.MobileBreakpoint),
		gallery.WithDefaultView(domain.ViewMode(a.cfg.Gallery.DefaultView)),
	}
}
