// Package main implements dockpane - a tiling pane manager for the
// terminal built on a nestable layout tree.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dockpane/dockpane/internal/app"
	"github.com/dockpane/dockpane/internal/config"
	"github.com/dockpane/dockpane/internal/layout"
	"github.com/dockpane/dockpane/internal/theme"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

// Command-line flags
var (
	debugMode   bool
	themeName   string
	borderStyle string
	layoutPath  string
	watchLayout bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dockpane",
		Short: "Tiling pane manager for the terminal",
		Long: `dockpane - Tiling Pane Manager

Arranges panes in a nestable tree of rows, columns and tabbed stacks.
Panes can be split, tabbed, maximised and popped out into floating
windows; the whole arrangement persists as a TOML layout file and can be
reloaded live while the file is edited.`,
		Example: `  # Start with the saved layout (or the default one)
  dockpane

  # Start from a specific layout file and reload it on change
  dockpane --layout ./layout.toml --watch

  # Start with a specific theme
  dockpane --theme dracula`,
		Version: version,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run()
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging to $TMPDIR/dockpane.log")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Color theme to use (e.g., dracula, nord, tokyonight)")
	rootCmd.Flags().StringVar(&borderStyle, "border-style", "", "Pane border style: rounded, normal, thick")
	rootCmd.Flags().StringVar(&layoutPath, "layout", "", "Layout file to load (defaults to the saved layout)")
	rootCmd.Flags().BoolVar(&watchLayout, "watch", false, "Reload the layout file when it changes")

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s\nBy: %s", version, commit, date, builtBy)),
	); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := log.New(os.Stderr)
	if debugMode {
		f, err := os.OpenFile(os.TempDir()+"/dockpane.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer f.Close()
			logger = log.New(f)
			logger.SetLevel(log.DebugLevel)
		}
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		userConfig = config.DefaultConfig()
	}
	if borderStyle != "" {
		userConfig.Appearance.BorderStyle = borderStyle
	}
	if themeName == "" {
		themeName = userConfig.Theme
	}
	if err := theme.Initialize(themeName); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load theme '%s': %v\n", themeName, err)
	}

	rootCfg, path := loadInitialLayout(logger)

	desk, err := app.NewDesk(userConfig, rootCfg, logger)
	if err != nil {
		return fmt.Errorf("build layout: %w", err)
	}

	if watchLayout && path != "" {
		watcher, err := config.WatchLayout(path, func() {
			reloaded, err := config.LoadLayout(path)
			if err != nil {
				logger.Error("layout reload skipped", "err", err)
				return
			}
			select {
			case desk.LayoutChangeChan <- reloaded:
			default:
			}
		})
		if err != nil {
			logger.Warn("layout watching disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	program := tea.NewProgram(desk)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// loadInitialLayout resolves the starting layout: the --layout flag, then
// the saved layout, then a stock single-pane arrangement.
func loadInitialLayout(logger *log.Logger) (layout.ItemConfig, string) {
	path := layoutPath
	if path == "" {
		saved, err := config.LayoutPath()
		if err == nil {
			path = saved
		}
	}
	if path != "" {
		if rootCfg, err := config.LoadLayout(path); err == nil {
			return rootCfg, path
		} else if layoutPath != "" {
			// An explicitly requested layout that fails to load is worth a
			// warning; the default save path simply not existing is not.
			logger.Warn("layout load failed", "path", path, "err", err)
		}
	}
	return defaultLayout(), path
}

func defaultLayout() layout.ItemConfig {
	return layout.ItemConfig{
		Kind: layout.KindRoot,
		Content: []layout.ItemConfig{{
			Kind: layout.KindRow,
			Content: []layout.ItemConfig{
				{Kind: layout.KindComponent, ComponentName: "main", Width: 70},
				{
					Kind:  layout.KindStack,
					Width: 30,
					Content: []layout.ItemConfig{
						{Kind: layout.KindComponent, ComponentName: "side"},
						{Kind: layout.KindComponent, ComponentName: "logs"},
					},
				},
			},
		}},
	}
}
