package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drillmap/internal/boundary"
	"drillmap/internal/config"
	"drillmap/internal/logger"
	"drillmap/internal/tui"
)

var (
	cfgFile  string
	logLevel string
	logFile  string
	maxLevel int
	area     string
)

var rootCmd = &cobra.Command{
	Use:   "drillmap [data-source]",
	Short: "Drill-down administrative boundary map for the terminal",
	Long: `drillmap renders administrative boundaries (level_1.json, level_2.json and
an optional level_3.json) as a braille map. Click an area to drill into it,
click a child area to highlight it, press b to go back.

data-source is a directory or an http(s) base URL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists", cfgFile)
		}
		if err := config.DefaultConfig().Save(cfgFile); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "drillmap.yml", "config file path")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "log file path")
	rootCmd.Flags().IntVar(&maxLevel, "max-level", 0, "deepest drill-down level")
	rootCmd.Flags().StringVar(&area, "area", "", "top-level area to select at start")
	rootCmd.AddCommand(configCmd)
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Data.Source = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("max-level") {
		cfg.Map.MaxLevel = maxLevel
	}
	if flags.Changed("area") {
		cfg.Map.InitialArea = area
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return err
	}
	defer log.Sync()

	src := boundary.NewSource(cfg.Data.Source, cfg.Data.Timeout)
	log.Info("starting drillmap",
		zap.String("source", cfg.Data.Source),
		zap.Int("max_level", cfg.Map.MaxLevel))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	m := tui.New(ctx, cfg, boundary.NewLoader(src, log), log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
