// cmd/landing/main.go
package main

import (
	"fmt"
	"os"

	"freedom-layer/internal/config"
	"freedom-layer/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool
	seed       int64
	watch      bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "landing",
	Short: "The Freedom Layer landing page",
	Long: `Renders The Freedom Layer landing page: a particle field spelling the
product name that scatters away from the pointer, a particle button and the
information panel below the fold.

Run without a subcommand to open the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging.Level, verbose)
		if err != nil {
			return err
		}
		logger.Debug("config loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the landing page window",
	RunE:  runWindow,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render frames headlessly and save them as PNG",
	Long: `Steps the headline field and the button emitter for a number of frames
on the software rasteriser and writes the last frame of each to a PNG file.`,
	RunE: runSnapshot,
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the particle field in the terminal",
	Long: `Draws the headline field with braille characters. The mouse repels the
particles; q, Esc or Ctrl-C quits.`,
	RunE: runTerm,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML tuning file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Random seed (0 = time based)")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the config file when it changes")
	runCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the config file when it changes")

	snapshotCmd.Flags().IntVar(&snapshotFrames, "frames", 120, "Number of frames to simulate")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 0, "Field width (default: window width)")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 0, "Field height (default: window height)")
	snapshotCmd.Flags().StringVar(&snapshotPointer, "pointer", "", "Pointer position as x,y")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "field.png", "Output file for the field")
	snapshotCmd.Flags().StringVar(&snapshotButtonOut, "button-out", "button.png", "Output file for the button")

	termCmd.Flags().IntVar(&termFPS, "fps", 30, "Frames per second")

	rootCmd.AddCommand(runCmd, snapshotCmd, termCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
