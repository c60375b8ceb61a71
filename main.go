package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const logFileName = "linetip.log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		exportPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "linetip [file]",
		Short: "Terminal line and curve editor with arrowheads",
		Long: `linetip edits multi-point lines and curves in the terminal. Either end
of a line can carry an arrowhead whose size, angle and length are set from
the toolbar. Drawings are saved as YAML and can be exported to PNG.`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logFile, err := setupLogging(debug)
			if err != nil {
				return err
			}
			if logFile != nil {
				defer logFile.Close()
			}

			if !cmd.Flags().Changed("config") {
				configPath = defaultConfigPath()
			}
			m := initialModel(loadConfig(configPath))

			if len(args) == 1 {
				if err := m.openFile(args[0]); err != nil {
					return err
				}
			}

			if exportPath != "" {
				if len(args) == 0 {
					return fmt.Errorf("--export needs a drawing to load")
				}
				return m.exportPNG(exportPath)
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.linetiprc)")
	cmd.Flags().StringVar(&exportPath, "export", "", "export the drawing to a PNG file and exit")
	cmd.Flags().BoolVar(&debug, "debug", false, "write a debug log to "+logFileName)
	return cmd
}

// setupLogging sends the std logger to a file when debugging and discards it
// otherwise, since the terminal belongs to the UI.
func setupLogging(debug bool) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(logFileName, "linetip")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
