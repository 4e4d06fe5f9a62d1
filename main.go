package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "0.2.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "patchbay",
	Short:         "patchbay — a terminal node-graph editor",
	Long:          "patchbay is a terminal node-graph editor: pan and zoom a canvas,\ndrag nodes around, and wire output ports to input ports with the mouse.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		p := tea.NewProgram(
			initialModel(cfg),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("patchbay: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default ~/.patchbay.toml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
