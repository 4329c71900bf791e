package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"codex-tui/app"
	"codex-tui/commands"
	"codex-tui/config"
	"codex-tui/log"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "dev"

var (
	programFlag string
	configFlag  string
	debugFlag   bool
	noColorFlag bool

	rootCmd = &cobra.Command{
		Use:   "codex-tui",
		Short: "Terminal front-end for a coding assistant",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return errors.New("codex-tui needs an interactive terminal")
			}

			log.Initialize(debugFlag)
			defer log.Close()

			cfg, state, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if noColorFlag {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			return app.Run(cmd.Context(), cfg, state)
		},
	}

	commandsCmd = &cobra.Command{
		Use:   "commands",
		Short: "List the slash commands available in the composer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCommands(cmd.OutOrStdout(), commands.BuiltIn())
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of codex-tui",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "codex-tui version %s\n", version)
		},
	}
)

// loadSettings reads the config file and the state file stored next to it.
func loadSettings(cmd *cobra.Command) (*config.Config, config.StateManager, error) {
	var (
		cfg   *config.Config
		state *config.State
		err   error
	)
	if configFlag != "" {
		cfg, err = config.LoadConfigFrom(configFlag)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// The state file is only touched once the config is known to be good.
	if configFlag != "" {
		state = config.LoadStateFrom(filepath.Join(filepath.Dir(configFlag), config.StateFileName))
	} else {
		state = config.LoadState()
	}

	if cmd.Flags().Changed("program") {
		cfg.Program = strings.TrimSpace(programFlag)
	}
	return cfg, state, nil
}

func printCommands(w io.Writer, r *commands.Registry) error {
	for _, c := range r.Sorted() {
		if _, err := fmt.Fprintf(w, "/%s – %s\n", strings.TrimPrefix(c.Name(), "/"), c.Description()); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.Flags().StringVarP(&programFlag, "program", "p", "",
		"Program to run for each prompt; the prompt is passed as the last argument")
	rootCmd.Flags().StringVar(&configFlag, "config", "",
		"Path to config.yaml (default ~/.codex-tui/config.yaml)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Write debug logs")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Render without colours")

	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
