// Package main provides the CLI entrypoint for typerush.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typerush/internal/config"
	"github.com/verte-zerg/typerush/internal/generator"
	"github.com/verte-zerg/typerush/internal/log"
	"github.com/verte-zerg/typerush/internal/model"
	"github.com/verte-zerg/typerush/internal/stats"
	"github.com/verte-zerg/typerush/internal/tone"
	"github.com/verte-zerg/typerush/internal/tui"
	"github.com/verte-zerg/typerush/internal/wordbank"
)

var (
	gameSound       bool
	gameNoAudio     bool
	gameSeed        int64
	gameEasyWords   string
	gameMediumWords string
	gameHardWords   string
	gameLogPath     string

	wordsCategory string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typerush",
		Short:         "Type the words before the countdown runs out",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	addWordFlags(rootCmd)
	rootCmd.Flags().BoolVar(&gameSound, "sound", false, "start with keystroke tones enabled")
	rootCmd.Flags().BoolVar(&gameNoAudio, "no-audio", false, "never open an audio device")
	rootCmd.Flags().Int64Var(&gameSeed, "seed", 0, "random seed for word selection (0 = time based)")
	rootCmd.Flags().StringVar(&gameLogPath, "log-path", "", "directory for the diagnostics log")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func addWordFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&gameEasyWords, "easy-words", "", "file with easy words, one per line")
	cmd.Flags().StringVar(&gameMediumWords, "medium-words", "", "file with medium words, one per line")
	cmd.Flags().StringVar(&gameHardWords, "hard-words", "", "file with hard words, one per line")
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "sound", &gameSound, fileCfg.Game.Sound)
	applyConfig(cmd, "seed", &gameSeed, fileCfg.Game.Seed)
	applyConfig(cmd, "easy-words", &gameEasyWords, fileCfg.Game.EasyWords)
	applyConfig(cmd, "medium-words", &gameMediumWords, fileCfg.Game.MediumWords)
	applyConfig(cmd, "hard-words", &gameHardWords, fileCfg.Game.HardWords)
	applyConfig(cmd, "log-path", &gameLogPath, fileCfg.Game.LogPath)

	return model.Config{
		Sound:       gameSound,
		NoAudio:     gameNoAudio,
		Seed:        gameSeed,
		EasyWords:   gameEasyWords,
		MediumWords: gameMediumWords,
		HardWords:   gameHardWords,
		LogPath:     gameLogPath,
	}, nil
}

func loadBank(cfg model.Config) (*wordbank.Bank, error) {
	bank := wordbank.Builtin()
	err := bank.LoadOverrides(map[model.Category]string{
		model.Easy:   cfg.EasyWords,
		model.Medium: cfg.MediumWords,
		model.Hard:   cfg.HardWords,
	})
	if err != nil {
		return nil, err
	}
	return bank, nil
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("typerush needs an interactive terminal")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	logDir, err := log.ResolveDir(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("failed to resolve log directory: %w", err)
	}
	logFile, err := log.Open(logDir)
	if err != nil {
		logErrf("diagnostics log disabled: %v\n", err)
	} else {
		logger = logFile.Logger
		defer func() {
			if cerr := logFile.Close(); cerr != nil {
				logErrf("failed to close log: %v\n", cerr)
			}
		}()
	}

	var backend tone.Backend = tone.Silent{}
	if !cfg.NoAudio {
		backend = tone.NewBackend()
	}
	player := tone.NewPlayer(backend, logger)
	player.SetEnabled(cfg.Sound && !cfg.NoAudio)

	logger.Info().Int64("seed", cfg.Seed).Bool("sound", player.Enabled()).Msg("launch")
	m := tui.NewModel(bank, generator.NewSeeded(cfg.Seed), player, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, runErr := program.Run()
	if err := player.Close(); err != nil {
		logger.Warn().Err(err).Msg("audio shutdown failed")
	}
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Show the level table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderLevels(cmd.OutOrStdout())
		},
	}
}

func renderLevels(w io.Writer) error {
	if err := stats.RenderLevelTable(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderTierTable(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show word bank sizes or list a category",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	addWordFlags(cmd)
	cmd.Flags().StringVar(&wordsCategory, "category", "", "list the words of one category (easy, medium, hard)")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	bank, err := loadBank(cfg)
	if err != nil {
		return err
	}
	return renderWords(cmd.OutOrStdout(), bank, wordsCategory)
}

func renderWords(w io.Writer, bank *wordbank.Bank, category string) error {
	if category == "" {
		counts := make(map[model.Category]int, len(model.Categories))
		for _, cat := range model.Categories {
			counts[cat] = len(bank.Words(cat))
		}
		if err := stats.RenderWordCounts(w, counts); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	cat, err := wordbank.ParseCategory(strings.ToLower(strings.TrimSpace(category)))
	if err != nil {
		return err
	}
	for _, word := range bank.Words(cat) {
		if _, err := fmt.Fprintln(w, word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// applyConfig copies a config file value into a flag target unless the flag
// was set on the command line. Flags the command does not define are skipped.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	flag := cmd.Flags().Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# typerush configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# sound = false                 # Start with keystroke tones enabled
# seed = 0                      # Random seed for word selection (0 = time based)
# easy-words = "/path/easy.txt" # Replace the easy word list (one word per line)
# medium-words = ""             # Replace the medium word list
# hard-words = ""               # Replace the hard word list
# log-path = ""                 # Directory for the diagnostics log
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
