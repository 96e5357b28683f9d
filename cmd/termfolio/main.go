// Package main provides the CLI entrypoint for termfolio.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ajeetyadav1111/termfolio/internal/avatar"
	"github.com/ajeetyadav1111/termfolio/internal/config"
	"github.com/ajeetyadav1111/termfolio/internal/content"
	"github.com/ajeetyadav1111/termfolio/internal/model"
	"github.com/ajeetyadav1111/termfolio/internal/tracker"
	"github.com/ajeetyadav1111/termfolio/internal/tui"
	"github.com/ajeetyadav1111/termfolio/internal/typing"
)

const (
	defaultSpeedMs         = int(typing.DefaultSpeed / time.Millisecond)
	defaultScrollThreshold = 2
	defaultRevealThreshold = tracker.DefaultRevealThreshold
	defaultLogLevel        = "info"
	defaultRenderWidth     = 100
)

var (
	uiSpeed           int
	uiScrollThreshold int
	uiRevealThreshold float64
	uiMouse           bool
	uiAvatar          string
	uiContent         string
	uiLogLevel        string
	uiLogFile         string

	renderWidth int
	renderLight bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termfolio",
		Short:         "Terminal portfolio",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPortfolioCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&uiSpeed, "speed", defaultSpeedMs, "typing speed in ms per character")
	flags.IntVar(&uiScrollThreshold, "scroll-threshold", defaultScrollThreshold, "rows scrolled before the navbar changes")
	flags.Float64Var(&uiRevealThreshold, "reveal-threshold", defaultRevealThreshold, "visible fraction that reveals a block (0-1]")
	flags.BoolVar(&uiMouse, "mouse", true, "enable mouse hover and clicks")
	flags.StringVar(&uiAvatar, "avatar", "", "profile image path (png, jpeg, gif)")
	flags.StringVar(&uiContent, "content", "", "content TOML path")
	flags.StringVar(&uiLogLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&uiLogFile, "log-file", "", "log file path")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newRenderCmd())

	return rootCmd
}

func runPortfolioCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := openLogger(uiLogFile, uiLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	c, err := loadContent(cfg.ContentPath)
	if err != nil {
		return err
	}
	pic := avatar.Load(cfg.AvatarPath)
	if pic.Err() != nil {
		log.WithError(pic.Err()).Debug("using avatar fallback")
	}

	log.WithFields(logrus.Fields{
		"speed":  cfg.TypingSpeed,
		"scroll": cfg.ScrollThreshold,
		"reveal": cfg.RevealThreshold,
		"mouse":  cfg.Mouse,
	}).Info("starting")

	m := tui.NewModel(tui.Options{
		Config:  cfg,
		Content: c,
		Avatar:  pic,
		Log:     log,
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion(), tea.WithReportFocus())
	}
	program := tea.NewProgram(m, opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	log.Info("exited")
	return nil
}

// loadConfig merges defaults, the config file and CLI flags, in that order.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	ui := fileCfg.UI
	applyIntConfig(cmd, "speed", &uiSpeed, ui.TypingSpeed)
	applyIntConfig(cmd, "scroll-threshold", &uiScrollThreshold, ui.ScrollThreshold)
	applyFloatConfig(cmd, "reveal-threshold", &uiRevealThreshold, ui.RevealThreshold)
	applyBoolConfig(cmd, "mouse", &uiMouse, ui.Mouse)
	applyStringConfig(cmd, "avatar", &uiAvatar, ui.Avatar)
	applyStringConfig(cmd, "content", &uiContent, ui.Content)
	applyStringConfig(cmd, "log-level", &uiLogLevel, ui.LogLevel)
	applyStringConfig(cmd, "log-file", &uiLogFile, ui.LogFile)

	cfg := model.Config{
		TypingSpeed:     time.Duration(uiSpeed) * time.Millisecond,
		ScrollThreshold: uiScrollThreshold,
		RevealThreshold: uiRevealThreshold,
		Mouse:           uiMouse,
		AvatarPath:      strings.TrimSpace(uiAvatar),
		ContentPath:     strings.TrimSpace(uiContent),
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	if _, err := logrus.ParseLevel(uiLogLevel); err != nil {
		return model.Config{}, fmt.Errorf("--log-level: %w", err)
	}
	return cfg, nil
}

// loadContent reads the content file. An explicit path must exist; the
// default path is optional.
func loadContent(path string) (model.Content, error) {
	if path == "" {
		path = config.DefaultContentPath()
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return content.Default(), nil
			}
			return model.Content{}, fmt.Errorf("failed to stat content: %w", err)
		}
	}
	c, err := content.Load(path)
	if err != nil {
		return model.Content{}, fmt.Errorf("failed to load content %s: %w", path, err)
	}
	return c, nil
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

func newContentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "content",
		Short: "Print the built-in content as a TOML template",
		Args:  cobra.NoArgs,
		RunE:  runContentCmd,
	}
}

func runContentCmd(cmd *cobra.Command, _ []string) error {
	if err := content.Write(cmd.OutOrStdout(), content.Default()); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a static frame of the portfolio",
		Args:  cobra.NoArgs,
		RunE:  runRenderCmd,
	}
	cmd.Flags().IntVar(&renderWidth, "width", 0, "frame width (default: terminal width)")
	cmd.Flags().BoolVar(&renderLight, "light", false, "use the light theme")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	c, err := loadContent(cfg.ContentPath)
	if err != nil {
		return err
	}
	width := renderWidth
	if width <= 0 {
		width = terminalWidth()
	}
	if width < 20 {
		return fmt.Errorf("--width must be >= 20")
	}
	out := tui.Render(c, avatar.Load(cfg.AvatarPath), !renderLight, width)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultRenderWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultRenderWidth
	}
	return width
}

// openLogger sends logs to a file, since the TUI owns the terminal.
func openLogger(path, level string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})

	if strings.TrimSpace(path) == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	return log, func() {
		if cerr := file.Close(); cerr != nil {
			logErrf("failed to close log file: %v\n", cerr)
		}
	}, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# termfolio configuration
# Uncomment a value to enable it. CLI flags override config values.

[ui]
# typing-speed = %d       # Milliseconds per typed character
# scroll-threshold = %d    # Rows scrolled before the navbar changes
# reveal-threshold = %.1f  # Visible fraction that reveals a block (0-1]
# mouse = true            # Hover effects and clicks
# avatar = ""             # Profile image (png, jpeg, gif)
# content = ""            # Content TOML (see: termfolio content)
# log-level = %q      # debug, info, warn, error
# log-file = ""           # Default: %s
`,
		defaultSpeedMs,
		defaultScrollThreshold,
		defaultRevealThreshold,
		defaultLogLevel,
		config.DefaultLogPath(),
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.TypingSpeed <= 0 {
		return fmt.Errorf("--speed must be > 0")
	}
	if cfg.ScrollThreshold < 0 {
		return fmt.Errorf("--scroll-threshold must be >= 0")
	}
	if cfg.RevealThreshold <= 0 || cfg.RevealThreshold > 1 {
		return fmt.Errorf("--reveal-threshold must be in (0, 1]")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
