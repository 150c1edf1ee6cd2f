// Package main provides the CLI entrypoint for quotype.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/quotype/quotype/internal/catalog"
	"github.com/quotype/quotype/internal/config"
	"github.com/quotype/quotype/internal/model"
	"github.com/quotype/quotype/internal/progress"
	"github.com/quotype/quotype/internal/selector"
	"github.com/quotype/quotype/internal/session"
	"github.com/quotype/quotype/internal/stats"
	"github.com/quotype/quotype/internal/statsui"
	"github.com/quotype/quotype/internal/storage"
	"github.com/quotype/quotype/internal/tui"
)

const (
	defaultDuration      = 60
	defaultDifficulty    = "auto"
	defaultHistoryLimit  = 100
	defaultRetentionDays = 365
	defaultPlainWidth    = 80
)

var (
	testDuration      int
	testDifficulty    string
	testHistoryLimit  int
	testRetentionDays int

	statsPlain bool
	statsLimit int

	quotesDifficulty string
	quotesCategory   string
	quotesAuthor     string

	exportOut string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "quotype",
		Short:         "TUI typing speed test on famous quotes",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTestCmd,
	}

	rootCmd.Flags().IntVar(&testDuration, "duration", defaultDuration, "test length in seconds (15, 30, 60, 120)")
	rootCmd.Flags().StringVar(&testDifficulty, "difficulty", defaultDifficulty, "passage difficulty (auto, easy, medium, hard)")
	rootCmd.Flags().IntVar(&testHistoryLimit, "history-limit", defaultHistoryLimit, "max stored history entries")
	rootCmd.Flags().IntVar(&testRetentionDays, "retention-days", defaultRetentionDays, "days to keep history entries")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newQuotesCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newCleanupCmd())

	return rootCmd
}

func runTestCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &testDuration, fileCfg.Test.Duration)
	applyStringConfig(cmd, "difficulty", &testDifficulty, fileCfg.Test.Difficulty)
	applyIntConfig(cmd, "history-limit", &testHistoryLimit, fileCfg.Test.HistoryLimit)
	applyIntConfig(cmd, "retention-days", &testRetentionDays, fileCfg.Test.RetentionDays)

	if err := validateTestFlags(); err != nil {
		return err
	}

	st, closeStore, err := openProgressStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx := context.Background()
	settings := st.Settings(ctx)
	if settings.HistoryLimit != testHistoryLimit || settings.RetentionDays != testRetentionDays {
		settings.HistoryLimit = testHistoryLimit
		settings.RetentionDays = testRetentionDays
		st.SetSettings(ctx, settings)
	}
	st.MaybeDailyCleanup(ctx)

	sess := session.New(selector.New(catalog.New()))
	if testDifficulty != defaultDifficulty {
		level, ok := model.ParseDifficulty(testDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (use auto, easy, medium, or hard)", testDifficulty)
		}
		sess.ForceDifficulty(level)
	}

	m := tui.NewModel(sess, st, testDuration)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func validateTestFlags() error {
	valid := false
	for _, d := range model.Durations {
		if d == testDuration {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("--duration must be one of 15, 30, 60, 120")
	}
	if testHistoryLimit <= 0 {
		return fmt.Errorf("--history-limit must be > 0")
	}
	if testRetentionDays <= 0 {
		return fmt.Errorf("--retention-days must be > 0")
	}
	return nil
}

func openProgressStore() (*progress.Store, func(), error) {
	kv, err := storage.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	closeStore := func() {
		if cerr := kv.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}
	return progress.NewStore(kv), closeStore, nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show progress stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print stats to stdout instead of the TUI")
	cmd.Flags().IntVar(&statsLimit, "limit", 10, "history rows in plain output")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, closeStore, err := openProgressStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if statsPlain {
		return runPlainStats(cmd, st)
	}

	m := statsui.NewModel(st)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func runPlainStats(cmd *cobra.Command, st *progress.Store) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()
	width := stats.TermWidth(defaultPlainWidth)

	history := st.History(ctx)
	if err := stats.RenderSummary(out, history, width); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := stats.RenderBests(out, st.Bests(ctx)); err != nil {
		return fmt.Errorf("failed to render bests: %w", err)
	}
	if err := stats.RenderStreak(out, st.Streak(ctx)); err != nil {
		return fmt.Errorf("failed to render streak: %w", err)
	}
	if err := stats.RenderAchievements(out, st.Achievements(ctx)); err != nil {
		return fmt.Errorf("failed to render achievements: %w", err)
	}
	if err := stats.RenderHistory(out, history, statsLimit); err != nil {
		return fmt.Errorf("failed to render history: %w", err)
	}
	return nil
}

func newQuotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotes",
		Short: "Inspect the quote catalog",
		Args:  cobra.NoArgs,
		RunE:  runQuotesCmd,
	}
	cmd.Flags().StringVar(&quotesDifficulty, "difficulty", "", "list quotes of one difficulty")
	cmd.Flags().StringVar(&quotesCategory, "category", "", "list quotes in one category")
	cmd.Flags().StringVar(&quotesAuthor, "author", "", "list quotes by author substring")
	return cmd
}

func runQuotesCmd(cmd *cobra.Command, _ []string) error {
	cat := catalog.New()
	out := cmd.OutOrStdout()

	var listed []model.Quote
	switch {
	case quotesDifficulty != "":
		level, ok := model.ParseDifficulty(quotesDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, medium, or hard)", quotesDifficulty)
		}
		listed = cat.ByDifficulty(level)
	case quotesCategory != "":
		listed = cat.ByCategory(quotesCategory)
	case quotesAuthor != "":
		listed = cat.ByAuthor(quotesAuthor)
	default:
		fmt.Fprintf(out, "%d quotes\n\n", cat.Len())
		fmt.Fprintln(out, "By difficulty:")
		counts := cat.CountByDifficulty()
		for _, level := range model.Difficulties() {
			fmt.Fprintf(out, "  %-8s %d\n", level, counts[level])
		}
		fmt.Fprintln(out, "\nCategories:")
		for _, c := range cat.Categories() {
			fmt.Fprintf(out, "  %s\n", c)
		}
		fmt.Fprintln(out, "\nAuthors:")
		for _, a := range cat.Authors() {
			fmt.Fprintf(out, "  %s\n", a)
		}
		return nil
	}

	if len(listed) == 0 {
		return fmt.Errorf("no quotes matched")
	}
	for _, q := range listed {
		fmt.Fprintf(out, "[%s/%s] %s — %s\n", q.Difficulty, q.Category, q.Text, q.Author)
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

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export progress data to a JSON backup",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportOut, "out", "", "output file (default: stdout)")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	st, closeStore, err := openProgressStore()
	if err != nil {
		return err
	}
	defer closeStore()

	bundle := st.ExportAll(context.Background())
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}
	data = append(data, '\n')

	if exportOut == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(exportOut, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	logErrf("Wrote %s\n", exportOut)
	return nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import progress data from a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
}

func runImportCmd(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	bundle, err := progress.DecodeBundle(raw)
	if err != nil {
		return fmt.Errorf("failed to decode backup: %w", err)
	}

	st, closeStore, err := openProgressStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := st.ImportAll(context.Background(), bundle); err != nil {
		return fmt.Errorf("failed to import backup: %w", err)
	}
	logErrln("Backup imported")
	return nil
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored progress data",
		Args:  cobra.NoArgs,
		RunE:  runResetCmd,
	}
}

func runResetCmd(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openProgressStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := st.ResetAll(context.Background()); err != nil {
		return fmt.Errorf("failed to reset data: %w", err)
	}
	logErrln("All progress data deleted")
	return nil
}

func newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove history entries past the retention window",
		Args:  cobra.NoArgs,
		RunE:  runCleanupCmd,
	}
}

func runCleanupCmd(_ *cobra.Command, _ []string) error {
	st, closeStore, err := openProgressStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if st.CleanupOldData(context.Background()) {
		logErrln("Removed expired history entries")
		return nil
	}
	logErrln("Nothing to clean up")
	return nil
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

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# quotype configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# duration = %d          # Test length in seconds (15, 30, 60, 120)
# difficulty = %q      # Passage difficulty (auto, easy, medium, hard)
# history-limit = %d    # Max stored history entries
# retention-days = %d   # Days to keep history entries
`,
		defaultDuration,
		defaultDifficulty,
		defaultHistoryLimit,
		defaultRetentionDays,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
