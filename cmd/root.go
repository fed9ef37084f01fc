package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hbruun/marvelgo/config"
	"github.com/hbruun/marvelgo/filter"
	"github.com/hbruun/marvelgo/marvel"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *marvel.Client

	// Command flags
	filterExpr string
	preset     string
	limit      int
	offset     int
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "marvelgo",
	Short: "A CLI for browsing the Marvel Comics API",
	Long: `marvelgo is a CLI tool for querying the Marvel Comics API: characters,
comics, creators, events, series and stories. Server-side query parameters
handle pagination and common lookups, and an optional expression filter
refines results client-side.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Commands that don't talk to the API skip config loading entirely.
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "update", "help", "completion":
			return nil
		}
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = marvel.NewClient(cfg.Marvel.PublicKey, cfg.Marvel.PrivateKey, logger,
		marvel.WithBaseURL(cfg.Marvel.BaseURL),
		marvel.WithTimeout(time.Duration(cfg.Marvel.Timeout*float64(time.Second))),
		marvel.WithMaxRetries(cfg.Marvel.MaxRetries),
	)
	if err != nil {
		return fmt.Errorf("failed to create Marvel client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// addListFlags registers the flags shared by every list command
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of results to fetch")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "number of results to skip")
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// listOptions builds the pagination options from the shared flags
func listOptions() marvel.ListOptions {
	return marvel.ListOptions{
		Limit:  marvel.Int(limit),
		Offset: marvel.Int(offset),
	}
}

// compileFilter resolves --filter/--preset into a compiled filter, or nil
// when neither is set.
func compileFilter() (*filter.Filter, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		presetExpr, ok := cfg.Filter[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = presetExpr
	}

	if expression == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return f, nil
}

// filterResults applies an optional compiled filter to a result page
func filterResults[T any](f *filter.Filter, results []T) ([]T, error) {
	if f == nil {
		return results, nil
	}
	return filter.Apply(f, results)
}

// printPage prints the list header and footer around per-row output.
// results may be a filtered subset of the page in data.
func printPage[T any](data *marvel.DataContainer[T], results []T, attribution string, printRow func(T)) {
	if len(results) == 0 {
		fmt.Println("No results found.")
		return
	}

	fmt.Printf("\nShowing %d of %d results (offset %d):\n", len(results), data.Total, data.Offset)
	fmt.Println(strings.Repeat("-", 80))

	for _, item := range results {
		printRow(item)
	}

	printAttribution(attribution)
}

// printAttribution prints the attribution notice the API requires
func printAttribution(text string) {
	if text != "" {
		fmt.Printf("\n%s\n", text)
	}
}
