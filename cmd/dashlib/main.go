package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gigc-analytics/dashlib/pkg/config"
	"github.com/gigc-analytics/dashlib/pkg/frame"
	"github.com/gigc-analytics/dashlib/pkg/logger"
	stringutil "github.com/gigc-analytics/dashlib/pkg/strings"
)

var version = "0.1.0"

func main() {
	var configFile string
	var logLevel string

	root := &cobra.Command{
		Use:   "dashlib",
		Short: "dashlib - dashboard data toolkit",
		Long: `dashlib prepares tabular extracts for dashboard refresh jobs.
It loads CSV extracts into typed columnar frames, shrinks their memory
footprint by downcasting numeric columns, and provides small lookup
helpers used across the update scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile, logLevel)
			if err != nil {
				return err
			}
			if err := logger.Init(logger.Config{
				Level:       cfg.Log.Level,
				Development: cfg.Log.Development,
				Encoding:    cfg.Log.Encoding,
			}); err != nil {
				return err
			}
			currentConfig = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the log level")

	root.AddCommand(versionCommand())
	root.AddCommand(shrinkCommand())
	root.AddCommand(findCommand())
	root.AddCommand(statsCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// currentConfig holds the configuration resolved in PersistentPreRunE
var currentConfig = config.Default()

// loadConfig layers file, environment, and flag overrides over defaults
func loadConfig(configFile, logLevel string) (*config.Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DASHLIB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := config.Default()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.encoding", defaults.Log.Encoding)
	v.SetDefault("log.development", defaults.Log.Development)
	v.SetDefault("csv.delimiter", defaults.CSV.Delimiter)
	v.SetDefault("csv.comment", defaults.CSV.Comment)
	v.SetDefault("csv.has_header", defaults.CSV.HasHeader)
	v.SetDefault("csv.null_values", defaults.CSV.NullValues)
	v.SetDefault("csv.trim_space", defaults.CSV.TrimSpace)
	v.SetDefault("shrink.verbose", defaults.Shrink.Verbose)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := config.Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func csvOptions(cfg *config.Config) frame.CSVOptions {
	opts := frame.CSVOptions{
		Delimiter:  []rune(cfg.CSV.Delimiter)[0],
		HasHeader:  cfg.CSV.HasHeader,
		NullValues: cfg.CSV.NullValues,
		TrimSpace:  cfg.CSV.TrimSpace,
	}
	if cfg.CSV.Comment != "" {
		opts.Comment = []rune(cfg.CSV.Comment)[0]
	}
	return opts
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dashlib v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func shrinkCommand() *cobra.Command {
	var output string
	var jsonOutput string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "shrink INPUT.csv",
		Short: "Downcast a CSV extract's numeric columns and report memory usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := frame.ReadCSV(args[0], csvOptions(currentConfig))
			if err != nil {
				return err
			}

			reducer := frame.NewReducer()
			reducer.Verbose = currentConfig.Shrink.Verbose && !quiet
			_, stats := reducer.ShrinkWithStats(f)

			logger.Info("shrink complete",
				zap.String("input", args[0]),
				zap.Int("columns_changed", stats.ColumnsChanged),
				zap.Int64("bytes_saved", stats.BeforeBytes-stats.AfterBytes))

			for _, name := range f.Columns() {
				col, _ := f.GetColumn(name)
				fmt.Printf("%-24s %s\n", name, col.DType())
			}

			if output != "" {
				if err := frame.WriteCSV(f, output); err != nil {
					return err
				}
			}
			if jsonOutput != "" {
				file, err := os.Create(jsonOutput)
				if err != nil {
					return err
				}
				defer file.Close()
				if err := frame.WriteJSON(f, file); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the shrunk frame back to a CSV file")
	cmd.Flags().StringVar(&jsonOutput, "json", "", "write the shrunk frame to a JSON file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the before/after memory diagnostic")
	return cmd
}

func findCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find PATTERN [CANDIDATE...]",
		Short: "Print the first candidate containing the pattern",
		Long: `Print the first candidate string containing PATTERN as a substring.
Candidates come from the remaining arguments, or from stdin one per line
when no candidates are given. Exits non-zero when nothing matches.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			candidates := args[1:]

			if len(candidates) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					candidates = append(candidates, scanner.Text())
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			finder := stringutil.Finder{Output: cmd.ErrOrStderr()}
			match, ok := finder.Find(pattern, candidates)
			if !ok {
				return fmt.Errorf("no candidate contains %q", pattern)
			}
			fmt.Fprintln(cmd.OutOrStdout(), match)
			return nil
		},
	}
}

func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats INPUT.csv",
		Short: "Report a CSV extract's frame layout and memory usage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := frame.ReadCSV(args[0], csvOptions(currentConfig))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows: %d\ncolumns: %d\n", f.RowCount(), f.ColumnCount())
			for _, name := range f.Columns() {
				col, _ := f.GetColumn(name)
				fmt.Fprintf(out, "%-24s %-8s %d bytes\n", name, col.DType(), col.MemoryUsage())
			}
			fmt.Fprintf(out, "total: %d bytes (%.2f bytes/row)\n", f.MemoryUsage(), f.MemoryPerRow())
			return nil
		},
	}
}
