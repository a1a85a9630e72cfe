// roslog - command line front end for the native ROS 2 logging facade.
//
// The binary exists for operability, not for routing log traffic:
//   - probe: initialise the native subsystem once and report its state
//   - emit: push test records through the full emission path
//   - args: show the argument vector a config file derives to
//
// It talks to the same process-wide facade the library exposes, so a probe
// on a target host exercises exactly the code path an embedding
// application would.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Cyberunner23/roslog"
	"github.com/Cyberunner23/roslog/internal/diag"
	"github.com/Cyberunner23/roslog/internal/rcl"
	"github.com/Cyberunner23/roslog/rosargs"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "/etc/roslog/config.yaml"

// probeReport is the JSON document the probe subcommand prints.
type probeReport struct {
	Version    string       `json:"version"`
	RCUtilsLib string       `json:"rcutils_lib"`
	RCLLib     string       `json:"rcl_lib"`
	InstanceID string       `json:"instance_id"`
	Arguments  []string     `json:"arguments"`
	Stats      roslog.Stats `json:"stats"`
}

func main() {
	log := diag.Default()

	rootCmd := &cobra.Command{
		Use:   "roslog",
		Short: "Native ROS 2 logging facade utility",
		Long: "roslog drives the process-wide native ROS 2 logging subsystem: " +
			"probe the native libraries, emit test records, or inspect the " +
			"argument vector derived from a config file.",
	}
	rootCmd.PersistentFlags().String("config", "", "Config file path (overrides $ROSLOG_CONFIG and "+defaultConfigPath+")")

	// args inspects configuration without touching the native libraries.
	argsCmd := &cobra.Command{
		Use:   "args",
		Short: "Print the ROS argument vector derived from the config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			argv := cfg.BuildArgs()
			if argv == nil {
				argv = []string{}
			}
			return printJSON(cmd.OutOrStdout(), argv)
		},
	}
	rootCmd.AddCommand(argsCmd)

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Initialise the native logging subsystem and report its state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// Library overrides travel through the same environment
			// variables the binding reads, so a probe exercises exactly
			// the resolution an embedding application would see.
			if path, _ := cmd.Flags().GetString("rcutils"); path != "" {
				_ = os.Setenv("ROSLOG_RCUTILS_LIB", path)
			}
			if path, _ := cmd.Flags().GetString("rcl"); path != "" {
				_ = os.Setenv("ROSLOG_RCL_LIB", path)
			}
			rcutilsPath, rclPath := rcl.DefaultLibraryPaths()
			log.Info("probing native logging",
				"version", version,
				"commit", commit,
				"build_date", date,
				"rcutils", rcutilsPath,
				"rcl", rclPath,
			)

			ctx := roslog.NewContext(cfg.BuildArgs())
			if err := roslog.Init(ctx); err != nil {
				return fmt.Errorf("initialising logging: %w", err)
			}
			defer ctx.Close()

			return printJSON(cmd.OutOrStdout(), probeReport{
				Version:    version,
				RCUtilsLib: rcutilsPath,
				RCLLib:     rclPath,
				InstanceID: ctx.InstanceID().String(),
				Arguments:  ctx.Arguments(),
				Stats:      roslog.Snapshot(),
			})
		},
	}
	probeCmd.Flags().String("rcutils", "", "librcutils path (overrides $ROSLOG_RCUTILS_LIB)")
	probeCmd.Flags().String("rcl", "", "librcl path (overrides $ROSLOG_RCL_LIB)")
	rootCmd.AddCommand(probeCmd)

	emitCmd := &cobra.Command{
		Use:   "emit",
		Short: "Emit log records through the native subsystem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			message, _ := cmd.Flags().GetString("message")
			name, _ := cmd.Flags().GetString("name")
			severityName, _ := cmd.Flags().GetString("severity")
			count, _ := cmd.Flags().GetInt("count")
			intervalMs, _ := cmd.Flags().GetInt("interval-ms")
			overrides, _ := cmd.Flags().GetStringArray("level")

			severity, err := roslog.ParseSeverity(severityName)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			logCtx := roslog.NewContext(cfg.BuildArgs())
			if err := roslog.Init(logCtx); err != nil {
				return fmt.Errorf("initialising logging: %w", err)
			}
			defer logCtx.Close()

			for _, spec := range overrides {
				lgName, lgSeverity, err := parseLevelOverride(spec)
				if err != nil {
					return err
				}
				if err := roslog.SetLoggerLevel(lgName, lgSeverity); err != nil {
					return err
				}
			}

			emitted := emitRecords(ctx, roslog.Named(name), severity, message, count,
				time.Duration(intervalMs)*time.Millisecond)
			log.Info("emission finished", "emitted", emitted, "requested", count)

			return printJSON(cmd.OutOrStdout(), roslog.Snapshot())
		},
	}
	emitCmd.Flags().String("message", "roslog emit test record", "Message text to emit")
	emitCmd.Flags().String("name", "roslog.cli", "Logger name to emit under")
	emitCmd.Flags().String("severity", "info", "Record severity: debug|info|warn|error|fatal")
	emitCmd.Flags().Int("count", 1, "Number of records to emit")
	emitCmd.Flags().Int("interval-ms", 0, "Delay between records in milliseconds")
	emitCmd.Flags().StringArray("level", nil, "Per-logger threshold override, name:=LEVEL (repeatable)")
	rootCmd.AddCommand(emitCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// parseLevelOverride splits a name:=LEVEL threshold override, the same
// assignment syntax the --ros-args --log-level flag uses.
func parseLevelOverride(spec string) (string, roslog.Severity, error) {
	name, levelName, ok := strings.Cut(spec, ":=")
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid --level %q: want name:=LEVEL", spec)
	}
	severity, err := roslog.ParseSeverity(levelName)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --level %q: %w", spec, err)
	}
	return name, severity, nil
}

// emitRecords emits up to count records, spaced by interval, stopping early
// when ctx is cancelled. Returns the number actually emitted.
func emitRecords(ctx context.Context, lg roslog.Logger, severity roslog.Severity, message string, count int, interval time.Duration) int {
	for i := 0; i < count; i++ {
		if i > 0 && interval > 0 {
			select {
			case <-ctx.Done():
				return i
			case <-time.After(interval):
			}
		}
		if count > 1 {
			lg.Logf(severity, "%s [%d/%d]", message, i+1, count)
		} else {
			lg.Logf(severity, "%s", message)
		}
	}
	return count
}

// loadConfig resolves the configuration for a subcommand. Resolution order
// is the --config flag, then $ROSLOG_CONFIG, then the packaged default
// path. Only an explicitly requested file is required to exist.
func loadConfig(cmd *cobra.Command) (rosargs.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != "" || os.Getenv("ROSLOG_CONFIG") != ""
	if path == "" {
		path = getConfigPath()
	}

	cfg, err := rosargs.LoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return rosargs.DefaultConfig(), nil
		}
		return rosargs.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// getConfigPath returns the configuration file path.
// Uses ROSLOG_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("ROSLOG_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
