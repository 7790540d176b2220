package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"sigwatch/internal/monitor"
)

var version = "0.1.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sigwatch [flags] PATH PID",
	Short: "Signal a process whenever a file changes",
	Long: `sigwatch watches a single file for modification or creation events and
sends a signal (` + monitor.DefaultSignalName + ` by default) to a target process on each change.

It exists so a long-running producer - a simulator appending to its stats
file, a batch job rewriting its output - can notify a consumer out-of-band
without the consumer polling. The signal carries no payload; the target must
treat it purely as "something changed" and tolerate bursts.

Examples:
  sigwatch /tmp/stats.txt 4242
  sigwatch --signal=USR2 /var/run/sim/stats.txt 917`,
	Version: version,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("%w: expected PATH and PID, got %d argument(s)", monitor.ErrBadArguments, len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Past this point usage text would only obscure the real error.
		cmd.SilenceUsage = true
		return runMonitor(args[0], args[1])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Flags
	rootCmd.Flags().StringP("signal", "s", monitor.DefaultSignalName, "Signal to send on each change (name or number)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().Bool("silent", false, "Disable all output except errors")

	// Bind flags to viper
	viper.BindPFlag("signal", rootCmd.Flags().Lookup("signal"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("silent", rootCmd.Flags().Lookup("silent"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	// Search config in home directory with name ".sigwatch" (without extension).
	viper.AddConfigPath(home)
	viper.SetConfigType("yaml")
	viper.SetConfigName(".sigwatch")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func runMonitor(path, pidArg string) error {
	pid, err := parseTarget(pidArg)
	if err != nil {
		return err
	}

	sig, err := monitor.ParseSignal(viper.GetString("signal"))
	if err != nil {
		return fmt.Errorf("%w: %v", monitor.ErrBadArguments, err)
	}

	level := monitor.LogLevelInfo
	if viper.GetBool("verbose") {
		level = monitor.LogLevelDebug
	} else if viper.GetBool("silent") {
		level = monitor.LogLevelError
	}
	logger := monitor.NewLogger(level)
	defer logger.Sync()

	watcher, err := monitor.NewWatcher(path)
	if err != nil {
		return err
	}
	// The watch stays open for the life of the process. Run never returns
	// nil, so there is no shutdown path that would close it.

	logger.Info("watching",
		zap.String("path", path),
		zap.Int("pid", pid),
		zap.String("signal", viper.GetString("signal")),
	)

	m := monitor.New(watcher, monitor.NewNotifier(pid, sig), monitor.Options{Logger: logger})
	return m.Run()
}

// parseTarget parses the PID argument. Unparsable or non-positive values
// are rejected up front: pid 0 would address the caller's own process
// group, which is never what a typo means.
func parseTarget(s string) (int, error) {
	pid, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: PID %q is not a number", monitor.ErrBadArguments, s)
	}
	if pid <= 0 {
		return 0, fmt.Errorf("%w: PID must be positive, got %d", monitor.ErrBadArguments, pid)
	}
	return pid, nil
}
