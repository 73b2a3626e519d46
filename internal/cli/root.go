package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/shabbyrobe/go-radix/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with -ldflags, but *not* when installing
// via "go install".
var Version string

// NewRootCmd builds the radix command tree. Each call returns fresh commands
// with their own flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "radix",
		Short: "Convert integers between bases.",
		Long: `Convert integers between bases 2 to 36, render them with prefixes,
padding and digit grouping, and inspect their bits, nibbles and bytes.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if getFlag(cmd, "verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if getFlag(cmd, "version") {
				fmt.Fprintln(cmd.OutOrStdout(), "radix", version())
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().String("config", "", "read defaults from a YAML file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("type", "t", "int", fmt.Sprintf("integer type, one of %v", config.TypeNames))
	rootCmd.PersistentFlags().IntP("from", "f", 10, "base of the input values")

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newBitsCmd())
	rootCmd.AddCommand(newInspectCmd())

	return rootCmd
}

// Execute runs the command tree against os.Args. This is called by
// main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func version() string {
	if Version != "" {
		return Version
	} else if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}
	return "(unknown version)"
}

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// loadConfig reads the configuration named by --config, applies any flags
// given explicitly on the command line on top of it, and only then validates
// the result.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadUnvalidated(getString(cmd, "config"))
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.Type = getString(cmd, "type")
	}
	if flags.Changed("from") {
		cfg.From = getInt(cmd, "from")
	}
	if flags.Changed("to") {
		cfg.To = getInt(cmd, "to")
	}
	if flags.Changed("pad") {
		cfg.Style.PadTo = getInt(cmd, "pad")
	}
	if flags.Changed("pad-every") {
		cfg.Style.PadToEvery = getInt(cmd, "pad-every")
	}
	if flags.Changed("split") {
		cfg.Style.SplitEvery = getInt(cmd, "split")
	}
	if flags.Changed("prefix") {
		cfg.Style.Prefix = getFlag(cmd, "prefix")
	}
	if flags.Changed("lower") {
		cfg.Style.Lowercase = getFlag(cmd, "lower")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	log.Debugf("config: type=%s from=%d to=%d style=%+v", cfg.Type, cfg.From, cfg.To, cfg.Style)
	return cfg, nil
}
